package main

import (
	"image/color"
	"time"
)

const (
	// --- Window ---
	ScreenMargin = 20.0
	HUDHeight    = 36.0

	// --- Scene ---
	StarCount = 140

	// Sizes are fractions of the container height so the scene scales
	// with the configured width.
	PlanetRadiusRatio = 0.22
	FolderWidthRatio  = 0.30
	FolderHeightRatio = 0.22
	FileWidthRatio    = 0.09
	FileHeightRatio   = 0.12
	DogEarRatio       = 0.35 // of file width

	ItemGrabRadius = 1.2 // in file heights
	ShadowOffset   = 2.0
	BorderOffset   = 2.0
	BorderWidth    = 2.0

	PathSegments = 48
	PathDashGap  = 2 // draw every other segment

	EatAnimation = 300 * time.Millisecond
	GulpPulse    = 0.15 // extra folder scale at the peak of a gulp
)

var (
	// --- Colors ---
	ColorBackground      = color.RGBA{18, 18, 24, 255}
	ColorSpace           = color.RGBA{10, 12, 30, 255}
	ColorStar            = color.RGBA{230, 230, 255, 255}
	ColorContainerBorder = color.RGBA{60, 60, 90, 255}
	ColorPlanet          = color.RGBA{60, 140, 220, 255}
	ColorPlanetLand      = color.RGBA{70, 180, 100, 255}
	ColorPlanetRing      = color.RGBA{140, 200, 255, 120}
	ColorFolder          = color.RGBA{240, 190, 60, 255}
	ColorFolderTab       = color.RGBA{210, 160, 40, 255}
	ColorFolderMouth     = color.RGBA{90, 60, 10, 255}
	ColorCaptureRing     = color.RGBA{255, 220, 120, 40}
	ColorFile            = color.RGBA{245, 245, 250, 255}
	ColorFileDogEar      = color.RGBA{200, 200, 215, 255}
	ColorFileLines       = color.RGBA{150, 150, 170, 255}
	ColorShadow          = color.RGBA{0, 0, 0, 100}
	ColorItemHover       = color.RGBA{0, 120, 255, 255}
	ColorItemGrabbed     = color.RGBA{50, 205, 50, 255}
	ColorPath            = color.RGBA{255, 255, 100, 140}
)
