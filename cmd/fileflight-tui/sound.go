package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// chomp plays two short falling tones through the speaker.
type chomp struct {
	ready bool
}

func newChomp() (*chomp, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &chomp{ready: true}, nil
}

func (c *chomp) play() {
	if c == nil || !c.ready {
		return
	}
	high, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}
	low, err := generators.SineTone(sampleRate, 330)
	if err != nil {
		return
	}
	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(60*time.Millisecond), high),
		beep.Take(sampleRate.N(90*time.Millisecond), low),
	))
}

func (c *chomp) close() {
	if c != nil && c.ready {
		speaker.Close()
		c.ready = false
	}
}
