// Package sound plays the chomp the folder makes when it eats a file.
package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate = 44100

	chompLength = 120 * time.Millisecond
	chompHigh   = 660.0
	chompLow    = 220.0
	chompVolume = 0.3
)

// ChompPCM renders a falling tone as 16-bit little-endian stereo PCM, the
// format ebiten audio players expect.
func ChompPCM(d time.Duration) []byte {
	n := int(math.Round(float64(SampleRate) * d.Seconds()))
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := chompHigh + (chompLow-chompHigh)*t
		phase += 2 * math.Pi * freq / SampleRate
		// short attack, linear decay
		env := math.Min(1, t*20) * (1 - t)
		v := int16(math.Sin(phase) * env * chompVolume * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

type Chomp struct {
	ctx *audio.Context
	pcm []byte
}

// NewChomp shares ebiten's audio context if one exists; only one may be
// created per process.
func NewChomp() *Chomp {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &Chomp{ctx: ctx, pcm: ChompPCM(chompLength)}
}

func (c *Chomp) Play() {
	if c == nil {
		return
	}
	p := c.ctx.NewPlayerFromBytes(c.pcm)
	p.Play()
}
