package term

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// stageTones rise with the narrative.
var stageTones = []float64{330, 440, 554, 659}

// Chime plays a short tone when the stage changes.
type Chime struct {
	ready bool
}

// NewChime initialises the speaker. Audio is optional; a failure leaves a
// silent chime and returns the error for logging.
func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Chime{}, fmt.Errorf("init speaker: %w", err)
	}
	return &Chime{ready: true}, nil
}

// Play sounds the tone for stage.
func (c *Chime) Play(stage int) {
	if c == nil || !c.ready || stage < 0 || stage >= len(stageTones) {
		return
	}
	sine, err := generators.SineTone(sampleRate, stageTones[stage])
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(80*time.Millisecond), sine))
}

// Close releases the speaker.
func (c *Chime) Close() {
	if c == nil || !c.ready {
		return
	}
	speaker.Close()
	c.ready = false
}
