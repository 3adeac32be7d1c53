package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator streams a finite sine tone with a linear attack/release envelope
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	amp     float64
	pos     int
	samples int
	edge    int // Attack and release length in samples
}

// NewTone creates a tone of freq Hz lasting d
func NewTone(sr beep.SampleRate, freq float64, d time.Duration, amp float64) *ToneGenerator {
	samples := sr.N(d)
	edge := sr.N(5 * time.Millisecond)
	if edge*2 > samples {
		edge = samples / 2
	}
	return &ToneGenerator{
		sr:      sr,
		freq:    freq,
		amp:     amp,
		samples: samples,
		edge:    edge,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		sample := g.amp * g.envelope() * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

func (g *ToneGenerator) envelope() float64 {
	if g.edge == 0 {
		return 1
	}
	if g.pos < g.edge {
		return float64(g.pos) / float64(g.edge)
	}
	if rem := g.samples - g.pos; rem < g.edge {
		return float64(rem) / float64(g.edge)
	}
	return 1
}

// BuzzGenerator streams a finite low-pitch buzz with harmonics
type BuzzGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

// NewBuzz creates a buzz of freq Hz lasting d
func NewBuzz(sr beep.SampleRate, freq float64, d time.Duration) *BuzzGenerator {
	return &BuzzGenerator{
		sr:      sr,
		freq:    freq,
		samples: sr.N(d),
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)

		// Square-ish wave for a harsh buzz
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Fade in
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.01, 1.0)
		sample *= envelope * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
