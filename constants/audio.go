package constants

import "time"

// Tone Timing
const (
	HitToneDuration   = 50 * time.Millisecond
	MissToneDuration  = 40 * time.Millisecond
	StartToneDuration = 120 * time.Millisecond
	EndToneDuration   = 300 * time.Millisecond
)

// Tone Frequencies (Hz)
const (
	HitToneFreq   = 880
	MissToneFreq  = 180
	StartToneFreq = 660
	EndToneFreq   = 440
)
