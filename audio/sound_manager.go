package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/mole-strike/constants"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager manages all game audio through one speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		ctrl:  &beep.Ctrl{Streamer: mixer},
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(&effects.Volume{Streamer: sm.ctrl, Base: 2, Volume: -1})
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// ToggleMute flips the mute state and returns true when muted
func (sm *SoundManager) ToggleMute() bool {
	speaker.Lock()
	defer speaker.Unlock()
	sm.ctrl.Paused = !sm.ctrl.Paused
	return sm.ctrl.Paused
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.ctrl.Paused
}

// PlayHit plays the short high blip of a successful whack
func (sm *SoundManager) PlayHit() {
	sm.play(NewTone(sampleRate, constants.HitToneFreq, constants.HitToneDuration, 0.5))
}

// PlayMiss plays a low buzz
func (sm *SoundManager) PlayMiss() {
	sm.play(NewBuzz(sampleRate, constants.MissToneFreq, constants.MissToneDuration))
}

// PlayStart plays the session start cue
func (sm *SoundManager) PlayStart() {
	sm.play(NewTone(sampleRate, constants.StartToneFreq, constants.StartToneDuration, 0.4))
}

// PlayEnd plays the end cue, a rising pair when a new best was set
func (sm *SoundManager) PlayEnd(newBest bool) {
	if !newBest {
		sm.play(NewTone(sampleRate, constants.EndToneFreq, constants.EndToneDuration, 0.4))
		return
	}
	sm.play(beep.Seq(
		NewTone(sampleRate, constants.EndToneFreq, constants.EndToneDuration/2, 0.4),
		NewTone(sampleRate, constants.EndToneFreq*2, constants.EndToneDuration, 0.4),
	))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
