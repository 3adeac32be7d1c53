package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen caps string gauges; end reasons and short labels fit well inside it
const MaxStringLen = 32

// AtomicString is a string gauge, such as the last session's end reason
// The zero value reads as ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, cut at a rune boundary so it stays within MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.ptr.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// AtomicFloat is a float gauge stored as IEEE-754 bits, used for hit accuracy
// The zero value reads as 0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores val
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get returns the current value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Ratio stores num/den, or 0 before anything has been counted
func (f *AtomicFloat) Ratio(num, den int64) {
	if den <= 0 {
		f.Set(0)
		return
	}
	f.Set(float64(num) / float64(den))
}
