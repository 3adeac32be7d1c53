package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the game engine
const (
	KeyPresses    = "game.presses"
	KeyHits       = "game.hits"
	KeyMisses     = "game.misses"
	KeyDuplicates = "game.duplicates"
	KeyEpisodes   = "game.episodes"
	KeySessions   = "game.sessions"
	KeyAccuracy   = "game.accuracy"
	KeyLastResult = "game.last_result"
)

// Registry is the central metrics facade
// Components cache pointers during init; hot paths write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "key=value" in sorted key order per type
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.3f", key, v.Get()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", key, v.Load()))
	})
	return lines
}
