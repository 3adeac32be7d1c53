package status

import (
	"reflect"
	"strings"
	"unicode/utf8"
	"testing"
)

func TestMetricMap_GetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyHits)
	b := r.Ints.Get(KeyHits)
	if a != b {
		t.Fatal("Get should return the same pointer for the same key")
	}
	a.Add(3)
	if got := r.Ints.Get(KeyHits).Load(); got != 3 {
		t.Errorf("hits = %d, want 3", got)
	}
	if !r.Ints.Has(KeyHits) || r.Ints.Has(KeyMisses) {
		t.Error("Has reports wrong membership")
	}
}

func TestRegistry_LinesSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyMisses).Store(2)
	r.Ints.Get(KeyHits).Store(5)
	r.Floats.Get(KeyAccuracy).Ratio(5, 7)
	r.Strings.Get(KeyLastResult).Store("expired")

	want := []string{
		"game.hits=5",
		"game.misses=2",
		"game.accuracy=0.714",
		"game.last_result=expired",
	}
	if got := r.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
	if r.TotalCount() != 4 {
		t.Errorf("TotalCount() = %d, want 4", r.TotalCount())
	}
}

func TestAtomicString_Truncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value should load empty")
	}
	long := "abcdefghijklmnopqrstuvwxyz0123456789"
	s.Store(long)
	if got := s.Load(); got != long[:MaxStringLen] {
		t.Errorf("Load() = %q, want %q", got, long[:MaxStringLen])
	}
}

func TestAtomicFloat_RatioZeroDenominator(t *testing.T) {
	var f AtomicFloat
	f.Set(1)
	f.Ratio(3, 0)
	if f.Get() != 0 {
		t.Errorf("Ratio with zero denominator = %v, want 0", f.Get())
	}
}

func TestMetricMap_KeysSortedRegardlessOfRegistration(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	for _, k := range []string{KeySessions, KeyAccuracy, KeyHits, KeyAccuracy} {
		m.Get(k)
	}

	want := []string{KeyAccuracy, KeyHits, KeySessions}
	keys := m.Keys()
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	if m.Count() != 3 {
		t.Errorf("Count() = %d, want 3", m.Count())
	}

	// Callers get a copy
	keys[0] = "x"
	if m.Keys()[0] != KeyAccuracy {
		t.Error("Keys() exposed internal slice")
	}
}

func TestAtomicString_TruncatesOnRuneBoundary(t *testing.T) {
	var s AtomicString
	// 31 ASCII bytes then a 3-byte rune straddling the limit
	val := strings.Repeat("a", MaxStringLen-1) + "━━"
	s.Store(val)

	got := s.Load()
	if got != strings.Repeat("a", MaxStringLen-1) {
		t.Errorf("Load() = %q, want the ASCII prefix only", got)
	}
	if !utf8.ValidString(got) {
		t.Errorf("Load() = %q is not valid UTF-8", got)
	}
}
