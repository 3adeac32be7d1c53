package engine

import (
	"testing"
	"time"
)

func TestMockClock_FiresInDeadlineOrder(t *testing.T) {
	c := NewMockClock(t0)
	var order []string

	c.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "b") })

	c.Advance(250 * time.Millisecond)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order = %v, want [a b]", order)
	}
	if !c.Now().Equal(t0.Add(250 * time.Millisecond)) {
		t.Errorf("now = %v, want 250ms", c.Now().Sub(t0))
	}

	c.Advance(50 * time.Millisecond)
	if len(order) != 3 {
		t.Errorf("order = %v, want c fired at 300ms", order)
	}
}

func TestMockClock_ChainedTimersWithinWindow(t *testing.T) {
	c := NewMockClock(t0)
	var at []time.Duration

	var chain func()
	chain = func() {
		at = append(at, c.Now().Sub(t0))
		if len(at) < 3 {
			c.AfterFunc(100*time.Millisecond, chain)
		}
	}
	c.AfterFunc(100*time.Millisecond, chain)

	c.Advance(time.Second)
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}
	if len(at) != 3 {
		t.Fatalf("fired at %v, want %v", at, want)
	}
	for i := range want {
		if at[i] != want[i] {
			t.Errorf("fire %d at %v, want %v", i, at[i], want[i])
		}
	}
}

func TestMockClock_Stop(t *testing.T) {
	c := NewMockClock(t0)
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("first Stop() = false")
	}
	if timer.Stop() {
		t.Error("second Stop() = true")
	}
	c.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
	if c.Pending() != 0 {
		t.Errorf("pending = %d, want 0", c.Pending())
	}
}
