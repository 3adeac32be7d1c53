package core

import (
	"sync/atomic"
	"testing"
	"time"
)

type fakeTerminal struct {
	finis atomic.Int32
}

func (f *fakeTerminal) Fini() { f.finis.Add(1) }

func withExitStub(t *testing.T) *atomic.Int32 {
	t.Helper()
	var code atomic.Int32
	code.Store(-1)
	prev := exitFunc
	exitFunc = func(c int) { code.Store(int32(c)) }
	t.Cleanup(func() {
		exitFunc = prev
		SetCrashTerminal(nil)
	})
	return &code
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	code := withExitStub(t)
	term := &fakeTerminal{}
	SetCrashTerminal(term)

	HandleCrash(nil)

	if term.finis.Load() != 0 {
		t.Error("terminal should not be finalized without a panic value")
	}
	if code.Load() != -1 {
		t.Errorf("exit called with %d, want no exit", code.Load())
	}
}

func TestHandleCrash_RestoresTerminalOnce(t *testing.T) {
	code := withExitStub(t)
	term := &fakeTerminal{}
	SetCrashTerminal(term)

	HandleCrash("boom")
	HandleCrash("again")

	if got := term.finis.Load(); got != 1 {
		t.Errorf("Fini called %d times, want 1", got)
	}
	if code.Load() != 1 {
		t.Errorf("exit code = %d, want 1", code.Load())
	}
}

func TestGo_RecoversPanic(t *testing.T) {
	code := withExitStub(t)
	done := make(chan struct{})

	Go(func() {
		defer close(done)
		panic("worker failed")
	})
	<-done

	// Recover runs after the deferred close; wait for the exit stub
	for i := 0; i < 1000 && code.Load() == -1; i++ {
		time.Sleep(time.Millisecond)
	}
	if code.Load() != 1 {
		t.Errorf("exit code = %d, want 1", code.Load())
	}
}
