package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mole-strike/audio"
	"github.com/lixenwraith/mole-strike/config"
	"github.com/lixenwraith/mole-strike/constants"
	"github.com/lixenwraith/mole-strike/core"
	"github.com/lixenwraith/mole-strike/engine"
	"github.com/lixenwraith/mole-strike/input"
	"github.com/lixenwraith/mole-strike/render"
	"github.com/lixenwraith/mole-strike/render/renderers"
	"github.com/lixenwraith/mole-strike/status"
	"github.com/lixenwraith/mole-strike/storage"
)

// runGame owns the terminal for the lifetime of one play run
func runGame(cfg *config.Config) error {
	// Panic recovery: restore the terminal even if the main loop crashes
	defer core.Recover()

	logFile := setupLogging(cfg.Logging.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	slots, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer slots.Close()

	registry := status.NewRegistry()
	game := engine.NewGame(engine.Options{
		Rows:          cfg.Game.Rows,
		Cols:          cfg.Game.Cols,
		Hold:          cfg.Hold(),
		RepeatRetries: cfg.Game.RepeatRetries,
		RecordStopped: cfg.Game.RecordStopped,
		Best:          storage.NewBestScore(slots, constants.BestScoreSlot),
		Status:        registry,
	})
	defer logStats(registry)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()

	screen.SetStyle(render.StyleBackground)
	screen.EnableMouse()
	screen.HideCursor()

	// Audio is optional, the game runs silently when the device is unavailable
	var sound *audio.SoundManager
	var mute muter
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			sound = sm
			mute = sm
			defer sm.Cleanup()
		}
	}

	done := make(chan struct{})
	defer close(done)
	if sound != nil {
		core.Go(func() { audio.Listen(game.Events(), sound, done) })
	}

	width, height := screen.Size()
	orchestrator := render.NewRenderOrchestrator(screen, width, height)
	orchestrator.Register(renderers.NewBoardRenderer(), render.PriorityGrid)
	orchestrator.Register(renderers.NewHUDRenderer(), render.PriorityUI)
	orchestrator.Register(renderers.NewFooterRenderer(), render.PriorityUI)
	orchestrator.Register(renderers.NewOverlayRenderer(), render.PriorityOverlay)

	machine := input.NewMachine()
	accuracy := registry.Floats.Get(status.KeyAccuracy)

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() { pollEvents(screen, eventChan, done) })

	draw := func() {
		snap := game.Snapshot()
		ctx := render.NewRenderContext(snap, width, height)
		ctx.SoundAvailable = sound != nil
		ctx.Muted = sound != nil && sound.IsMuted()
		ctx.Accuracy = accuracy.Get()

		machine.SetLayout(ctx.Layout, renderers.OverlayRect(ctx.Layout))
		machine.SetMode(modeFor(snap))
		orchestrator.RenderFrame(ctx)
	}

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	draw()
	for {
		select {
		case ev := <-eventChan:
			in := machine.Process(ev)
			if in == nil {
				continue
			}
			if in.Type == input.IntentQuit {
				game.Stop()
				return nil
			}
			if in.Type == input.IntentResize {
				width, height = screen.Size()
				orchestrator.Resize(width, height)
			}
			apply(game, mute, in)
			draw()

		case <-frameTicker.C:
			draw()
		}
	}
}

// muter is the part of the sound manager driven by input
type muter interface {
	ToggleMute() bool
}

type eventSource interface {
	PollEvent() tcell.Event
}

// pollEvents forwards terminal events until the source closes or done fires
func pollEvents(src eventSource, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// apply routes one intent to the game
func apply(game *engine.Game, sound muter, in *input.Intent) {
	switch in.Type {
	case input.IntentStart, input.IntentPlayAgain:
		game.Start()
	case input.IntentStop:
		game.Stop()
	case input.IntentHoldUp:
		log.Printf("hold set to %v", game.AdjustHold(constants.HoldStep))
	case input.IntentHoldDown:
		log.Printf("hold set to %v", game.AdjustHold(-constants.HoldStep))
	case input.IntentToggleMute:
		if sound != nil {
			sound.ToggleMute()
		}
	case input.IntentPress:
		game.PressAt(in.Cell, in.At)
	}
}

// modeFor derives the input mode from the game state
func modeFor(snap engine.Snapshot) input.InputMode {
	switch {
	case snap.Running:
		return input.ModeRunning
	case snap.Result != nil:
		return input.ModeResult
	}
	return input.ModeIdle
}

func logStats(r *status.Registry) {
	for _, line := range r.Lines() {
		log.Printf("stat %s", line)
	}
}
