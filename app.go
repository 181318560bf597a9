// Package main contains the application wiring and the AppManager, which
// coordinates the stopwatch engine, the frame loop, the lap sound and the
// UI. This file holds the shared application state and the command loop
// that serializes engine transitions.
//
// Maintenance notes / tips:
//   - Concurrency model: a single command-loop goroutine (see `commandLoop`)
//     is the only writer of the engine. The frame loop goroutine only reads
//     it through Engine.Tick. Widgets are touched exclusively through
//     `uiDo` (fyne.Do in production), never from either goroutine directly.
//   - The frame loop is started and stopped by the command loop in lockstep
//     with the engine. Stop waits for the frame goroutine to exit and bumps
//     its generation; frames already queued on the UI thread check
//     `frames.Valid` and drop themselves, so a stale frame cannot repaint a
//     running display after a stop.
//   - `cmdCh` is buffered. EnqueueCommand gives up after a short timeout
//     rather than block the UI thread, and logs the drop.
package main

import (
	"context"
	"log"
	"time"

	"fyne.io/fyne/v2"

	"Lapwatch/clock"
	"Lapwatch/config"
	"Lapwatch/control"
	"Lapwatch/frame"
	"Lapwatch/sound"
	"Lapwatch/stopwatch"
	"Lapwatch/ui"
)

// Renderer is the part of the stopwatch face the app drives.
type Renderer interface {
	Render(ui.View)
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	view   Renderer
	labels ui.Labels
	uiDo   func(func())

	engine *stopwatch.Engine
	frames *frame.Loop
	player *sound.Player

	cmdCh     chan control.Command
	cmdCtx    context.Context
	cmdCancel context.CancelFunc
	cmdDone   chan struct{}
}

// NewAppManager creates a new application manager. The command loop does
// not run until Start.
func NewAppManager(c clock.Clock, cfg *config.Config, player *sound.Player) *AppManager {
	a := &AppManager{
		labels: ui.DefaultLabels(),
		uiDo:   fyne.Do,
		engine: stopwatch.NewEngine(c),
		frames: frame.New(c, cfg.Refresh.Interval),
		player: player,
		cmdCh:  make(chan control.Command, 256),
	}
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	log.Printf("Refreshing every %v", a.frames.Interval())
	return a
}

// SetView attaches the face that receives rendered views.
func (a *AppManager) SetView(r Renderer) {
	a.view = r
}

// Start runs the command loop. The face starts out showing the zero state,
// so nothing is painted until the first command.
func (a *AppManager) Start() {
	a.cmdDone = make(chan struct{})
	go a.commandLoop(a.cmdDone)
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		log.Printf("EnqueueCommand timeout: dropping %s command", cmd.Type)
	}
}

func (a *AppManager) commandLoop(done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			ok := a.apply(cmd.Type)
			if !ok {
				log.Printf("Ignored %s while %s", cmd.Type, a.engine.State())
			}
			a.publish(a.engine.Snapshot(), nil)
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- ok:
				default:
				}
			}
		}
	}
}

func (a *AppManager) apply(t control.CommandType) bool {
	switch t {
	case control.CmdStart:
		if !a.engine.Start() {
			return false
		}
		a.frames.Start(a.cmdCtx, a.onFrame)
		return true
	case control.CmdStop:
		ok := a.engine.Stop()
		a.frames.Stop()
		return ok
	case control.CmdLap:
		if !a.engine.RecordLap() {
			return false
		}
		if a.player != nil {
			a.player.Play()
		}
		return true
	case control.CmdReset:
		return a.engine.Reset()
	}
	return false
}

func (a *AppManager) onFrame(f frame.Frame) {
	a.publish(a.engine.Tick(f.Now), &f)
}

// publish renders s on the UI thread. Frames from a cancelled run are
// dropped there.
func (a *AppManager) publish(s stopwatch.Session, f *frame.Frame) {
	if a.view == nil {
		return
	}
	v := ui.BuildView(s, a.labels)
	a.uiDo(func() {
		if f != nil && !a.frames.Valid(*f) {
			return
		}
		a.view.Render(v)
	})
}

// HandleKeyRune maps keys to controls: space toggles start/stop, L records
// a lap and R resets.
func (a *AppManager) HandleKeyRune(r rune) {
	var t control.CommandType
	switch r {
	case ' ':
		t = control.CmdStart
		if a.engine.State() == stopwatch.Running {
			t = control.CmdStop
		}
	case 'l', 'L':
		t = control.CmdLap
	case 'r', 'R':
		t = control.CmdReset
	default:
		return
	}
	a.EnqueueCommand(control.Command{Type: t})
}

// ApplyConfig takes reloaded settings. Only the lap sound changes live; the
// refresh interval and window settings apply on the next launch.
func (a *AppManager) ApplyConfig(cfg *config.Config) {
	if a.player == nil {
		return
	}
	if err := a.player.Apply(cfg.LapSound); err != nil {
		log.Printf("Keeping previous lap sound: %v", err)
	}
}

// Shutdown stops the command loop, waits for it to exit, then stops the
// frame loop. A Start applied by the command loop cannot outlive it.
func (a *AppManager) Shutdown() {
	a.cmdCancel()
	if a.cmdDone != nil {
		<-a.cmdDone
	}
	a.frames.Stop()
}
