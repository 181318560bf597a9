package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Lapwatch/config"
	"Lapwatch/control"
	"Lapwatch/stopwatch"
)

type recordingApp struct {
	commands []control.CommandType
	runes    []rune
}

func (r *recordingApp) EnqueueCommand(cmd control.Command) {
	r.commands = append(r.commands, cmd.Type)
}

func (r *recordingApp) HandleKeyRune(c rune) {
	r.runes = append(r.runes, c)
}

func TestStoppedFaceShowsResetAndStart(t *testing.T) {
	test.NewApp()
	a := &recordingApp{}
	w := NewStopwatchWidget(a, testLabels)

	w.Render(BuildView(stopwatch.Session{}, testLabels))

	assert.Equal(t, "00:00,00", w.TotalText())
	assert.Equal(t, "Reset", w.LeftButton().Text)
	assert.Equal(t, "Start", w.RightButton().Text)
	assert.Empty(t, w.Rows())

	test.Tap(w.RightButton())
	test.Tap(w.LeftButton())
	assert.Equal(t, []control.CommandType{control.CmdStart, control.CmdReset}, a.commands)
}

func TestRunningFaceShowsLapAndStop(t *testing.T) {
	test.NewApp()
	a := &recordingApp{}
	w := NewStopwatchWidget(a, testLabels)

	w.Render(BuildView(session(stopwatch.Running, 0, 1500), testLabels))

	assert.Equal(t, "Lap", w.LeftButton().Text)
	assert.Equal(t, "Stop", w.RightButton().Text)

	test.Tap(w.LeftButton())
	test.Tap(w.RightButton())
	assert.Equal(t, []control.CommandType{control.CmdLap, control.CmdStop}, a.commands)
}

func TestRenderUpdatesRows(t *testing.T) {
	test.NewApp()
	w := NewStopwatchWidget(&recordingApp{}, testLabels)

	w.Render(BuildView(session(stopwatch.Running, 0, 1500), testLabels))
	require.Equal(t, [][2]string{{"Lap 2", "00:00,00"}, {"Lap 1", "00:01,50"}}, w.Rows())

	s := session(stopwatch.Running, 0, 1500)
	s.Lap = 730 * time.Millisecond
	w.Render(BuildView(s, testLabels))
	assert.Equal(t, [][2]string{{"Lap 2", "00:00,73"}, {"Lap 1", "00:01,50"}}, w.Rows())

	w.Render(BuildView(stopwatch.Session{}, testLabels))
	assert.Empty(t, w.Rows())
}

func TestRowColorsFollowHighlight(t *testing.T) {
	test.NewApp()
	w := NewStopwatchWidget(&recordingApp{}, testLabels)

	w.Render(BuildView(session(stopwatch.Stopped, 0, 900, 1500), testLabels))

	require.Len(t, w.rows, 3)
	assert.Equal(t, TextColor, w.rows[0].value.Color)
	assert.Equal(t, SlowestColor, w.rows[1].value.Color)
	assert.Equal(t, FastestColor, w.rows[2].value.Color)
}

func TestMainWindowForwardsKeys(t *testing.T) {
	a := &recordingApp{}
	win, sw := CreateMainWindow(a, test.NewApp(), config.Default().Window, testLabels)
	defer win.Close()
	require.NotNil(t, sw)

	test.TypeOnCanvas(win.Canvas(), "l")
	assert.Equal(t, []rune{'l'}, a.runes)
}
