package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"Lapwatch/config"
	"Lapwatch/control"
)

// App is what the window needs from the application.
type App interface {
	EnqueueCommand(cmd control.Command)
	HandleKeyRune(rune)
}

// StopwatchWidget is the whole stopwatch face: total time, the two controls
// and the lap table. All methods must run on the Fyne UI thread.
type StopwatchWidget struct {
	totalText *canvas.Text

	lapButton   *widget.Button
	resetButton *widget.Button
	startButton *widget.Button
	stopButton  *widget.Button

	rowsBox *fyne.Container
	rows    []lapRow
	content fyne.CanvasObject
}

type lapRow struct {
	label *canvas.Text
	value *canvas.Text
}

// NewStopwatchWidget creates the stopwatch face in its stopped, zeroed state.
func NewStopwatchWidget(a App, l Labels) *StopwatchWidget {
	w := &StopwatchWidget{}

	w.totalText = canvas.NewText("00:00,00", TextColor)
	w.totalText.TextStyle.Monospace = true
	w.totalText.TextSize = FontSizeTotal
	w.totalText.Alignment = fyne.TextAlignCenter

	send := func(t control.CommandType) func() {
		return func() { a.EnqueueCommand(control.Command{Type: t}) }
	}

	w.lapButton = widget.NewButton(l.Lap, send(control.CmdLap))
	w.resetButton = widget.NewButton(l.Reset, send(control.CmdReset))
	w.startButton = widget.NewButton(l.Start, send(control.CmdStart))
	w.startButton.Importance = widget.SuccessImportance
	w.stopButton = widget.NewButton(l.Stop, send(control.CmdStop))
	w.stopButton.Importance = widget.DangerImportance

	w.lapButton.Hide()
	w.stopButton.Hide()

	controlSize := fyne.NewSize(ControlSize, ControlSize)
	left := container.NewGridWrap(controlSize, container.NewStack(w.lapButton, w.resetButton))
	right := container.NewGridWrap(controlSize, container.NewStack(w.stopButton, w.startButton))
	controls := container.NewBorder(nil, nil, left, right)

	header := container.NewVBox(
		container.NewCenter(w.totalText),
		gap(),
		controls,
		gap(),
		divider(),
	)

	w.rowsBox = container.NewVBox()
	w.content = container.NewBorder(header, nil, nil, nil, container.NewVScroll(w.rowsBox))
	return w
}

func gap() fyne.CanvasObject {
	g := canvas.NewRectangle(color.Transparent)
	g.SetMinSize(fyne.NewSize(0, SectionSpace))
	return g
}

func divider() fyne.CanvasObject {
	d := canvas.NewRectangle(DividerColor)
	d.SetMinSize(fyne.NewSize(0, RowSpacing))
	return d
}

// GetCanvasObject returns the root object to place in a window.
func (w *StopwatchWidget) GetCanvasObject() fyne.CanvasObject {
	return w.content
}

// LeftButton returns the visible left control (Lap or Reset).
func (w *StopwatchWidget) LeftButton() *widget.Button {
	if w.lapButton.Visible() {
		return w.lapButton
	}
	return w.resetButton
}

// RightButton returns the visible right control (Stop or Start).
func (w *StopwatchWidget) RightButton() *widget.Button {
	if w.stopButton.Visible() {
		return w.stopButton
	}
	return w.startButton
}

// TotalText returns the text currently shown for the total time.
func (w *StopwatchWidget) TotalText() string {
	return w.totalText.Text
}

// Render updates the face in place. Lap rows are rebuilt only when their
// count changes; otherwise only texts and colors are touched.
func (w *StopwatchWidget) Render(v View) {
	if w.totalText.Text != v.Total {
		w.totalText.Text = v.Total
		w.totalText.Refresh()
	}

	if v.Running {
		w.resetButton.Hide()
		w.startButton.Hide()
		w.lapButton.Show()
		w.stopButton.Show()
	} else {
		w.lapButton.Hide()
		w.stopButton.Hide()
		w.resetButton.Show()
		w.startButton.Show()
	}
	setText(w.LeftButton(), v.Left.Label)
	setText(w.RightButton(), v.Right.Label)

	if len(v.Rows) != len(w.rows) {
		w.rebuildRows(len(v.Rows))
	}
	for i, r := range v.Rows {
		c := highlightColor(r.Highlight)
		row := w.rows[i]
		if row.label.Text != r.Label || row.label.Color != c {
			row.label.Text = r.Label
			row.label.Color = c
			row.label.Refresh()
		}
		if row.value.Text != r.Value || row.value.Color != c {
			row.value.Text = r.Value
			row.value.Color = c
			row.value.Refresh()
		}
	}
}

// Rows returns label and value text of every lap row, top to bottom.
func (w *StopwatchWidget) Rows() [][2]string {
	out := make([][2]string, len(w.rows))
	for i, r := range w.rows {
		out[i] = [2]string{r.label.Text, r.value.Text}
	}
	return out
}

func (w *StopwatchWidget) rebuildRows(n int) {
	w.rows = make([]lapRow, n)
	objects := make([]fyne.CanvasObject, 0, 2*n)
	for i := range w.rows {
		label := canvas.NewText("", TextColor)
		label.TextSize = FontSizeRow
		label.TextStyle.Monospace = true
		value := canvas.NewText("", TextColor)
		value.TextSize = FontSizeRow
		value.TextStyle.Monospace = true
		w.rows[i] = lapRow{label: label, value: value}

		objects = append(objects,
			container.NewPadded(container.NewHBox(label, layout.NewSpacer(), value)),
			divider(),
		)
	}
	w.rowsBox.Objects = objects
	w.rowsBox.Refresh()
}

func setText(b *widget.Button, text string) {
	if b.Text != text {
		b.SetText(text)
	}
}

// CreateMainWindow builds the window around a new StopwatchWidget.
func CreateMainWindow(a App, fyneApp fyne.App, cfg config.WindowConfig, l Labels) (fyne.Window, *StopwatchWidget) {
	title := cfg.Title
	if title == "" {
		title = "Lapwatch"
	}
	win := fyneApp.NewWindow(title)

	sw := NewStopwatchWidget(a, l)
	win.Canvas().SetOnTypedRune(a.HandleKeyRune)

	win.SetContent(container.NewPadded(sw.GetCanvasObject()))
	win.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	return win, sw
}
