package ui

import (
	"Lapwatch/control"
	"Lapwatch/i18n"
	"Lapwatch/stopwatch"
)

// Highlight marks a lap row as an extreme.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightFastest
	HighlightSlowest
)

// Row is one line of the lap table.
type Row struct {
	Label     string
	Value     string
	Highlight Highlight
	Live      bool // in-progress lap, shows the running Lap timer
}

// Control describes one of the two buttons.
type Control struct {
	Label   string
	Command control.CommandType
}

// View is everything the window shows for one Session.
type View struct {
	Total   string
	Running bool
	Left    Control
	Right   Control
	Rows    []Row
}

// Labels holds the localized strings BuildView needs.
type Labels struct {
	Lap, Reset, Start, Stop string
	LapRow                  func(n int) string
}

// DefaultLabels reads the labels for the active language.
func DefaultLabels() Labels {
	return Labels{
		Lap:    i18n.T("Lap"),
		Reset:  i18n.T("Reset"),
		Start:  i18n.T("Start"),
		Stop:   i18n.T("Stop"),
		LapRow: i18n.LapLabel,
	}
}

// BuildView maps a Session to what is displayed. Rows are newest first: the
// in-progress lap on top with the live Lap value, then completed laps down
// to Lap 1. The seed entry only contributes the in-progress row's number.
func BuildView(s stopwatch.Session, l Labels) View {
	v := View{
		Total:   stopwatch.FormatTime(s.Total),
		Running: s.Running(),
	}
	if v.Running {
		v.Left = Control{Label: l.Lap, Command: control.CmdLap}
		v.Right = Control{Label: l.Stop, Command: control.CmdStop}
	} else {
		v.Left = Control{Label: l.Reset, Command: control.CmdReset}
		v.Right = Control{Label: l.Start, Command: control.CmdStart}
	}

	n := s.CurrentLapNumber()
	if n == 0 {
		return v
	}

	fastest, highlight := s.Fastest()
	slowest, _ := s.Slowest()

	v.Rows = make([]Row, 0, n)
	v.Rows = append(v.Rows, Row{
		Label: l.LapRow(n),
		Value: stopwatch.FormatTime(s.Lap),
		Live:  true,
	})
	for k := n - 1; k >= 1; k-- {
		d := s.Laps[k].Duration
		row := Row{Label: l.LapRow(k), Value: stopwatch.FormatTime(d)}
		if highlight {
			if d == fastest {
				row.Highlight = HighlightFastest
			}
			// slowest wins when every lap ties
			if d == slowest {
				row.Highlight = HighlightSlowest
			}
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}
