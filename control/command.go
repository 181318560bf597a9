// Package control defines lightweight command messages used by the UI to
// request stopwatch transitions from the application command loop. The
// command loop is the only writer of the engine, which keeps every
// transition ordered.
package control

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdStop
	CmdLap
	CmdReset
)

func (c CommandType) String() string {
	switch c {
	case CmdStart:
		return "start"
	case CmdStop:
		return "stop"
	case CmdLap:
		return "lap"
	case CmdReset:
		return "reset"
	}
	return "unknown"
}

// Command is the message sent from the UI to AppManager.commandLoop. The
// optional Reply channel receives whether the transition was applied.
type Command struct {
	Type  CommandType
	Reply chan bool
}
