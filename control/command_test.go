package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandTypeString(t *testing.T) {
	assert.Equal(t, "start", CmdStart.String())
	assert.Equal(t, "stop", CmdStop.String())
	assert.Equal(t, "lap", CmdLap.String())
	assert.Equal(t, "reset", CmdReset.String())
	assert.Equal(t, "unknown", CommandType(42).String())
}
