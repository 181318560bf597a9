package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefaults = []byte(`
window:
  title: Lapwatch
  width: 360
  height: 560
refresh:
  interval: 16ms
lap_sound:
  enabled: true
  frequency_hz: 1760
  length: 40ms
`)

func TestParseDefaults(t *testing.T) {
	c, err := Parse(testDefaults)
	require.NoError(t, err)

	assert.Equal(t, Default(), c)
}

func TestOverlayOverridesOnlyGivenKeys(t *testing.T) {
	c, err := Parse(testDefaults, []byte("refresh:\n  interval: 33ms\nlap_sound:\n  volume: -1.5\nlanguage: ru\n"))
	require.NoError(t, err)

	assert.Equal(t, 33*time.Millisecond, c.Refresh.Interval)
	assert.Equal(t, -1.5, c.LapSound.Volume)
	assert.True(t, c.LapSound.Enabled)
	assert.Equal(t, 360, c.Window.Width)
	assert.Equal(t, "ru", c.Language)
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"zero interval":  "refresh:\n  interval: 0s\n",
		"negative width": "window:\n  width: -1\n",
		"no tone":        "lap_sound:\n  frequency_hz: 0\n",
		"no length":      "lap_sound:\n  length: 0s\n",
	}
	for name, overlay := range cases {
		_, err := Parse(testDefaults, []byte(overlay))
		assert.Error(t, err, name)
	}

	// a sound file makes the tone settings irrelevant
	_, err := Parse(testDefaults, []byte("lap_sound:\n  file: click.ogg\n  frequency_hz: 0\n"))
	assert.NoError(t, err)
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse(testDefaults, []byte("window: [oops"))
	assert.Error(t, err)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(testDefaults, filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	c, err = Load(testDefaults, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: Laps\n"), 0o644))

	c, err := Load(testDefaults, path)
	require.NoError(t, err)
	assert.Equal(t, "Laps", c.Window.Title)
}

func TestDefaultPathHonorsEnv(t *testing.T) {
	t.Setenv(PathEnv, "/tmp/lapwatch.yaml")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/lapwatch.yaml", p)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	require.NoError(t, Watch(ctx, testDefaults, path, func(c *Config) { changes <- c }))

	require.NoError(t, os.WriteFile(path, []byte("lap_sound:\n  enabled: false\n"), 0o644))

	// the create event may be seen before the data lands
	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if !c.LapSound.Enabled {
				return
			}
		case <-deadline:
			t.Fatal("no reload after write")
		}
	}
}

func TestWatchMissingDirFails(t *testing.T) {
	err := Watch(context.Background(), testDefaults, filepath.Join(t.TempDir(), "nope", "config.yaml"), func(*Config) {})
	assert.Error(t, err)
}
