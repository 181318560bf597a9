// Package config loads the application settings. Built-in defaults ship as
// embedded YAML and a user file may override any key. None of these
// settings hold timer state.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// PathEnv points at an alternative user config file.
const PathEnv = "LAPWATCH_CONFIG"

type Config struct {
	Window   WindowConfig  `yaml:"window"`
	Refresh  RefreshConfig `yaml:"refresh"`
	LapSound SoundConfig   `yaml:"lap_sound"`
	Language string        `yaml:"language"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type RefreshConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// SoundConfig controls the click played on every recorded lap. File is an
// Ogg Vorbis file; when empty a short tone of FrequencyHz is synthesized.
// Volume is in the beep effects scale (base 2, 0 is unchanged).
type SoundConfig struct {
	Enabled     bool          `yaml:"enabled"`
	File        string        `yaml:"file"`
	FrequencyHz float64       `yaml:"frequency_hz"`
	Length      time.Duration `yaml:"length"`
	Volume      float64       `yaml:"volume"`
}

// Default returns the settings used when no file can be read.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Lapwatch",
			Width:  360,
			Height: 560,
		},
		Refresh: RefreshConfig{
			Interval: 16 * time.Millisecond,
		},
		LapSound: SoundConfig{
			Enabled:     true,
			FrequencyHz: 1760,
			Length:      40 * time.Millisecond,
		},
	}
}

// Validate rejects settings the application cannot run with.
func (c *Config) Validate() error {
	if c.Refresh.Interval <= 0 {
		return errors.Errorf("refresh.interval must be positive, got %v", c.Refresh.Interval)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.LapSound.Enabled && c.LapSound.File == "" {
		if c.LapSound.FrequencyHz <= 0 {
			return errors.Errorf("lap_sound.frequency_hz must be positive, got %v", c.LapSound.FrequencyHz)
		}
		if c.LapSound.Length <= 0 {
			return errors.Errorf("lap_sound.length must be positive, got %v", c.LapSound.Length)
		}
	}
	return nil
}

// Parse decodes base and then overlays each of the given documents in order.
func Parse(base []byte, overlays ...[]byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(base, c); err != nil {
		return nil, errors.Wrap(err, "parse default config")
	}
	for _, o := range overlays {
		if err := yaml.Unmarshal(o, c); err != nil {
			return nil, errors.Wrap(err, "parse user config")
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load parses the embedded defaults and overlays the user file at path if
// it exists. A missing user file is not an error.
func Load(defaults []byte, path string) (*Config, error) {
	if path == "" {
		return Parse(defaults)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Parse(defaults)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(defaults, data)
}

// DefaultPath returns $LAPWATCH_CONFIG or ~/.lapwatch/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home dir")
	}
	return filepath.Join(home, ".lapwatch", "config.yaml"), nil
}
