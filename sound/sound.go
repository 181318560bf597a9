// Package sound plays the short click that marks a recorded lap.
package sound

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/pkg/errors"

	"Lapwatch/config"
)

// SampleRate is the speaker rate; sound files are resampled to it.
const SampleRate = beep.SampleRate(44100)

// Player holds the decoded lap cue and plays it on demand. Until Open
// succeeds, Play is a no-op.
type Player struct {
	mu     sync.Mutex
	cfg    config.SoundConfig
	buffer *beep.Buffer
	out    func(beep.Streamer)
}

// NewPlayer decodes or synthesizes the cue described by cfg.
func NewPlayer(cfg config.SoundConfig) (*Player, error) {
	p := &Player{}
	return p, p.Apply(cfg)
}

// Open initializes the audio device. On failure the player stays silent.
func (p *Player) Open() error {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	p.mu.Lock()
	p.out = func(s beep.Streamer) { speaker.Play(s) }
	p.mu.Unlock()
	return nil
}

// Apply swaps in new settings, rebuilding the cue. On error the previous
// cue is kept.
func (p *Player) Apply(cfg config.SoundConfig) error {
	var buf *beep.Buffer
	if cfg.Enabled {
		var err error
		if buf, err = buildBuffer(cfg, SampleRate); err != nil {
			return err
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg = cfg
	if cfg.Enabled {
		p.buffer = buf
	}
	return nil
}

// Play starts the cue without blocking. It reports whether anything was
// queued.
func (p *Player) Play() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.cfg.Enabled || p.buffer == nil || p.out == nil {
		return false
	}

	p.out(&effects.Volume{
		Streamer: p.buffer.Streamer(0, p.buffer.Len()),
		Base:     2,
		Volume:   p.cfg.Volume,
		Silent:   false,
	})
	return true
}

func buildBuffer(cfg config.SoundConfig, sr beep.SampleRate) (*beep.Buffer, error) {
	buffer := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})

	if cfg.File != "" {
		f, err := os.Open(cfg.File)
		if err != nil {
			return nil, errors.Wrapf(err, "open lap sound %s", cfg.File)
		}
		streamer, format, err := vorbis.Decode(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "decode lap sound %s", cfg.File)
		}
		defer streamer.Close()

		buffer.Append(beep.Resample(4, format.SampleRate, sr, streamer))
		log.Printf("Loaded lap sound %s (%d samples)", cfg.File, buffer.Len())
		return buffer, nil
	}

	tone, err := generators.SineTone(sr, cfg.FrequencyHz)
	if err != nil {
		return nil, errors.Wrapf(err, "synthesize %vHz tone", cfg.FrequencyHz)
	}
	buffer.Append(beep.Take(sr.N(cfg.Length), tone))
	return buffer, nil
}
