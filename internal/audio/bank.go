package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/vovakirdan/dodgey/internal/core"
)

// DefaultSampleRate is used for synthesized cues and the speaker.
const DefaultSampleRate = beep.SampleRate(44100)

// Bank maps cues to fresh streamers.
type Bank struct {
	rate   beep.SampleRate
	sounds map[core.Cue]func() beep.Streamer
}

// NewSynthBank returns a bank of synthesized cues.
func NewSynthBank(rate beep.SampleRate) *Bank {
	return &Bank{
		rate: rate,
		sounds: map[core.Cue]func() beep.Streamer{
			core.CueLaser:     func() beep.Streamer { return Laser(rate) },
			core.CueExplosion: func() beep.Streamer { return Explosion(rate) },
		},
	}
}

// LoadBank reads <dir>/<cue>.wav for every cue, resampled to rate.
// A missing or unreadable file is an error.
func LoadBank(dir string, rate beep.SampleRate) (*Bank, error) {
	b := &Bank{rate: rate, sounds: make(map[core.Cue]func() beep.Streamer, len(Cues))}
	for _, cue := range Cues {
		buf, err := loadWAV(filepath.Join(dir, string(cue)+".wav"), rate)
		if err != nil {
			return nil, err
		}
		b.sounds[cue] = func() beep.Streamer { return buf.Streamer(0, buf.Len()) }
	}
	return b, nil
}

func loadWAV(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path) //#nosec G304 -- user supplied sound directory
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}

	stream, format, err := wav.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer func() { _ = stream.Close() }()

	var s beep.Streamer = stream
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, stream)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", path, err)
	}
	return buf, nil
}

// Rate returns the sample rate of every streamer in the bank.
func (b *Bank) Rate() beep.SampleRate {
	return b.rate
}

// Streamer returns a new streamer for cue.
func (b *Bank) Streamer(cue core.Cue) (beep.Streamer, error) {
	mk, ok := b.sounds[cue]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCue, cue)
	}
	return mk(), nil
}
