package audio

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/speaker"
	"github.com/vovakirdan/dodgey/internal/core"
)

// BeepPlayer plays cues through the system speaker.
type BeepPlayer struct {
	bank   *Bank
	volume float64
	logger *log.Logger
}

// NewBeepPlayer opens the speaker at the bank's sample rate.
// Only one BeepPlayer may be open at a time.
func NewBeepPlayer(bank *Bank, volume float64, logger *log.Logger) (*BeepPlayer, error) {
	rate := bank.Rate()
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &BeepPlayer{bank: bank, volume: volume, logger: logger}, nil
}

// Play starts the cue and returns immediately.
func (p *BeepPlayer) Play(cue core.Cue) {
	if cue == core.CueNone {
		return
	}
	s, err := p.bank.Streamer(cue)
	if err != nil {
		p.logger.Warn("skipping cue", "cue", cue, "err", err)
		return
	}
	speaker.Play(newVolume(s, p.volume))
}

// Close stops all sounds and releases the speaker.
func (p *BeepPlayer) Close() {
	speaker.Clear()
	speaker.Close()
}

var _ Player = (*BeepPlayer)(nil)

