// Package audio plays the short cues emitted by the simulation.
package audio

import (
	"errors"

	"github.com/vovakirdan/dodgey/internal/core"
)

// ErrUnknownCue is returned when a cue has no sound.
var ErrUnknownCue = errors.New("audio: unknown cue")

// Cues lists every cue a bank must provide.
var Cues = []core.Cue{core.CueLaser, core.CueExplosion}

// Player plays cues fire-and-forget.
type Player interface {
	Play(cue core.Cue)
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Cue) {}

// Close does nothing.
func (Nop) Close() {}
