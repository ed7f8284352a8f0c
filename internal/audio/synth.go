package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue timing
const (
	LaserDuration     = 180 * time.Millisecond
	ExplosionDuration = 600 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a wave gliding linearly from one frequency to another.
type oscillator struct {
	from, to float64
	phase    float64
	position int
	duration int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a streamer of the given length. The frequency glides
// from "from" to "to"; pass the same value twice for a steady tone.
func NewOscillator(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(from*1000 + to))), //#nosec G404 -- noise
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential tail.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
	decay    float64 // Tail steepness, 0 = flat
}

// NewEnvelope shapes a stream: a linear ramp over attack, then
// exp(-decay*t) for the rest of duration.
func NewEnvelope(s beep.Streamer, duration, attack time.Duration, decay float64, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		total:    rate.N(duration),
		decay:    decay,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else if e.decay > 0 {
			tail := float64(e.position-e.attack) / float64(e.total)
			vol = math.Exp(-e.decay * tail)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Laser is a falling square chirp over a short sine ping.
func Laser(rate beep.SampleRate) beep.Streamer {
	chirp := NewEnvelope(
		NewOscillator(1400, 300, LaserDuration, WaveSquare, rate),
		LaserDuration, 4*time.Millisecond, 4, rate,
	)

	var ping beep.Streamer = beep.Silence(rate.N(LaserDuration))
	if tone, err := generators.SineTone(rate, 880); err == nil {
		ping = NewEnvelope(beep.Take(rate.N(LaserDuration), tone), LaserDuration, 2*time.Millisecond, 9, rate)
	}

	return beep.Mix(newVolume(chirp, 0.25), newVolume(ping, 0.2))
}

// Explosion is decaying noise over a low rumble.
func Explosion(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(
		NewOscillator(0, 0, ExplosionDuration, WaveNoise, rate),
		ExplosionDuration, 3*time.Millisecond, 5, rate,
	)
	rumble := NewEnvelope(
		NewOscillator(90, 40, ExplosionDuration, WaveSine, rate),
		ExplosionDuration, 10*time.Millisecond, 3, rate,
	)
	return beep.Mix(newVolume(noise, 0.4), newVolume(rumble, 0.5))
}
