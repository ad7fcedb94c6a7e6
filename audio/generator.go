package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound shapes
const (
	clickFreq     = 1400.0
	clickDuration = 25 * time.Millisecond
	clickDecay    = 180.0 // per second

	spawnFreq     = 660.0
	spawnDuration = 90 * time.Millisecond
	spawnAttack   = 5 * time.Millisecond
	spawnRelease  = 60 * time.Millisecond
)

// ClickGenerator is an exponentially decaying sine, short enough to read as a tick
type ClickGenerator struct {
	sr       beep.SampleRate
	freq     float64
	pos      int
	duration int
}

// NewClickGenerator creates a click of the given pitch and length
func NewClickGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ClickGenerator {
	return &ClickGenerator{
		sr:       sr,
		freq:     freq,
		duration: sr.N(d),
	}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		sample := 0.5 * math.Exp(-t*clickDecay) * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}

// envelope applies linear attack/release shaping and ends the stream at duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s into a bounded note
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, sr beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  sr.N(attack),
		releaseSamples: sr.N(release),
		totalSamples:   sr.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if remaining := e.totalSamples - e.position; remaining < len(samples) {
		if remaining <= 0 {
			return 0, false
		}
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain; 0 or below is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// newBounceSound is the click played when a circle bounces
func newBounceSound(sr beep.SampleRate, vol float64) beep.Streamer {
	return newVolume(NewClickGenerator(sr, clickFreq, clickDuration), vol)
}

// newSpawnSound is a soft tone played when a circle spawns
func newSpawnSound(sr beep.SampleRate, vol float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, spawnFreq)
	if err != nil {
		return nil, err
	}
	shaped := NewEnvelope(tone, spawnDuration, spawnAttack, spawnRelease, sr)
	return newVolume(shaped, vol*0.6), nil
}
