package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to completion and returns the mono samples
func drain(t *testing.T, s beep.Streamer, limit int) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return nil
}

func TestClickGeneratorBoundedAndDecaying(t *testing.T) {
	g := NewClickGenerator(sampleRate, clickFreq, clickDuration)
	out := drain(t, g, sampleRate.N(time.Second))

	require.Len(t, out, sampleRate.N(clickDuration))
	peakHead, peakTail := 0.0, 0.0
	for i, v := range out {
		assert.LessOrEqual(t, math.Abs(v), 0.5)
		if i < len(out)/4 {
			peakHead = math.Max(peakHead, math.Abs(v))
		} else if i >= 3*len(out)/4 {
			peakTail = math.Max(peakTail, math.Abs(v))
		}
	}
	assert.Greater(t, peakHead, peakTail)
	assert.NoError(t, g.Err())
}

func TestEnvelopeShape(t *testing.T) {
	total := 100 * time.Millisecond
	env := NewEnvelope(dcLevel(1), total, 10*time.Millisecond, 20*time.Millisecond, sampleRate)
	out := drain(t, env, sampleRate.N(time.Second))

	require.Len(t, out, sampleRate.N(total))
	assert.Equal(t, 0.0, out[0], "attack starts silent")
	assert.Equal(t, 1.0, out[len(out)/2], "sustain at unity")
	assert.Less(t, out[len(out)-1], 0.01, "release ends near zero")
}

func TestSpawnSound(t *testing.T) {
	s, err := newSpawnSound(sampleRate, DefaultVolume)
	require.NoError(t, err)

	out := drain(t, s, sampleRate.N(time.Second))
	assert.Len(t, out, sampleRate.N(spawnDuration))
}

func TestNewVolumeSilent(t *testing.T) {
	out := drain(t, beep.Take(64, newVolume(dcLevel(1), 0)), 1024)
	for _, v := range out {
		assert.Equal(t, 0.0, v)
	}
}

// dcLevel is an endless streamer of a fixed sample value
type dcLevel float64

func (c dcLevel) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0] = float64(c)
		samples[i][1] = float64(c)
	}
	return len(samples), true
}

func (c dcLevel) Err() error { return nil }
