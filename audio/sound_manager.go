package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/linebounce/engine"
)

const (
	sampleRate = beep.SampleRate(48000)

	DefaultVolume       = 0.3
	DefaultMaxPerSecond = 20.0
)

// SoundManager plays bounce and spawn feedback through a shared mixer
// Every method is safe to call before Initialize or after Cleanup; sounds are dropped
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	limiter     *rate.Limiter
	initialized bool

	// played counts sounds handed to the mixer, dropped ones excluded
	played int
}

// NewSoundManager creates a manager with the given linear volume and a cap on
// sounds started per second; maxPerSecond <= 0 disables throttling
func NewSoundManager(volume, maxPerSecond float64) *SoundManager {
	limit := rate.Inf
	burst := 1
	if maxPerSecond > 0 {
		limit = rate.Limit(maxPerSecond)
		burst = max(1, int(maxPerSecond/4))
	}
	return &SoundManager{
		mixer:   &beep.Mixer{},
		volume:  volume,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences pending sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close, an empty mixer keeps the device quiet
	sm.initialized = false
}

// PlayBounce plays a short click
func (sm *SoundManager) PlayBounce() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.limiter.Allow() {
		return
	}
	sm.add(newBounceSound(sampleRate, sm.volume))
}

// PlaySpawn plays a soft tone
func (sm *SoundManager) PlaySpawn() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.limiter.Allow() {
		return
	}
	s, err := newSpawnSound(sampleRate, sm.volume)
	if err != nil {
		return
	}
	sm.add(s)
}

// HandleTick maps one tick's statistics to sounds, at most one of each kind
func (sm *SoundManager) HandleTick(stats engine.TickStats) {
	if stats.Bounces > 0 {
		sm.PlayBounce()
	}
	if stats.Spawned > 0 {
		sm.PlaySpawn()
	}
}

// add must be called with mu held
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}
