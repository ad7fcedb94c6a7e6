package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides simulation time that stands still while paused
// Spawn timing reads this clock so a resume does not release a burst of circles
type PausableClock struct {
	mu sync.RWMutex

	source    TimeProvider
	startTime time.Time // Real time the clock was created

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // Real time the current pause began
	totalPausedTime time.Duration // Cumulative completed pause duration
}

// NewPausableClock creates a running clock over the given real time source
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = MonotonicTimeProvider{}
	}
	return &PausableClock{
		source:    source,
		startTime: source.Now(),
	}
}

// Now returns simulation time: real elapsed time minus all paused time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		// Frozen at the pause point
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}
	return pc.source.Now().Add(-pc.totalPausedTime)
}

// Pause stops simulation time, no-op when already paused
func (pc *PausableClock) Pause() {
	if pc.isPaused.Load() {
		return
	}
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.pauseStartTime = pc.source.Now()
	pc.isPaused.Store(true)
}

// Resume continues simulation time, no-op when running
func (pc *PausableClock) Resume() {
	if !pc.isPaused.Load() {
		return
	}
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.isPaused.Store(false)
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.isPaused.Load() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// Uptime returns simulation time elapsed since creation
func (pc *PausableClock) Uptime() time.Duration {
	return pc.Now().Sub(pc.startTime)
}
