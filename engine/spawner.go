package engine

import (
	"time"
)

// Spawner tracks elapsed time since the last spawn
type Spawner struct {
	Interval  time.Duration
	clock     TimeProvider
	lastSpawn time.Time
}

// NewSpawner starts the interval at the clock's current time
func NewSpawner(interval time.Duration, clock TimeProvider) *Spawner {
	return &Spawner{
		Interval:  interval,
		clock:     clock,
		lastSpawn: clock.Now(),
	}
}

// Due reports whether strictly more than Interval has passed since the last spawn
func (s *Spawner) Due() bool {
	return s.clock.Now().Sub(s.lastSpawn) > s.Interval
}

// Mark records a spawn at the current time
func (s *Spawner) Mark() {
	s.lastSpawn = s.clock.Now()
}
