package realtime

import (
	"context"
	"sync"
	"time"
)

// SimulatedClock runs from a chosen start instant at Speed times real time. It serves as the
// current time provider for departure formatting.
type SimulatedClock struct {
	Speed float64

	mu        sync.Mutex
	start     time.Time
	startedAt time.Time

	realNow func() time.Time
}

func NewSimulatedClock(start time.Time, speed float64) *SimulatedClock {
	if speed <= 0 {
		speed = 1
	}

	return &SimulatedClock{
		Speed:     speed,
		start:     start,
		startedAt: time.Now(),
		realNow:   time.Now,
	}
}

func (c *SimulatedClock) CurrentTime() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	elapsed := c.realNow().Sub(c.startedAt)

	return c.start.Add(time.Duration(float64(elapsed) * c.Speed))
}

// Set jumps the clock to t.
func (c *SimulatedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.start = t
	c.startedAt = c.realNow()
}

// Run calls onTick with the simulated time every interval of real time until ctx is done. The
// first tick happens immediately.
func (c *SimulatedClock) Run(ctx context.Context, interval time.Duration, onTick func(time.Time)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	onTick(c.CurrentTime())

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			onTick(c.CurrentTime())
		}
	}
}
