package flight

import (
	"context"
	"sync"
	"time"

	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/spatial"
)

// Clock abstracts time for the animation loop
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns the wall clock
func RealClock() Clock { return realClock{} }

// Animator drives one marker. Each view change rebuilds the path and restarts the sweep.
type Animator struct {
	mu       sync.Mutex
	clock    Clock
	duration time.Duration
	path     Path
	started  time.Time
}

// NewAnimator creates an animator for the given viewport
func NewAnimator(clock Clock, duration time.Duration, b spatial.Bounds) (*Animator, error) {
	if clock == nil {
		clock = RealClock()
	}
	if duration <= 0 {
		duration = DefaultDuration
	}

	a := &Animator{clock: clock, duration: duration}
	if err := a.SetBounds(b); err != nil {
		return nil, err
	}
	return a, nil
}

// SetBounds recomputes the path for a new viewport and restarts the sweep
func (a *Animator) SetBounds(b spatial.Bounds) error {
	path, err := NewPath(b)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.path = path
	a.started = a.clock.Now()
	return nil
}

// Frame computes the marker frame for the current instant
func (a *Animator) Frame() Frame {
	a.mu.Lock()
	path := a.path
	elapsed := a.clock.Now().Sub(a.started)
	a.mu.Unlock()

	return FrameAt(path, elapsed, a.duration)
}

// Run emits a frame every interval until ctx is done or fn returns false
func (a *Animator) Run(ctx context.Context, interval time.Duration, fn func(Frame) bool) error {
	if interval <= 0 {
		interval = time.Second / 30
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if !fn(a.Frame()) {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !fn(a.Frame()) {
				return nil
			}
		}
	}
}
