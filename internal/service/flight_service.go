package service

import (
	"context"
	"time"

	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/flight"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/mapview"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/models"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/spatial"
)

// FlightService handles the plane marker sweep
type FlightService struct {
	clock    flight.Clock
	duration time.Duration
	interval time.Duration
	view     mapview.View
}

// NewFlightService creates a new flight service
func NewFlightService(clock flight.Clock, duration, interval time.Duration, view mapview.View) *FlightService {
	if clock == nil {
		clock = flight.RealClock()
	}
	if duration <= 0 {
		duration = flight.DefaultDuration
	}
	return &FlightService{clock: clock, duration: duration, interval: interval, view: view}
}

// Bounds resolves a viewport query, falling back to the default view
func (s *FlightService) Bounds(q models.BoundsQuery) (spatial.Bounds, error) {
	if q.IsEmpty() {
		return s.view.Bounds(), nil
	}
	if !q.IsComplete() {
		return spatial.Bounds{}, flight.ErrInvalidBounds
	}
	return q.Bounds(), nil
}

// Path computes the sweep for a viewport
func (s *FlightService) Path(q models.BoundsQuery) (models.PathResponse, error) {
	b, err := s.Bounds(q)
	if err != nil {
		return models.PathResponse{}, err
	}
	p, err := flight.NewPath(b)
	if err != nil {
		return models.PathResponse{}, err
	}

	return models.PathResponse{
		Path:       p,
		Bearing:    p.Bearing(),
		Rotation:   p.Rotation(),
		LengthM:    p.Length(),
		Midpoint:   p.Midpoint(),
		DurationMs: s.duration.Milliseconds(),
	}, nil
}

// Frame computes one frame of the sweep
func (s *FlightService) Frame(q models.FrameQuery) (flight.Frame, error) {
	b, err := s.Bounds(q.BoundsQuery)
	if err != nil {
		return flight.Frame{}, err
	}
	p, err := flight.NewPath(b)
	if err != nil {
		return flight.Frame{}, err
	}

	// Wrap in milliseconds first; large elapsed_ms values overflow a Duration.
	elapsed := q.ElapsedMs
	if ms := s.duration.Milliseconds(); ms > 0 {
		elapsed %= ms
	}
	f := flight.FrameAt(p, time.Duration(elapsed)*time.Millisecond, s.duration)
	f.ElapsedMs = q.ElapsedMs
	return f, nil
}

// Stream emits frames for a viewport until ctx ends or emit returns false
func (s *FlightService) Stream(ctx context.Context, q models.BoundsQuery, emit func(flight.Frame) bool) error {
	b, err := s.Bounds(q)
	if err != nil {
		return err
	}
	a, err := flight.NewAnimator(s.clock, s.duration, b)
	if err != nil {
		return err
	}
	return a.Run(ctx, s.interval, emit)
}
