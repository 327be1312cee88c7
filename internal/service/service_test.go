package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/flight"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/mapview"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/models"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/profile"
)

func newTestPortfolio(t *testing.T) *PortfolioService {
	t.Helper()
	s, err := NewPortfolioService(PortfolioOptions{
		Content:        profile.Default(),
		View:           mapview.DefaultView(),
		Tiles:          mapview.DefaultTileLayer(),
		FlightDuration: 10 * time.Second,
		Source:         func() rand.Source { return rand.NewPCG(11, 12) },
	})
	if err != nil {
		t.Fatalf("NewPortfolioService failed: %v", err)
	}
	return s
}

func intPtr(v int) *int { return &v }

func float64Ptr(v float64) *float64 { return &v }

func TestNewPortfolioService_RejectsInvalidContent(t *testing.T) {
	c := profile.Default()
	c.Links[0].URL = "not a url"

	if _, err := NewPortfolioService(PortfolioOptions{Content: c, View: mapview.DefaultView()}); err == nil {
		t.Error("expected error for invalid content")
	}
}

func TestPortfolioService_Page(t *testing.T) {
	s := newTestPortfolio(t)

	p, err := s.Page(0, language.English)
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if p.Map.Duration != 10 {
		t.Errorf("Map.Duration = %v, want 10", p.Map.Duration)
	}
	if p.Activity.Active() == 0 {
		t.Error("expected some highlighted activity cells")
	}
}

func TestPortfolioService_Activity(t *testing.T) {
	s := newTestPortfolio(t)

	a := s.Activity(language.English)
	if len(a.Grid.Cells) != 84 {
		t.Errorf("expected 84 cells, got %d", len(a.Grid.Cells))
	}
	if a.Active != a.Grid.Active() {
		t.Errorf("Active = %d, want %d", a.Active, a.Grid.Active())
	}
}

func TestPortfolioService_Zoom(t *testing.T) {
	s := newTestPortfolio(t)

	tests := []struct {
		name     string
		req      models.ZoomRequest
		expected int
		wantErr  bool
	}{
		{"in from default", models.ZoomRequest{Direction: "in"}, 13, false},
		{"out from client zoom", models.ZoomRequest{Zoom: intPtr(5), Direction: "out"}, 4, false},
		{"in at max", models.ZoomRequest{Zoom: intPtr(18), Direction: "in"}, 18, false},
		{"out at min", models.ZoomRequest{Zoom: intPtr(0), Direction: "out"}, 0, false},
		{"client zoom above max is clamped first", models.ZoomRequest{Zoom: intPtr(40), Direction: "out"}, 17, false},
		{"bad direction", models.ZoomRequest{Direction: "up"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.Zoom(tt.req)
			if tt.wantErr {
				if !errors.Is(err, mapview.ErrUnknownDirection) {
					t.Errorf("expected ErrUnknownDirection, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.View.Zoom != tt.expected {
				t.Errorf("zoom = %d, want %d", resp.View.Zoom, tt.expected)
			}
		})
	}

	// The service's own view is never mutated by a request
	if s.Map().View.Zoom != 12 {
		t.Errorf("default zoom changed to %d", s.Map().View.Zoom)
	}
}

func TestFlightService_Path(t *testing.T) {
	s := NewFlightService(nil, 0, time.Millisecond, mapview.DefaultView())

	resp, err := s.Path(models.BoundsQuery{})
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if resp.DurationMs != flight.DefaultDuration.Milliseconds() {
		t.Errorf("DurationMs = %d", resp.DurationMs)
	}
	if resp.Path.Bounds != mapview.DefaultView().Bounds() {
		t.Error("expected default view bounds")
	}
	if resp.LengthM <= 0 {
		t.Errorf("LengthM = %v, want > 0", resp.LengthM)
	}
}

func TestFlightService_PathInvalid(t *testing.T) {
	s := NewFlightService(nil, 0, time.Millisecond, mapview.DefaultView())

	partial := models.BoundsQuery{South: float64Ptr(47)}
	if _, err := s.Path(partial); !errors.Is(err, flight.ErrInvalidBounds) {
		t.Errorf("partial bounds: expected ErrInvalidBounds, got %v", err)
	}

	inverted := models.BoundsQuery{
		South: float64Ptr(48), West: float64Ptr(19),
		North: float64Ptr(47), East: float64Ptr(18),
	}
	if _, err := s.Path(inverted); !errors.Is(err, flight.ErrInvalidBounds) {
		t.Errorf("inverted bounds: expected ErrInvalidBounds, got %v", err)
	}
}

func TestFlightService_Frame(t *testing.T) {
	s := NewFlightService(nil, 10*time.Second, time.Millisecond, mapview.DefaultView())

	f, err := s.Frame(models.FrameQuery{ElapsedMs: 12500})
	if err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	if f.Progress != 0.25 {
		t.Errorf("Progress = %v, want 0.25", f.Progress)
	}
}

func TestFlightService_FrameLargeElapsed(t *testing.T) {
	s := NewFlightService(nil, 10*time.Second, time.Millisecond, mapview.DefaultView())

	// beyond what a time.Duration can hold in nanoseconds
	f, err := s.Frame(models.FrameQuery{ElapsedMs: 9_300_000_002_500})
	if err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	if f.Progress != 0.25 {
		t.Errorf("Progress = %v, want 0.25", f.Progress)
	}
	if f.ElapsedMs != 9_300_000_002_500 {
		t.Errorf("ElapsedMs = %d, want the requested value", f.ElapsedMs)
	}
}

func TestFlightService_StreamStopsOnCancel(t *testing.T) {
	s := NewFlightService(nil, time.Second, time.Millisecond, mapview.DefaultView())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	frames := 0
	err := s.Stream(ctx, models.BoundsQuery{}, func(flight.Frame) bool {
		frames++
		return true
	})

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if frames == 0 {
		t.Error("expected frames before cancellation")
	}
}
