package service

import (
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/text/language"

	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/activity"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/mapview"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/models"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/page"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/profile"
)

// PortfolioOptions configures a PortfolioService
type PortfolioOptions struct {
	Content        profile.Content
	View           mapview.View
	Tiles          mapview.TileLayer
	Weeks          int
	FlightDuration time.Duration
	// Source returns the random source for one render; nil rolls a fresh time-seeded source each time
	Source func() rand.Source
}

// PortfolioService assembles the page and its generated parts
type PortfolioService struct {
	opts PortfolioOptions
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(opts PortfolioOptions) (*PortfolioService, error) {
	if err := opts.Content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid portfolio content: %w", err)
	}
	if opts.Source == nil {
		opts.Source = activity.NewSource
	}
	return &PortfolioService{opts: opts}, nil
}

// Content returns the hardcoded profile, links and projects
func (s *PortfolioService) Content() profile.Content {
	return s.opts.Content
}

// Page builds the bento page for a client of the given viewport width
func (s *PortfolioService) Page(width int, lang language.Tag) (*page.Page, error) {
	p, err := page.Build(page.Options{
		Content:  s.opts.Content,
		View:     s.opts.View,
		Tiles:    s.opts.Tiles,
		Weeks:    s.opts.Weeks,
		Duration: s.opts.FlightDuration.Seconds(),
		Width:    width,
		Lang:     lang,
		Source:   s.opts.Source(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build page: %w", err)
	}
	return p, nil
}

// Activity rolls a new contribution grid
func (s *PortfolioService) Activity(lang language.Tag) models.ActivityResponse {
	grid := activity.NewGenerator(s.opts.Source(), s.opts.Weeks).Generate()
	return models.ActivityResponse{
		Grid:    grid,
		Active:  grid.Active(),
		Stats:   grid.Stats(),
		Summary: grid.Summary(lang),
	}
}

// Map returns the default map card state
func (s *PortfolioService) Map() models.MapResponse {
	return models.NewMapResponse(s.opts.View, s.opts.Tiles)
}

// Zoom applies one zoom control click to the client's current zoom level
func (s *PortfolioService) Zoom(req models.ZoomRequest) (models.MapResponse, error) {
	v := s.opts.View
	if req.Zoom != nil {
		v.SetZoom(*req.Zoom)
	}
	if err := v.ApplyZoom(req.Direction); err != nil {
		return models.MapResponse{}, err
	}
	return models.NewMapResponse(v, s.opts.Tiles), nil
}
