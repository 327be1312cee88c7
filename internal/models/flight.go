package models

import (
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/flight"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/spatial"
)

// BoundsQuery represents the viewport passed as query parameters.
// All four edges must be given together; when none are given the server's default view is used.
type BoundsQuery struct {
	South *float64 `form:"south"`
	West  *float64 `form:"west"`
	North *float64 `form:"north"`
	East  *float64 `form:"east"`
}

// IsEmpty reports whether no edge was supplied
func (q BoundsQuery) IsEmpty() bool {
	return q.South == nil && q.West == nil && q.North == nil && q.East == nil
}

// IsComplete reports whether all four edges were supplied
func (q BoundsQuery) IsComplete() bool {
	return q.South != nil && q.West != nil && q.North != nil && q.East != nil
}

// Bounds converts a complete query to viewport bounds
func (q BoundsQuery) Bounds() spatial.Bounds {
	return spatial.NewBounds(*q.South, *q.West, *q.North, *q.East)
}

// FrameQuery selects one frame of the sweep
type FrameQuery struct {
	BoundsQuery
	ElapsedMs int64 `form:"elapsed_ms" binding:"min=0"`
}

// PathResponse describes a sweep across the viewport
type PathResponse struct {
	Path       flight.Path    `json:"path"`
	Bearing    float64        `json:"bearing"`
	Rotation   float64        `json:"rotation"`
	LengthM    float64        `json:"length_m"`
	Midpoint   spatial.LatLng `json:"midpoint"`
	DurationMs int64          `json:"duration_ms"`
}
