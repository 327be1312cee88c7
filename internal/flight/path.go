// Package flight computes the decorative plane marker that sweeps across the map
// viewport: its path from outside the south-west corner to outside the north-east
// corner, its position over a repeating linear sweep, and its edge fade.
package flight

import (
	"errors"
	"math"
	"time"

	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/spatial"
)

const (
	// PathExtension is the fraction of each span the path extends past the viewport
	PathExtension = 0.3
	// FadeMargin is the fraction of each span over which the marker fades in at the edges
	FadeMargin = 0.06
	// RotationOffset aligns the plane glyph with its heading
	RotationOffset = -55.0
	// DefaultDuration is one full sweep
	DefaultDuration = 10 * time.Second
)

// ErrInvalidBounds is returned when a path is requested for unusable viewport bounds
var ErrInvalidBounds = errors.New("invalid viewport bounds")

// Path is a straight sweep across a viewport
type Path struct {
	Start  spatial.LatLng `json:"start"`
	End    spatial.LatLng `json:"end"`
	Bounds spatial.Bounds `json:"bounds"`
}

// NewPath builds the sweep for the given viewport bounds
func NewPath(b spatial.Bounds) (Path, error) {
	if !b.IsValid() {
		return Path{}, ErrInvalidBounds
	}

	extendLat := b.LatSpan() * PathExtension
	extendLng := b.LngSpan() * PathExtension

	return Path{
		Start: spatial.LatLng{
			Lat: b.SouthWest.Lat - extendLat,
			Lng: b.SouthWest.Lng - extendLng,
		},
		End: spatial.LatLng{
			Lat: b.NorthEast.Lat + extendLat,
			Lng: b.NorthEast.Lng + extendLng,
		},
		Bounds: b,
	}, nil
}

// Bearing returns the heading from start to end in degrees
func (p Path) Bearing() float64 {
	return spatial.Bearing(p.Start, p.End)
}

// Rotation returns the CSS rotation applied to the plane glyph
func (p Path) Rotation() float64 {
	return p.Bearing() + RotationOffset
}

// Length returns the great-circle length of the sweep in meters
func (p Path) Length() float64 {
	return spatial.HaversineDistance(p.Start, p.End)
}

// Midpoint returns the great-circle midpoint of the sweep
func (p Path) Midpoint() spatial.LatLng {
	return spatial.Midpoint(p.Start, p.End)
}

// PositionAt interpolates the marker position for progress in [0, 1)
func (p Path) PositionAt(progress float64) spatial.LatLng {
	return spatial.Lerp(p.Start, p.End, progress)
}

// Progress maps elapsed time onto a repeating sweep.
// The result is always in [0, 1) and resets to 0 each time elapsed reaches a multiple of duration.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed <= 0 {
		return 0
	}
	t := float64(elapsed%duration) / float64(duration)
	if t >= 1 {
		return 0
	}
	return t
}

// Visibility computes the fade factor for a marker at p inside viewport b.
// Zero outside the bounds, a linear ramp across the inner margin, one in the interior.
func Visibility(p spatial.LatLng, b spatial.Bounds) float64 {
	if !b.IsValid() || !b.Contains(p) {
		return 0
	}

	latVis := edgeRamp(p.Lat, b.SouthWest.Lat, b.NorthEast.Lat)
	lngVis := edgeRamp(p.Lng, b.SouthWest.Lng, b.NorthEast.Lng)

	return spatial.Clamp(math.Min(latVis, lngVis), 0, 1)
}

// edgeRamp returns the visibility along one axis for v within [lo, hi]
func edgeRamp(v, lo, hi float64) float64 {
	margin := (hi - lo) * FadeMargin
	if margin <= 0 {
		// Degenerate span: the viewport is a line, nothing to fade across
		return 1
	}

	switch {
	case v < lo+margin:
		return (v - lo) / margin
	case v > hi-margin:
		return (hi - v) / margin
	default:
		return 1
	}
}
