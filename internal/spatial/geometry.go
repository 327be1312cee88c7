package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// LatLng is a geographic point in degrees
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// S2 converts the point to an s2.LatLng
func (p LatLng) S2() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}

// Bounds is the geographic rectangle visible in a map viewport
type Bounds struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
}

// NewBounds builds bounds from the four edges of a viewport
func NewBounds(south, west, north, east float64) Bounds {
	return Bounds{
		SouthWest: LatLng{Lat: south, Lng: west},
		NorthEast: LatLng{Lat: north, Lng: east},
	}
}

// IsValid reports whether both corners are finite and ordered SW <= NE
func (b Bounds) IsValid() bool {
	for _, v := range []float64{b.SouthWest.Lat, b.SouthWest.Lng, b.NorthEast.Lat, b.NorthEast.Lng} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.SouthWest.Lat <= b.NorthEast.Lat && b.SouthWest.Lng <= b.NorthEast.Lng
}

// LatSpan returns the north-south extent in degrees
func (b Bounds) LatSpan() float64 {
	return b.NorthEast.Lat - b.SouthWest.Lat
}

// LngSpan returns the east-west extent in degrees
func (b Bounds) LngSpan() float64 {
	return b.NorthEast.Lng - b.SouthWest.Lng
}

// Contains checks if a point lies inside the bounds, edges included
func (b Bounds) Contains(p LatLng) bool {
	return p.Lat >= b.SouthWest.Lat && p.Lat <= b.NorthEast.Lat &&
		p.Lng >= b.SouthWest.Lng && p.Lng <= b.NorthEast.Lng
}

// Center returns the midpoint of the bounds in degree space
func (b Bounds) Center() LatLng {
	return Lerp(b.SouthWest, b.NorthEast, 0.5)
}

// Lerp linearly interpolates latitude and longitude between start and end.
// t = 0 yields start and t = 1 yields end.
func Lerp(start, end LatLng, t float64) LatLng {
	return LatLng{
		Lat: start.Lat + (end.Lat-start.Lat)*t,
		Lng: start.Lng + (end.Lng-start.Lng)*t,
	}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

