package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(p1, p2 LatLng) float64 {
	return p1.S2().Distance(p2.S2()).Radians() * EarthRadiusMeters
}

// Bearing calculates the initial bearing (forward azimuth) from start to end
// Returns bearing in degrees [0, 360), where 0 is North, 90 is East, etc.
func Bearing(start, end LatLng) float64 {
	return BearingS2(start.S2(), end.S2())
}

// BearingS2 calculates bearing between two s2 points
func BearingS2(p1, p2 s2.LatLng) float64 {
	lat1 := p1.Lat.Radians()
	lat2 := p2.Lat.Radians()
	lonDiff := p2.Lng.Radians() - p1.Lng.Radians()

	y := math.Sin(lonDiff) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lonDiff)
	bearing := math.Atan2(y, x)

	// Convert to degrees and normalize to 0-360
	bearingDeg := bearing * 180 / math.Pi
	bearingDeg = math.Mod(bearingDeg+360, 360)
	if bearingDeg >= 360 {
		bearingDeg = 0
	}
	return bearingDeg
}

// Midpoint calculates the great-circle midpoint between two points
func Midpoint(p1, p2 LatLng) LatLng {
	mid := s2.Interpolate(0.5, s2.PointFromLatLng(p1.S2()), s2.PointFromLatLng(p2.S2()))
	ll := s2.LatLngFromPoint(mid)
	return LatLng{Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()}
}

// EarthRadiusMeters is Earth's mean radius
const EarthRadiusMeters = 6371000.0
