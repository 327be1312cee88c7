// Package mapview models the map card: its center, zoom controls, viewport size
// and the raster tile layer it draws from.
package mapview

import (
	"errors"
	"fmt"
	"math"

	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/spatial"
)

const (
	// TileSize is the pixel size of one raster tile
	TileSize = 256
	// MobileBreakpoint is the viewport width below which the layout is treated as mobile
	MobileBreakpoint = 1024
	// maxMercatorLat is the latitude at which Web Mercator is cut off
	maxMercatorLat = 85.0511287798
)

// Zoom directions accepted by ApplyZoom
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// ErrUnknownDirection is returned for a zoom direction other than "in" or "out"
var ErrUnknownDirection = errors.New("unknown zoom direction")

// View is the state of the map widget
type View struct {
	Center  spatial.LatLng `json:"center"`
	Zoom    int            `json:"zoom"`
	MinZoom int            `json:"min_zoom"`
	MaxZoom int            `json:"max_zoom"`
	Width   int            `json:"width"`
	Height  int            `json:"height"`
}

// DefaultView returns the map centered on Budapest
func DefaultView() View {
	return View{
		Center:  spatial.LatLng{Lat: 47.4979, Lng: 19.0402},
		Zoom:    12,
		MinZoom: 0,
		MaxZoom: 18,
		Width:   560,
		Height:  390,
	}
}

// SetZoom sets the zoom level, clamped to the enforced range
func (v *View) SetZoom(z int) {
	if z < v.MinZoom {
		z = v.MinZoom
	}
	if z > v.MaxZoom {
		z = v.MaxZoom
	}
	v.Zoom = z
}

// ZoomIn raises the zoom level by one
func (v *View) ZoomIn() {
	v.SetZoom(v.Zoom + 1)
}

// ZoomOut lowers the zoom level by one
func (v *View) ZoomOut() {
	v.SetZoom(v.Zoom - 1)
}

// ApplyZoom applies a zoom control click in the given direction
func (v *View) ApplyZoom(direction string) error {
	switch direction {
	case DirectionIn:
		v.ZoomIn()
	case DirectionOut:
		v.ZoomOut()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}
	return nil
}

// CanZoomIn reports whether the zoom-in control is enabled
func (v View) CanZoomIn() bool {
	return v.Zoom < v.MaxZoom
}

// CanZoomOut reports whether the zoom-out control is enabled
func (v View) CanZoomOut() bool {
	return v.Zoom > v.MinZoom
}

// Bounds returns the geographic viewport for the view's pixel size at its zoom level
func (v View) Bounds() spatial.Bounds {
	world := float64(TileSize) * math.Exp2(float64(v.Zoom))
	cx, cy := project(v.Center, world)

	halfW := float64(v.Width) / 2
	halfH := float64(v.Height) / 2

	sw := unproject(cx-halfW, cy+halfH, world)
	ne := unproject(cx+halfW, cy-halfH, world)
	return spatial.Bounds{SouthWest: sw, NorthEast: ne}
}

// IsMobile reports whether a viewport of the given width uses the mobile layout
func IsMobile(width int) bool {
	return width < MobileBreakpoint
}

// DraggingEnabled reports whether the map can be dragged at the given viewport width
func DraggingEnabled(width int) bool {
	return !IsMobile(width)
}

// project converts a point to Web Mercator pixel coordinates in a world of the given size
func project(p spatial.LatLng, world float64) (float64, float64) {
	lat := spatial.Clamp(p.Lat, -maxMercatorLat, maxMercatorLat) * math.Pi / 180
	x := (p.Lng + 180) / 360 * world
	y := (1 - math.Log(math.Tan(lat)+1/math.Cos(lat))/math.Pi) / 2 * world
	return x, y
}

// unproject converts Web Mercator pixel coordinates back to a point
func unproject(x, y, world float64) spatial.LatLng {
	lng := x/world*360 - 180
	n := math.Pi * (1 - 2*y/world)
	lat := math.Atan(math.Sinh(n)) * 180 / math.Pi
	return spatial.LatLng{Lat: lat, Lng: lng}
}
