package models

import (
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/activity"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/mapview"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/spatial"
)

// ZoomRequest is one click on the map's zoom controls.
// Zoom is the level the client currently shows; the server default is assumed when omitted.
type ZoomRequest struct {
	Zoom      *int   `json:"zoom" form:"zoom"`
	Direction string `json:"direction" form:"direction" binding:"required"`
}

// MapResponse is the map card state
type MapResponse struct {
	View       mapview.View      `json:"view"`
	Bounds     spatial.Bounds    `json:"bounds"`
	Tiles      mapview.TileLayer `json:"tiles"`
	CanZoomIn  bool              `json:"can_zoom_in"`
	CanZoomOut bool              `json:"can_zoom_out"`
}

// NewMapResponse builds the response for a view
func NewMapResponse(v mapview.View, tiles mapview.TileLayer) MapResponse {
	return MapResponse{
		View:       v,
		Bounds:     v.Bounds(),
		Tiles:      tiles,
		CanZoomIn:  v.CanZoomIn(),
		CanZoomOut: v.CanZoomOut(),
	}
}

// ActivityResponse is a freshly rolled contribution grid
type ActivityResponse struct {
	Grid    activity.Grid  `json:"grid"`
	Active  int            `json:"active"`
	Stats   activity.Stats `json:"stats"`
	Summary string         `json:"summary"`
}
