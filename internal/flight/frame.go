package flight

import (
	"math"
	"time"

	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/spatial"
)

// Frame is the marker state at one instant of the sweep
type Frame struct {
	Position      spatial.LatLng `json:"position"`
	Progress      float64        `json:"progress"`
	Bearing       float64        `json:"bearing"`
	Rotation      float64        `json:"rotation"`
	Visibility    float64        `json:"visibility"`
	ShadowScale   float64        `json:"shadow_scale"`
	ShadowOpacity float64        `json:"shadow_opacity"`
	ElapsedMs     int64          `json:"elapsed_ms"`
}

// FrameAt computes the frame for a path after elapsed time of a sweep of the given duration
func FrameAt(p Path, elapsed, duration time.Duration) Frame {
	progress := Progress(elapsed, duration)
	pos := p.PositionAt(progress)
	visible := Visibility(pos, p.Bounds)

	// Shadow swells toward the middle of the sweep for a sense of altitude
	lift := math.Sin(progress * math.Pi)

	return Frame{
		Position:      pos,
		Progress:      progress,
		Bearing:       p.Bearing(),
		Rotation:      p.Rotation(),
		Visibility:    visible,
		ShadowScale:   0.9 + 0.12*lift,
		ShadowOpacity: (0.45 + 0.12*lift) * visible,
		ElapsedMs:     elapsed.Milliseconds(),
	}
}
