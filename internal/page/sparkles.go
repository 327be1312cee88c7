package page

import (
	"fmt"
	"html/template"
	"math/rand/v2"
)

// DefaultSparkles is how many sparkles decorate a heading
const DefaultSparkles = 10

// Sparkle is one twinkling star around a heading
type Sparkle struct {
	ID       int     `json:"id"`
	InitialX float64 `json:"initial_x"`
	InitialY float64 `json:"initial_y"`
	AnimateX float64 `json:"animate_x"`
	AnimateY float64 `json:"animate_y"`
	Duration float64 `json:"duration"`
	Delay    float64 `json:"delay"`
	Left     float64 `json:"left"`
	Top      float64 `json:"top"`
}

// Style positions the sparkle and exposes its motion as CSS variables
func (s Sparkle) Style() template.CSS {
	return template.CSS(fmt.Sprintf(
		"left:%.2f%%;top:%.2f%%;--sx0:%.1fpx;--sy0:%.1fpx;--sx1:%.1fpx;--sy1:%.1fpx;animation-duration:%.2fs;animation-delay:%.2fs",
		s.Left, s.Top, s.InitialX, s.InitialY, s.AnimateX, s.AnimateY, s.Duration, s.Delay,
	))
}

// NewSparkles rolls n sparkles from rng
func NewSparkles(rng *rand.Rand, n int) []Sparkle {
	if n <= 0 {
		n = DefaultSparkles
	}

	offset := func() float64 { return rng.Float64()*100 - 50 }

	sparkles := make([]Sparkle, n)
	for i := range sparkles {
		sparkles[i] = Sparkle{
			ID:       i,
			InitialX: offset(),
			InitialY: offset(),
			AnimateX: offset(),
			AnimateY: offset(),
			Duration: rng.Float64()*2 + 1,
			Delay:    rng.Float64() * 2,
			Left:     rng.Float64() * 100,
			Top:      rng.Float64() * 100,
		}
	}
	return sparkles
}
