// Package activity generates the simulated contribution grid shown on the GitHub card.
package activity

import (
	"math/rand/v2"
	"time"
)

const (
	// DefaultWeeks is the number of week columns in the grid
	DefaultWeeks = 12
	// DaysPerWeek is the number of rows in the grid
	DaysPerWeek = 7
	// MaxLevel is the highest intensity a generated cell can have
	MaxLevel = 3

	// desktopCells and mobileCells are how many cells each layout shows
	desktopCells = 125
	mobileCells  = 84

	// idleChance is the probability a day is forced to level 0
	idleChance = 0.3
)

// Cell is one day in the grid
type Cell struct {
	Week  int `json:"week"`
	Day   int `json:"day"`
	Level int `json:"level"`
}

// Class returns the CSS class for the cell's intensity
func (c Cell) Class() string {
	return LevelClass(c.Level)
}

// Grid is a generated set of cells in week-major order
type Grid struct {
	Weeks int    `json:"weeks"`
	Cells []Cell `json:"cells"`
}

// Generator produces grids from a random source
type Generator struct {
	rng   *rand.Rand
	weeks int
}

// NewGenerator creates a generator; src may be nil for a time-seeded source
func NewGenerator(src rand.Source, weeks int) *Generator {
	if src == nil {
		src = NewSource()
	}
	if weeks <= 0 {
		weeks = DefaultWeeks
	}
	return &Generator{rng: rand.New(src), weeks: weeks}
}

// NewSource returns a fresh time-seeded source, so each render rolls a new grid
func NewSource() rand.Source {
	seed := uint64(time.Now().UnixNano())
	return rand.NewPCG(seed, seed>>17|1)
}

// Generate rolls a new grid
func (g *Generator) Generate() Grid {
	cells := make([]Cell, 0, g.weeks*DaysPerWeek)
	for week := 0; week < g.weeks; week++ {
		for day := 0; day < DaysPerWeek; day++ {
			cells = append(cells, Cell{Week: week, Day: day, Level: g.level()})
		}
	}
	return Grid{Weeks: g.weeks, Cells: cells}
}

// level picks an intensity: idle 30% of the time, otherwise uniform over 0..MaxLevel
func (g *Generator) level() int {
	if g.rng.Float64() > idleChance {
		return g.rng.IntN(MaxLevel + 1)
	}
	return 0
}

// Desktop returns the cells shown in the wide layout
func (g Grid) Desktop() []Cell {
	return head(g.Cells, desktopCells)
}

// Mobile returns the cells shown in the compact 12x7 layout
func (g Grid) Mobile() []Cell {
	return head(g.Cells, mobileCells)
}

// Active counts cells with any activity
func (g Grid) Active() int {
	n := 0
	for _, c := range g.Cells {
		if c.Level > 0 {
			n++
		}
	}
	return n
}

// LevelClass maps an intensity level to its swatch class
func LevelClass(level int) string {
	switch level {
	case 0:
		return "bg-gray-200"
	case 1:
		return "bg-emerald-200"
	case 2:
		return "bg-emerald-400"
	case 3:
		return "bg-emerald-500"
	default:
		return "bg-emerald-600"
	}
}

func head(cells []Cell, n int) []Cell {
	if len(cells) < n {
		return cells
	}
	return cells[:n]
}
