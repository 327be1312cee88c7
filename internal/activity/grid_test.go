package activity

import (
	"math/rand/v2"
	"testing"

	"golang.org/x/text/language"
)

func TestGenerate_Shape(t *testing.T) {
	g := NewGenerator(rand.NewPCG(1, 2), 0).Generate()

	if g.Weeks != DefaultWeeks {
		t.Errorf("Weeks = %d, want %d", g.Weeks, DefaultWeeks)
	}
	if len(g.Cells) != DefaultWeeks*DaysPerWeek {
		t.Fatalf("len(Cells) = %d, want %d", len(g.Cells), DefaultWeeks*DaysPerWeek)
	}

	for i, c := range g.Cells {
		if c.Week != i/DaysPerWeek || c.Day != i%DaysPerWeek {
			t.Errorf("cell %d at (%d, %d), want (%d, %d)", i, c.Week, c.Day, i/DaysPerWeek, i%DaysPerWeek)
		}
	}
}

func TestGenerate_LevelsInRange(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		g := NewGenerator(rand.NewPCG(seed, seed+1), 0).Generate()
		for _, c := range g.Cells {
			if c.Level < 0 || c.Level > MaxLevel {
				t.Fatalf("seed %d: level %d out of range", seed, c.Level)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := NewGenerator(rand.NewPCG(42, 7), 0).Generate()
	b := NewGenerator(rand.NewPCG(42, 7), 0).Generate()

	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("cell %d differs: %+v vs %+v", i, a.Cells[i], b.Cells[i])
		}
	}
}

func TestGenerate_SomeHighlighted(t *testing.T) {
	g := NewGenerator(rand.NewPCG(3, 4), 0).Generate()

	// With 84 cells and a ~52% chance of activity each, an all-idle grid is not a realistic outcome
	if g.Active() == 0 {
		t.Error("expected some active cells")
	}
	if g.Active() == len(g.Cells) {
		t.Error("expected some idle cells")
	}
}

func TestLayouts(t *testing.T) {
	g := NewGenerator(rand.NewPCG(5, 6), 0).Generate()

	if len(g.Desktop()) != 84 {
		t.Errorf("len(Desktop) = %d, want 84", len(g.Desktop()))
	}
	if len(g.Mobile()) != 84 {
		t.Errorf("len(Mobile) = %d, want 84", len(g.Mobile()))
	}

	wide := NewGenerator(rand.NewPCG(5, 6), 20).Generate()
	if len(wide.Desktop()) != 125 {
		t.Errorf("len(Desktop) for 20 weeks = %d, want 125", len(wide.Desktop()))
	}
	if len(wide.Mobile()) != 84 {
		t.Errorf("len(Mobile) for 20 weeks = %d, want 84", len(wide.Mobile()))
	}
}

func TestLevelClass(t *testing.T) {
	tests := []struct {
		level    int
		expected string
	}{
		{0, "bg-gray-200"},
		{1, "bg-emerald-200"},
		{2, "bg-emerald-400"},
		{3, "bg-emerald-500"},
		{4, "bg-emerald-600"},
	}

	for _, tt := range tests {
		if got := LevelClass(tt.level); got != tt.expected {
			t.Errorf("LevelClass(%d) = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestSummary(t *testing.T) {
	g := Grid{
		Weeks: 12,
		Cells: []Cell{{Level: 0}, {Level: 2}, {Level: 3}},
	}

	tests := []struct {
		tag  language.Tag
		want string
	}{
		{language.English, "2 active days in the last 12 weeks"},
		{language.Hungarian, "2 aktív nap az elmúlt 12 hétben"},
		{language.German, "2 aktive Tage in den letzten 12 Wochen"},
		{language.MustParse("de-AT"), "2 aktive Tage in den letzten 12 Wochen"},
	}

	for _, tt := range tests {
		if got := g.Summary(tt.tag); got != tt.want {
			t.Errorf("Summary(%s) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestGridStats(t *testing.T) {
	g := Grid{Weeks: 1, Cells: []Cell{
		{Level: 1}, {Level: 2}, {Level: 0}, {Level: 3}, {Level: 3}, {Level: 3}, {Level: 0},
		{Level: 2},
	}}

	s := g.Stats()
	if s.Counts != [MaxLevel + 1]int{2, 1, 2, 3} {
		t.Errorf("Counts = %v", s.Counts)
	}
	if s.MeanLevel != 14.0/8.0 {
		t.Errorf("MeanLevel = %v, want %v", s.MeanLevel, 14.0/8.0)
	}
	if s.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", s.LongestStreak)
	}
	if s.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", s.CurrentStreak)
	}
}

func TestGridStats_Empty(t *testing.T) {
	if s := (Grid{}).Stats(); s != (Stats{}) {
		t.Errorf("empty grid stats = %+v", s)
	}
}
