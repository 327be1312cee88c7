package activity

// Stats summarizes a grid's intensity distribution
type Stats struct {
	Counts        [MaxLevel + 1]int `json:"counts"`
	MeanLevel     float64           `json:"mean_level"`
	LongestStreak int               `json:"longest_streak"`
	CurrentStreak int               `json:"current_streak"`
}

// Stats computes level counts, the mean level and active-day streaks.
// Cells are walked in week-major order, which is chronological.
func (g Grid) Stats() Stats {
	var s Stats
	if len(g.Cells) == 0 {
		return s
	}

	var sum, run int
	for _, c := range g.Cells {
		level := c.Level
		if level < 0 {
			level = 0
		}
		if level > MaxLevel {
			level = MaxLevel
		}
		s.Counts[level]++
		sum += level

		if level > 0 {
			run++
			if run > s.LongestStreak {
				s.LongestStreak = run
			}
		} else {
			run = 0
		}
	}

	s.MeanLevel = float64(sum) / float64(len(g.Cells))
	s.CurrentStreak = run
	return s
}
