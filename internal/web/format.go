package web

import "strconv"

// formatFixed prints coordinates with enough precision for the map widget
func formatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
