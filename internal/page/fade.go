package page

import (
	"fmt"
	"html/template"
)

// BlurFade describes the enter transition applied when a section scrolls into view
type BlurFade struct {
	Delay      float64 `json:"delay"`    // seconds, before the base offset
	Duration   float64 `json:"duration"` // seconds
	YOffset    int     `json:"y_offset"` // px
	Blur       string  `json:"blur"`
	ViewMargin string  `json:"view_margin"`
	Once       bool    `json:"once"`
	Ease       string  `json:"ease"`
}

// baseDelay is added to every section delay
const baseDelay = 0.04

// NewBlurFade returns the default transition with the given section delay
func NewBlurFade(delay float64) BlurFade {
	return BlurFade{
		Delay:      delay,
		Duration:   0.4,
		YOffset:    6,
		Blur:       "6px",
		ViewMargin: "-50px",
		Once:       true,
		Ease:       "ease-out",
	}
}

// TotalDelay is the delay actually applied to the transition
func (f BlurFade) TotalDelay() float64 {
	return baseDelay + f.Delay
}

// Attrs renders the data attributes the client script reads to run the transition
func (f BlurFade) Attrs() template.HTMLAttr {
	return template.HTMLAttr(fmt.Sprintf(
		`data-fade data-fade-delay="%.2f" data-fade-duration="%.2f" data-fade-y="%d" data-fade-blur="%s" data-fade-margin="%s" data-fade-ease="%s"`,
		f.TotalDelay(), f.Duration, f.YOffset,
		template.HTMLEscapeString(f.Blur),
		template.HTMLEscapeString(f.ViewMargin),
		template.HTMLEscapeString(f.Ease),
	))
}

// HiddenStyle is the inline style for the hidden state, so the page does not flash before the script runs
func (f BlurFade) HiddenStyle() template.CSS {
	return template.CSS(fmt.Sprintf("opacity:0;transform:translateY(%dpx);filter:blur(%s)", f.YOffset, f.Blur))
}
