// Package page composes the portfolio into the bento grid view model rendered by
// the index template.
package page

import (
	"math/rand/v2"

	"golang.org/x/text/language"

	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/activity"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/flight"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/mapview"
	"github.com/atadurdyyewserdar/portfolio-backend-go/internal/profile"
)

// Section delays, in seconds
const (
	WelcomeDelay  = 0.1
	MapDelay      = 0.2
	GitHubDelay   = 0.3
	ProjectsDelay = 0.6
)

// Options are the inputs to one render
type Options struct {
	Content  profile.Content
	View     mapview.View
	Tiles    mapview.TileLayer
	Weeks    int
	Duration float64 // flight sweep, seconds
	Width    int     // client viewport width hint, 0 when unknown
	Lang     language.Tag
	Source   rand.Source // nil for a fresh time-seeded source
}

// MapCard is the map section
type MapCard struct {
	View     mapview.View
	Tiles    mapview.TileLayer
	Path     flight.Path
	Preview  string // tile under the center, preloaded by the page head
	Dragging bool
	Location string
	Duration float64
}

// Page is the full bento view model
type Page struct {
	Profile  profile.Profile
	Welcome  BlurFade
	Map      MapCard
	MapFade  BlurFade
	GitHub   profile.LinkCard
	Activity activity.Grid
	Summary  string
	GitFade  BlurFade
	Links    []profile.LinkCard
	Projects []profile.Project
	ProjFade BlurFade
	Sparkles []Sparkle
}

// Build composes a page. The activity grid and sparkles are rolled fresh from opts.Source.
func Build(opts Options) (*Page, error) {
	src := opts.Source
	if src == nil {
		src = activity.NewSource()
	}
	rng := rand.New(src)

	path, err := flight.NewPath(opts.View.Bounds())
	if err != nil {
		return nil, err
	}

	grid := activity.NewGenerator(rng, opts.Weeks).Generate()

	lang := opts.Lang
	if lang == language.Und {
		lang = language.English
	}

	// Unknown width renders the desktop layout; the client re-checks on load.
	dragging := opts.Width <= 0 || mapview.DraggingEnabled(opts.Width)
	tx, ty := opts.View.TileAt()

	return &Page{
		Profile: opts.Content.Profile,
		Welcome: NewBlurFade(WelcomeDelay),
		Map: MapCard{
			View:     opts.View,
			Tiles:    opts.Tiles,
			Path:     path,
			Preview:  opts.Tiles.URL(opts.View.Zoom, tx, ty, false),
			Dragging: dragging,
			Location: opts.Content.Profile.Location,
			Duration: opts.Duration,
		},
		MapFade:  NewBlurFade(MapDelay),
		GitHub:   opts.Content.GitHub,
		Activity: grid,
		Summary:  grid.Summary(lang),
		GitFade:  NewBlurFade(GitHubDelay),
		Links:    opts.Content.Links,
		Projects: opts.Content.Projects,
		ProjFade: NewBlurFade(ProjectsDelay),
		Sparkles: NewSparkles(rng, DefaultSparkles),
	}, nil
}
