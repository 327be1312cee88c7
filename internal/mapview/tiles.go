package mapview

import (
	"strconv"
	"strings"
)

// DefaultTileTemplate is the CARTO Voyager raster basemap
const DefaultTileTemplate = "https://{s}.basemaps.cartocdn.com/rastertiles/voyager/{z}/{x}/{y}{r}.png"

// TileLayer describes a raster tile source in the {s}/{z}/{x}/{y}/{r} template form
type TileLayer struct {
	Template   string   `json:"template"`
	Subdomains []string `json:"subdomains"`
}

// DefaultTileLayer returns the Voyager layer with its four subdomains
func DefaultTileLayer() TileLayer {
	return TileLayer{
		Template:   DefaultTileTemplate,
		Subdomains: []string{"a", "b", "c", "d"},
	}
}

// URL expands the template for one tile.
// The subdomain is picked from (x + y) so a tile always resolves to the same host.
func (l TileLayer) URL(z, x, y int, retina bool) string {
	sub := ""
	if n := len(l.Subdomains); n > 0 {
		idx := (x + y) % n
		if idx < 0 {
			idx += n
		}
		sub = l.Subdomains[idx]
	}

	r := ""
	if retina {
		r = "@2x"
	}

	return strings.NewReplacer(
		"{s}", sub,
		"{z}", strconv.Itoa(z),
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
		"{r}", r,
	).Replace(l.Template)
}

// TileAt returns the tile coordinates containing the view center at the view's zoom
func (v View) TileAt() (x, y int) {
	world := float64(TileSize) * float64(int(1)<<uint(v.Zoom))
	px, py := project(v.Center, world)
	return int(px) / TileSize, int(py) / TileSize
}
