// Package profile holds the hardcoded portfolio content: the hero panel, the
// social link cards and the project showcase.
package profile

import (
	"fmt"
	"html/template"
	"net/url"

	"github.com/microcosm-cc/bluemonday"
)

// Profile is the hero panel
type Profile struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
}

// LinkCard is a social/profile link tile
type LinkCard struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Lead     string `json:"lead"`
	Handle   string `json:"handle"`
	URL      string `json:"url"`
	Host     string `json:"host"`
	Action   string `json:"action"`
	Color    string `json:"color"`
	IconPath string `json:"-"` // SVG path data
}

// Project is a showcase card
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Action      string `json:"action"`
	Color       string `json:"color"`
}

// Content is everything the page shows that is not generated
type Content struct {
	Profile  Profile    `json:"profile"`
	GitHub   LinkCard   `json:"github"`
	Links    []LinkCard `json:"links"`
	Projects []Project  `json:"projects"`
}

var bioPolicy = bluemonday.UGCPolicy()

// BioHTML returns the bio sanitized for direct rendering
func (p Profile) BioHTML() template.HTML {
	return template.HTML(bioPolicy.Sanitize(p.Bio))
}

// ExternalLinks returns every outbound URL on the page
func (c Content) ExternalLinks() []string {
	links := []string{c.GitHub.URL}
	for _, l := range c.Links {
		links = append(links, l.URL)
	}
	for _, p := range c.Projects {
		links = append(links, p.URL)
	}
	return links
}

// Validate checks that every outbound link is an absolute http(s) URL
func (c Content) Validate() error {
	if c.Profile.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	for _, raw := range c.ExternalLinks() {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid link %q: %w", raw, err)
		}
		if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			return fmt.Errorf("link %q must be an absolute http(s) URL", raw)
		}
	}
	return nil
}
