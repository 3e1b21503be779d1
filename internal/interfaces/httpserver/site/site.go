package site

import (
	"strings"

	"github.com/Megallm/megallm-docs/internal/config"
)

// Link is one entry of the site navigation.
type Link struct {
	Text     string `json:"text"`
	URL      string `json:"url"`
	External bool   `json:"external"`
}

// Nav is the header of every documentation page.
type Nav struct {
	Title string `json:"title"`
	Logo  string `json:"logo"`
}

// Options is the shell shared by the docs collaborator and the catalog page.
type Options struct {
	Nav   Nav    `json:"nav"`
	Links []Link `json:"links"`
}

// BaseOptions builds the shell from configuration.
func BaseOptions(cfg *config.Config) Options {
	return Options{
		Nav: Nav{
			Title: cfg.SiteTitle,
			Logo:  cfg.SiteLogo,
		},
		Links: []Link{
			{Text: "Documentation", URL: cfg.DocsURL, External: isExternal(cfg.DocsURL)},
			{Text: "Dashboard", URL: cfg.DashboardURL, External: true},
		},
	}
}

func isExternal(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
