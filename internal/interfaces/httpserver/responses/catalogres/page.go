package catalogres

import (
	"time"

	"github.com/Megallm/megallm-docs/internal/domain/catalog"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/site"
)

const loadingReloadSeconds = 2

// CatalogPage is the view model of the HTML catalog.
type CatalogPage struct {
	Site            site.Options
	Status          string
	Error           string
	ModelsCount     int64
	LastUpdated     time.Time
	AutoRefresh     bool
	RefreshInterval time.Duration
	Tabs            []catalog.TabView
	Active          catalog.TabView
	Legend          []catalog.Feature
	// ReloadAfter is the meta refresh delay in seconds; 0 disables it.
	ReloadAfter int
}

func (p CatalogPage) Loading() bool { return p.Status == string(catalog.StatusLoading) }

func (p CatalogPage) Failed() bool { return p.Status == string(catalog.StatusError) }

// NewCatalogPage renders snap with tabID selected. Unknown ids select the
// first tab.
func NewCatalogPage(opts site.Options, snap catalog.Snapshot, tabID string) CatalogPage {
	page := CatalogPage{
		Site:            opts,
		Status:          string(snap.Status),
		Error:           snap.Error,
		ModelsCount:     int64(len(snap.Models)),
		LastUpdated:     snap.LastUpdated,
		AutoRefresh:     snap.AutoRefresh,
		RefreshInterval: snap.RefreshInterval,
		Legend:          catalog.Features,
	}

	switch {
	case snap.Status == catalog.StatusLoading:
		page.ReloadAfter = loadingReloadSeconds
	case snap.AutoRefresh:
		page.ReloadAfter = int(snap.RefreshInterval / time.Second)
	}

	if snap.Status != catalog.StatusLoaded {
		return page
	}
	page.Tabs = snap.Tabs()
	page.Active = page.Tabs[0]
	for _, tab := range page.Tabs {
		if tab.ID == tabID {
			page.Active = tab
			break
		}
	}
	return page
}
