package catalogres

import (
	"time"

	"github.com/Megallm/megallm-docs/internal/domain/catalog"
)

type CatalogResponse struct {
	Status                 string            `json:"status"`
	Error                  string            `json:"error,omitempty"`
	AutoRefresh            bool              `json:"auto_refresh"`
	RefreshIntervalSeconds int               `json:"refresh_interval_seconds"`
	LastUpdated            *string           `json:"last_updated"`
	ModelsCount            int               `json:"models_count"`
	ChatCount              int               `json:"chat_count"`
	EmbeddingCount         int               `json:"embedding_count"`
	Legend                 []catalog.Feature `json:"legend"`
	Tabs                   []catalog.TabView `json:"tabs"`
}

type AutoRefreshResponse struct {
	AutoRefresh bool `json:"auto_refresh"`
}

type RefreshResponse struct {
	Status string `json:"status"`
}

func NewCatalogResponse(snap catalog.Snapshot) CatalogResponse {
	chat, embedding := snap.Counts()
	resp := CatalogResponse{
		Status:                 string(snap.Status),
		Error:                  snap.Error,
		AutoRefresh:            snap.AutoRefresh,
		RefreshIntervalSeconds: int(snap.RefreshInterval / time.Second),
		ModelsCount:            len(snap.Models),
		ChatCount:              chat,
		EmbeddingCount:         embedding,
		Legend:                 catalog.Features,
		Tabs:                   []catalog.TabView{},
	}
	if !snap.LastUpdated.IsZero() {
		ts := snap.LastUpdated.UTC().Format(time.RFC3339)
		resp.LastUpdated = &ts
	}
	if snap.Status == catalog.StatusLoaded {
		resp.Tabs = snap.Tabs()
	}
	return resp
}
