package catalog

import (
	"github.com/Megallm/megallm-docs/internal/domain/model"
)

// Column identifies one cell kind of a catalog table.
type Column string

const (
	ColumnModelID     Column = "model_id"
	ColumnProvider    Column = "provider"
	ColumnContext     Column = "context"
	ColumnMaxOutput   Column = "max_output"
	ColumnInputPrice  Column = "input_price"
	ColumnOutputPrice Column = "output_price"
	ColumnFeatures    Column = "features"
)

var columnHeaders = map[Column]string{
	ColumnModelID:     "Model ID",
	ColumnProvider:    "Provider",
	ColumnContext:     "Context Window",
	ColumnMaxOutput:   "Max Output",
	ColumnInputPrice:  "Input $/M tokens",
	ColumnOutputPrice: "Output $/M tokens",
	ColumnFeatures:    "Features",
}

// Header is the table heading for c.
func (c Column) Header() string {
	return columnHeaders[c]
}

var (
	providerColumns = []Column{ColumnModelID, ColumnProvider, ColumnContext, ColumnMaxOutput, ColumnInputPrice, ColumnOutputPrice, ColumnFeatures}
	vendorColumns   = []Column{ColumnModelID, ColumnContext, ColumnMaxOutput, ColumnInputPrice, ColumnOutputPrice, ColumnFeatures}
	embedColumns    = []Column{ColumnModelID, ColumnProvider, ColumnContext, ColumnInputPrice, ColumnFeatures}
)

// Tab describes one catalog tab: which models it shows and how.
type Tab struct {
	ID      string
	Label   string
	Title   string
	Columns []Column
	Select  func(models []model.Model) []model.Model
}

func vendorTab(id, label, title string, tag model.ProviderTag) Tab {
	return Tab{
		ID:      id,
		Label:   label,
		Title:   title,
		Columns: vendorColumns,
		Select: func(models []model.Model) []model.Model {
			return model.FilterByProvider(models, tag)
		},
	}
}

// Tabs is the fixed tab order of the catalog page.
var Tabs = []Tab{
	{
		ID:      "all",
		Label:   "All Models",
		Title:   "Complete Model Listing",
		Columns: providerColumns,
		Select:  model.ChatModels,
	},
	{
		ID:      "openai",
		Label:   "OpenAI",
		Title:   "OpenAI Models",
		Columns: vendorColumns,
		Select: func(models []model.Model) []model.Model {
			return model.ChatModels(model.FilterByProvider(models, model.ProviderOpenAI))
		},
	},
	vendorTab("anthropic", "Anthropic", "Anthropic Claude Models", model.ProviderAnthropic),
	vendorTab("google", "Google", "Google Gemini Models", model.ProviderGoogle),
	vendorTab("xai", "xAI", "xAI Models", model.ProviderXAI),
	vendorTab("meta", "Meta", "Meta Llama Models", model.ProviderMeta),
	{
		ID:      "other",
		Label:   "Other",
		Title:   "Other Models (Mistral, Alibaba, etc.)",
		Columns: providerColumns,
		Select:  model.OtherModels,
	},
	{
		ID:      "embedding",
		Label:   "Embedding",
		Title:   "Embedding Models",
		Columns: embedColumns,
		Select:  model.EmbeddingModels,
	},
}

// Row is one formatted model line.
type Row struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Provider    string `json:"provider"`
	Context     string `json:"context"`
	MaxOutput   string `json:"max_output"`
	InputPrice  Price  `json:"input_price"`
	OutputPrice Price  `json:"output_price"`
	Features    string `json:"features"`
}

// NewRow formats m for display.
func NewRow(m model.Model) Row {
	return Row{
		ID:          m.ID,
		DisplayName: m.DisplayName,
		Provider:    m.OwnedBy,
		Context:     FormatTokens(m.ContextLength),
		MaxOutput:   FormatTokens(m.MaxOutputTokens),
		InputPrice:  DiscountPrice(m.InputPrice()),
		OutputPrice: DiscountPrice(m.OutputPrice()),
		Features:    FeatureIcons(m.Capabilities),
	}
}

// TabView is a tab rendered against one model set.
type TabView struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Title   string   `json:"title"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Shows reports whether the tab has column c.
func (v TabView) Shows(c Column) bool {
	for _, col := range v.Columns {
		if col == c {
			return true
		}
	}
	return false
}

// BuildTabs derives every tab from models. The result depends only on models.
func BuildTabs(models []model.Model) []TabView {
	views := make([]TabView, 0, len(Tabs))
	for _, tab := range Tabs {
		selected := tab.Select(models)
		rows := make([]Row, 0, len(selected))
		for _, m := range selected {
			rows = append(rows, NewRow(m))
		}
		views = append(views, TabView{
			ID:      tab.ID,
			Label:   tab.Label,
			Title:   tab.Title,
			Columns: tab.Columns,
			Rows:    rows,
		})
	}
	return views
}
