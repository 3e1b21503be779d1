package model

import (
	"context"
	"encoding/json"
	"time"
)

// Capabilities are the independent feature flags the gateway reports per model.
type Capabilities struct {
	SupportsFunctionCalling  bool `json:"supports_function_calling"`
	SupportsVision           bool `json:"supports_vision"`
	SupportsStreaming        bool `json:"supports_streaming"`
	SupportsStructuredOutput bool `json:"supports_structured_output"`
}

// Pricing holds per-million-token costs. A nil or zero cost means the price
// does not apply to the model, not that it is free.
type Pricing struct {
	InputTokensCostPerMillion  *float64 `json:"input_tokens_cost_per_million"`
	OutputTokensCostPerMillion *float64 `json:"output_tokens_cost_per_million"`
	Currency                   string   `json:"currency,omitempty"`
}

// Model is one entry of the upstream listing. ID is the only value callers may
// send back to the API; DisplayName is a label and is not unique.
type Model struct {
	ID              string       `json:"id"`
	Object          string       `json:"object,omitempty"`
	Type            string       `json:"type,omitempty"`
	Created         int64        `json:"created,omitempty"`
	CreatedAt       string       `json:"created_at,omitempty"`
	OwnedBy         string       `json:"owned_by"`
	DisplayName     string       `json:"display_name"`
	Capabilities    Capabilities `json:"capabilities"`
	Pricing         *Pricing     `json:"pricing,omitempty"`
	ContextLength   int64        `json:"context_length"`
	MaxOutputTokens int64        `json:"max_output_tokens"`

	// Raw keeps the upstream record so the proxy relays fields this type does
	// not know about.
	Raw json.RawMessage `json:"-"`
}

func (m *Model) UnmarshalJSON(data []byte) error {
	type alias Model
	aux := alias{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*m = Model(aux)
	m.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (m Model) MarshalJSON() ([]byte, error) {
	if len(m.Raw) > 0 {
		return m.Raw, nil
	}
	type alias Model
	return json.Marshal(alias(m))
}

// InputPrice returns the input cost, or nil when no pricing is published.
func (m Model) InputPrice() *float64 {
	if m.Pricing == nil {
		return nil
	}
	return m.Pricing.InputTokensCostPerMillion
}

// OutputPrice returns the output cost, or nil when no pricing is published.
func (m Model) OutputPrice() *float64 {
	if m.Pricing == nil {
		return nil
	}
	return m.Pricing.OutputTokensCostPerMillion
}

// Listing is the result of one successful fetch cycle.
type Listing struct {
	Data        []Model
	Total       int
	LastUpdated time.Time
}

// NewListing stamps a freshly fetched model set.
func NewListing(models []Model, now time.Time) *Listing {
	if models == nil {
		models = []Model{}
	}
	return &Listing{
		Data:        models,
		Total:       len(models),
		LastUpdated: now,
	}
}

// Gateway lists the models offered by the upstream aggregation API.
type Gateway interface {
	ListModels(ctx context.Context) (*Listing, error)
}
