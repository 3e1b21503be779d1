package modelclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Megallm/megallm-docs/internal/domain/model"
	"github.com/Megallm/megallm-docs/internal/utils/platformerrors"

	"resty.dev/v3"
)

// ModelsResponse is the upstream listing envelope.
type ModelsResponse struct {
	Object string        `json:"object,omitempty"`
	Data   []model.Model `json:"data"`
}

// ModelClient talks to the models endpoint of the aggregation API.
type ModelClient struct {
	client   *resty.Client
	endpoint string
	apiKey   string
}

// NewModelClient builds a client for endpoint, authenticating with apiKey as a
// bearer token.
func NewModelClient(client *resty.Client, endpoint, apiKey string) *ModelClient {
	return &ModelClient{
		client:   client,
		endpoint: strings.TrimSpace(endpoint),
		apiKey:   strings.TrimSpace(apiKey),
	}
}

// ListModels fetches the full model list. Transport failures, non-2xx statuses
// and undecodable bodies all come back as ErrorTypeExternal (or
// ErrorTypeTimeout) errors whose message reads "Failed to fetch models: ...".
func (c *ModelClient) ListModels(ctx context.Context) (*ModelsResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Accept", "application/json").
		Get(c.endpoint)
	if err != nil {
		errorType := platformerrors.ErrorTypeExternal
		if ctx.Err() != nil {
			errorType = platformerrors.ErrorTypeTimeout
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, errorType,
			fmt.Sprintf("Failed to fetch models: %v", err), err, "5f0d2c7e-8a4b-4c1e-9f3a-2b6d8e1c4a70")
	}

	status := resp.StatusCode()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("Failed to fetch models: %s", statusText(status)), nil, "c3a9e4b1-6d2f-4f8a-b7c0-91e5d3a2f6b8",
			map[string]any{"status": status})
	}

	var respBody ModelsResponse
	if err := json.Unmarshal(resp.Bytes(), &respBody); err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("Failed to fetch models: invalid response body: %v", err), err, "a8d1f5c2-3e7b-4a9d-8c6f-0b2e4d7a9c13")
	}
	if respBody.Data == nil {
		respBody.Data = []model.Model{}
	}
	return &respBody, nil
}

// statusText mirrors the reason phrase of the response, e.g. "Unauthorized".
func statusText(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", status)
}
