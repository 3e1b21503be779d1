package modelres

import (
	"github.com/Megallm/megallm-docs/internal/domain/model"
	"github.com/Megallm/megallm-docs/internal/utils/platformerrors"
)

const (
	defaultErrorMessage = "Failed to fetch models"

	// ISO-8601 in UTC with millisecond precision, e.g. 2026-01-02T15:04:05.000Z.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// ListResponse is the proxy payload on success.
type ListResponse struct {
	Success     bool          `json:"success"`
	Data        []model.Model `json:"data"`
	Total       int           `json:"total"`
	LastUpdated string        `json:"lastUpdated"`
}

// FailureResponse is the proxy payload on any upstream failure.
type FailureResponse struct {
	Success bool          `json:"success"`
	Error   string        `json:"error"`
	Data    []model.Model `json:"data"`
	Total   int           `json:"total"`
}

func NewListResponse(listing *model.Listing) ListResponse {
	data := listing.Data
	if data == nil {
		data = []model.Model{}
	}
	return ListResponse{
		Success:     true,
		Data:        data,
		Total:       len(data),
		LastUpdated: listing.LastUpdated.UTC().Format(timestampLayout),
	}
}

func NewFailureResponse(err error) FailureResponse {
	message := defaultErrorMessage
	if platformErr := platformerrors.GetPlatformError(err); platformErr != nil && platformErr.Message != "" {
		message = platformErr.Message
	} else if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return FailureResponse{
		Success: false,
		Error:   message,
		Data:    []model.Model{},
		Total:   0,
	}
}
