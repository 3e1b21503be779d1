package modelclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Megallm/megallm-docs/internal/utils/httpclients"
	"github.com/Megallm/megallm-docs/internal/utils/platformerrors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *ModelClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewModelClient(httpclients.NewClient("test", 5*time.Second), server.URL+"/v1/models", "sk-test")
}

func TestListModelsSendsBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[{"id":"gpt-4o","owned_by":"openai","context_length":128000}]}`))
	})

	resp, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("expected bearer token, got %q", gotAuth)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != "gpt-4o" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
	if resp.Data[0].ContextLength != 128000 {
		t.Fatalf("expected context length 128000, got %d", resp.Data[0].ContextLength)
	}
}

func TestListModelsMissingDataIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list"}`))
	})

	resp, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Fatalf("expected empty non-nil data, got %#v", resp.Data)
	}
}

func TestListModelsNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"bad key"}`))
	})

	_, err := client.ListModels(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	platformErr := platformerrors.GetPlatformError(err)
	if platformErr == nil {
		t.Fatalf("expected platform error, got %T", err)
	}
	if platformErr.Message != "Failed to fetch models: Unauthorized" {
		t.Fatalf("unexpected message %q", platformErr.Message)
	}
	if platformErr.Type != platformerrors.ErrorTypeExternal {
		t.Fatalf("expected external error, got %s", platformErr.Type)
	}
	if platformErr.Context["status"] != http.StatusUnauthorized {
		t.Fatalf("expected status context, got %v", platformErr.Context["status"])
	}
}

func TestListModelsMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [`))
	})

	_, err := client.ListModels(context.Background())
	if err == nil {
		t.Fatal("expected decode error")
	}
	platformErr := platformerrors.GetPlatformError(err)
	if platformErr == nil || !strings.HasPrefix(platformErr.Message, "Failed to fetch models:") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestListModelsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewModelClient(httpclients.NewClient("test", time.Second), url, "sk-test")
	_, err := client.ListModels(context.Background())
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal) {
		t.Fatalf("expected external error, got %v", err)
	}
}
