package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Megallm/megallm-docs/internal/infrastructure/gateway"
	"github.com/Megallm/megallm-docs/internal/interfaces/httpserver/handlers/modelhandler"
	"github.com/Megallm/megallm-docs/internal/utils/httpclients"
	"github.com/Megallm/megallm-docs/internal/utils/httpclients/modelclient"
)

type proxyBody struct {
	Success     bool              `json:"success"`
	Error       string            `json:"error"`
	Data        []json.RawMessage `json:"data"`
	Total       int               `json:"total"`
	LastUpdated string            `json:"lastUpdated"`
}

func setupRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	client := modelclient.NewModelClient(httpclients.NewClient("test", 0), server.URL, "sk-test")
	route := NewModelsRoute(modelhandler.NewModelHandler(gateway.NewModelGateway(client, 5*time.Second)))

	router := gin.New()
	route.RegisterRouter(router)
	return router
}

func doGet(t *testing.T, router *gin.Engine) (*httptest.ResponseRecorder, proxyBody) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/models", nil))

	var body proxyBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return w, body
}

func TestListModelsSuccess(t *testing.T) {
	router := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"gpt-4o","owned_by":"openai","extra_field":"kept"},{"id":"claude-sonnet-4","owned_by":"anthropic"}]}`))
	})

	w, body := doGet(t, router)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !body.Success {
		t.Fatal("expected success=true")
	}
	if body.Total != len(body.Data) || body.Total != 2 {
		t.Fatalf("expected total to match data length 2, got total=%d len=%d", body.Total, len(body.Data))
	}
	if _, err := time.Parse(time.RFC3339, body.LastUpdated); err != nil {
		t.Fatalf("lastUpdated is not ISO-8601: %q", body.LastUpdated)
	}

	var first map[string]any
	if err := json.Unmarshal(body.Data[0], &first); err != nil {
		t.Fatalf("invalid model json: %v", err)
	}
	if first["extra_field"] != "kept" {
		t.Fatalf("expected upstream fields to be relayed, got %v", first)
	}
}

func TestListModelsMissingData(t *testing.T) {
	router := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	w, body := doGet(t, router)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body.Total != 0 || body.Data == nil || len(body.Data) != 0 {
		t.Fatalf("expected empty data, got %+v", body)
	}
}

func TestListModelsUpstreamFailure(t *testing.T) {
	router := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	w, body := doGet(t, router)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body.Success {
		t.Fatal("expected success=false")
	}
	if body.Error != "Failed to fetch models: Service Unavailable" {
		t.Fatalf("unexpected error message %q", body.Error)
	}
	if body.Data == nil || len(body.Data) != 0 || body.Total != 0 {
		t.Fatalf("expected empty list on failure, got %+v", body)
	}
}

func TestListModelsMalformedUpstream(t *testing.T) {
	router := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	w, body := doGet(t, router)
	if w.Code != http.StatusInternalServerError || body.Success {
		t.Fatalf("expected failure, got %d %+v", w.Code, body)
	}
}
