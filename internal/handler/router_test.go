package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mholloway/chat-pulse/backend/internal/config"
	"github.com/mholloway/chat-pulse/backend/internal/service/insights"
)

type stubScorer struct{}

func (stubScorer) Score(string) float64 { return 0 }

type stubEmojis struct{}

func (stubEmojis) IsEmoji(rune) bool { return false }

func newTestRouter() http.Handler {
	cfg := &config.Config{
		Server: config.ServerConfig{Addr: ":0"},
		Analyze: config.AnalyzeConfig{
			MaxUploadBytes: 1 << 20,
			ParseTimeout:   5 * time.Second,
			AnalyzeTimeout: 5 * time.Second,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	return NewRouter(cfg, insights.NewService(stubScorer{}, stubEmojis{}))
}

func TestRootLiveness(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "running") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected allow-origin header: %q", got)
	}
}
