package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mholloway/chat-pulse/backend/internal/config"
	"github.com/mholloway/chat-pulse/backend/internal/handler/analyze"
	middlewarePkg "github.com/mholloway/chat-pulse/backend/internal/middleware"
	"github.com/mholloway/chat-pulse/backend/internal/service/insights"
	"github.com/mholloway/chat-pulse/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(cfg *config.Config, svc *insights.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(cfg.CORS.AllowedOrigins))

	// Liveness probe for deploy checks and the frontend's initial ping.
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{
			"message": "Chat Pulse analyzer API is running",
		})
	})

	analyzeHandler := analyze.New(svc, cfg.Analyze)
	analyzeHandler.RegisterRoutes(r)

	return r
}
