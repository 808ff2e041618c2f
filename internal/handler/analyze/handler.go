package analyze

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"

	"github.com/mholloway/chat-pulse/backend/internal/config"
	"github.com/mholloway/chat-pulse/backend/internal/model/report"
	model "github.com/mholloway/chat-pulse/backend/internal/model/transcript"
	"github.com/mholloway/chat-pulse/backend/internal/service/insights"
	"github.com/mholloway/chat-pulse/backend/internal/service/transcript"
	"github.com/mholloway/chat-pulse/backend/pkg/utils"
)

// Handler accepts transcript uploads and returns the analytics report.
type Handler struct {
	svc *insights.Service
	cfg config.AnalyzeConfig
}

// New creates the analyze handler.
func New(svc *insights.Service, cfg config.AnalyzeConfig) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

// RegisterRoutes mounts the analyze endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/analyze", h.handleAnalyze)
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "file form field is required")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".txt") {
		utils.RespondError(w, http.StatusBadRequest, "Only .txt files are supported")
		return
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "failed to read upload")
		return
	}
	text := decode(raw)

	table, err := runStage(r.Context(), h.cfg.ParseTimeout, func() (*model.Table, error) {
		return transcript.Parse(text), nil
	})
	if err != nil {
		h.respondStageFailure(w, reqID, "parse", err)
		return
	}

	if table.Empty() {
		utils.RespondError(w, http.StatusBadRequest,
			"Could not parse any messages from the file. Ensure it's a valid WhatsApp export.")
		return
	}
	log.Printf("[analyze] request %s parsed %d records from %s", reqID, len(table.Records), header.Filename)

	result, err := runStage(r.Context(), h.cfg.AnalyzeTimeout, func() (*report.Report, error) {
		return h.svc.Analyze(r.Context(), table)
	})
	if err != nil {
		h.respondStageFailure(w, reqID, "analyze", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondStageFailure(w http.ResponseWriter, reqID, stage string, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		log.Printf("[analyze] request %s: %s stage timed out", reqID, stage)
		utils.RespondError(w, http.StatusServiceUnavailable, stage+" stage timed out, please retry")
		return
	}
	log.Printf("[analyze] request %s: %s stage failed: %v", reqID, stage, err)
	utils.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Analysis failed: %v", err))
}

// decode prefers UTF-8 and falls back to ISO-8859-1 for legacy exports.
func decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// runStage runs fn under a wall-clock deadline. The pipeline itself defines
// no cancellation points; a deadline expiry here abandons the stage and
// reports a retryable condition to the caller.
func runStage[T any](ctx context.Context, timeout time.Duration, fn func() (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		value, err := fn()
		done <- outcome{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case out := <-done:
		return out.value, out.err
	}
}
