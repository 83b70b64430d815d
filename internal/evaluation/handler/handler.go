package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cardeval/internal/evaluation/models"
	"cardeval/internal/platform/httputil"
	"cardeval/internal/platform/requestcontext"
)

const maxBodyBytes = 1 << 16

// Service defines the interface for evaluation operations.
type Service interface {
	EvaluateDetailed(ctx context.Context, application models.Application) (*models.Result, error)
	LookupCount() int64
}

// Handler wires evaluation endpoints to the evaluator.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an evaluation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts evaluation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/applications/evaluate", h.HandleEvaluate)
	r.Get("/applications/lookups", h.HandleLookupCount)
}

// HandleEvaluate handles POST /applications/evaluate requests.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := requestcontext.Now(ctx)

	var req EvaluateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid evaluate request body",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.service.EvaluateDetailed(ctx, req.Application())
	if err != nil {
		h.logger.ErrorContext(ctx, "application evaluation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, http.StatusBadGateway, "fraud_lookup_unavailable", err.Error())
		return
	}

	h.logger.InfoContext(ctx, "application evaluated",
		"request_id", requestID,
		"evaluation_id", result.ID.String(),
		"decision", result.Decision,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleLookupCount handles GET /applications/lookups requests.
func (h *Handler) HandleLookupCount(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, LookupCountResponse{LookupCount: h.service.LookupCount()})
}
