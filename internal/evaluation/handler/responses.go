package handler

import (
	"time"

	"cardeval/internal/evaluation/models"
)

// EvaluateResponse is the HTTP response for POST /applications/evaluate.
type EvaluateResponse struct {
	EvaluationID string    `json:"evaluation_id"`
	Decision     string    `json:"decision"`
	Reason       string    `json:"reason"`
	EvaluatedAt  time.Time `json:"evaluated_at"`
}

// LookupCountResponse is the HTTP response for GET /applications/lookups.
type LookupCountResponse struct {
	LookupCount int64 `json:"lookup_count"`
}

// FromResult converts a domain Result to an HTTP response.
func FromResult(result *models.Result) *EvaluateResponse {
	return &EvaluateResponse{
		EvaluationID: result.ID.String(),
		Decision:     result.Decision.String(),
		Reason:       string(result.Reason),
		EvaluatedAt:  result.EvaluatedAt,
	}
}
