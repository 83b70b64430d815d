package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardeval/internal/evaluation"
	"cardeval/internal/evaluation/adapters"
	"cardeval/internal/evaluation/models"
	"cardeval/internal/evaluation/ports"
	"cardeval/internal/platform/requestcontext"
	"cardeval/internal/platform/testutil"
)

func newRouter(t *testing.T, opts ...evaluation.Option) (http.Handler, *evaluation.Evaluator) {
	t.Helper()
	validator, err := adapters.NewLocalFlyerValidator("dev-license", "")
	require.NoError(t, err)
	evaluator, err := evaluation.New(validator, opts...)
	require.NoError(t, err)

	r := chi.NewRouter()
	New(evaluator, nil).Register(r)
	return r, evaluator
}

func postEvaluate(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.DoRequest(h, testutil.NewJSONRequest(t, http.MethodPost, "/applications/evaluate", body))
}

func TestHandleEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		decision models.Decision
		reason   models.Reason
	}{
		{"high income as string", `{"gross_annual_income":"100000"}`, models.DecisionAutoAccepted, models.ReasonHighIncome},
		{"high income as number", `{"gross_annual_income":250000.50}`, models.DecisionAutoAccepted, models.ReasonHighIncome},
		{"low income", `{"gross_annual_income":"19999.00","age":42,"frequent_flyer_number":"AB1234566"}`, models.DecisionAutoDeclined, models.ReasonLowIncome},
		{"empty application", `{}`, models.DecisionReferredToHuman, models.ReasonFlyerLookupFailed},
		{"income in exponent form", `{"gross_annual_income":"1e6"}`, models.DecisionAutoAccepted, models.ReasonHighIncome},
		{"null income", `{"gross_annual_income":null,"age":25,"frequent_flyer_number":"x"}`, models.DecisionReferredToHuman, models.ReasonFlyerNumberInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newRouter(t)
			w := postEvaluate(t, h, tt.body)

			require.Equal(t, http.StatusOK, w.Code)
			resp := testutil.UnmarshalResponse[EvaluateResponse](t, w)
			assert.Equal(t, tt.decision.String(), resp.Decision)
			assert.Equal(t, string(tt.reason), resp.Reason)
			assert.NotEmpty(t, resp.EvaluationID)
			assert.False(t, resp.EvaluatedAt.IsZero())
		})
	}
}

func TestHandleEvaluate_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"invalid json", `{`, "bad_request"},
		{"unknown field", `{"salary":1}`, "bad_request"},
		{"negative income", `{"gross_annual_income":"-1"}`, "validation_error"},
		{"income exponent too large", `{"gross_annual_income":"1e30000000","age":25}`, "validation_error"},
		{"income exponent as number", `{"gross_annual_income":1e400,"age":25}`, "validation_error"},
		{"income exponent too small", `{"gross_annual_income":"1e-30000000","age":25}`, "validation_error"},
		{"income too many digits", `{"gross_annual_income":"` + strings.Repeat("9", 25) + `"}`, "validation_error"},
		{"negative age", `{"age":-1}`, "validation_error"},
		{"age too large", `{"age":151}`, "validation_error"},
		{"flyer number too long", `{"frequent_flyer_number":"` + strings.Repeat("A", 33) + `"}`, "validation_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, evaluator := newRouter(t)
			w := postEvaluate(t, h, tt.body)

			testutil.AssertStatusAndError(t, w, http.StatusBadRequest, tt.code)
			assert.Equal(t, int64(0), evaluator.LookupCount())
		})
	}
}

func TestHandleEvaluate_FraudLookupFailure(t *testing.T) {
	failing := ports.FraudCheckFunc(func(context.Context, models.Application) (bool, error) {
		return false, errors.New("connection refused")
	})
	h, _ := newRouter(t, evaluation.WithFraudLookup(failing))

	w := postEvaluate(t, h, `{"age":42}`)

	testutil.AssertStatusAndError(t, w, http.StatusBadGateway, "fraud_lookup_unavailable")
	assert.NotContains(t, testutil.UnmarshalErrorResponse(t, w), "error_description")
}

func TestHandleEvaluate_DurationFromRequestTime(t *testing.T) {
	validator, err := adapters.NewLocalFlyerValidator("dev-license", "")
	require.NoError(t, err)
	evaluator, err := evaluation.New(validator)
	require.NoError(t, err)

	var buf bytes.Buffer
	r := chi.NewRouter()
	New(evaluator, slog.New(slog.NewJSONHandler(&buf, nil))).Register(r)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/applications/evaluate", `{"gross_annual_income":"150000"}`)
	req = req.WithContext(requestcontext.WithTime(req.Context(), time.Now().Add(-3*time.Second)))
	w := testutil.DoRequest(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	var entry struct {
		Msg        string `json:"msg"`
		DurationMS int64  `json:"duration_ms"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "application evaluated", entry.Msg)
	assert.GreaterOrEqual(t, entry.DurationMS, int64(3000))
}

func TestHandleLookupCount(t *testing.T) {
	h, _ := newRouter(t)

	postEvaluate(t, h, `{"age":25,"frequent_flyer_number":"AB123456"}`)
	postEvaluate(t, h, `{"age":25}`)
	postEvaluate(t, h, `{"gross_annual_income":"150000"}`)

	w := testutil.DoRequest(h, httptest.NewRequest(http.MethodGet, "/applications/lookups", nil))

	require.Equal(t, http.StatusOK, w.Code)
	resp := testutil.UnmarshalResponse[LookupCountResponse](t, w)
	assert.Equal(t, int64(2), resp.LookupCount)
}

func TestEvaluateRequest_Application(t *testing.T) {
	var req EvaluateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"age":30,"frequent_flyer_number":"  AB123456 "}`), &req))
	require.NoError(t, req.Validate())

	app := req.Application()
	assert.True(t, app.GrossAnnualIncome.IsZero())
	assert.Equal(t, 30, app.Age)
	assert.Equal(t, "AB123456", app.FrequentFlyerNumber)

	var nilReq *EvaluateRequest
	assert.Error(t, nilReq.Validate())
}
