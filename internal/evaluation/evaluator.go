package evaluation

import (
	"context"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"cardeval/internal/evaluation/metrics"
	"cardeval/internal/evaluation/models"
	"cardeval/internal/evaluation/ports"
	"cardeval/internal/platform/audit"
)

const tracerName = "cardeval/internal/evaluation"

// Type aliases for interfaces from ports package.
// This allows external packages to use these types without importing ports directly.
type (
	FrequentFlyerValidator = ports.FrequentFlyerValidator
	FraudLookup            = ports.FraudLookup
	AuditPublisher         = ports.AuditPublisher
)

// Evaluator decides credit-card applications. It keeps a count of completed
// frequent flyer lookups, fed by the validator's lookup notification.
type Evaluator struct {
	validator      FrequentFlyerValidator
	fraud          FraudLookup
	auditPublisher AuditPublisher
	logger         *slog.Logger
	metrics        *metrics.Metrics
	tracer         trace.Tracer
	now            func() time.Time

	// mu serialises validation mode assignment with the lookup it configures.
	mu      sync.Mutex
	lookups atomic.Int64
}

type Option func(*Evaluator)

// WithFraudLookup replaces the default no-risk fraud lookup.
func WithFraudLookup(lookup FraudLookup) Option {
	return func(e *Evaluator) {
		if lookup != nil {
			e.fraud = lookup
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Evaluator) {
		e.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(e *Evaluator) {
		e.auditPublisher = publisher
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(e *Evaluator) {
		e.tracer = tracer
	}
}

// WithClock overrides the time source used for EvaluatedAt and latencies.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		e.now = now
	}
}

// New builds an Evaluator and subscribes it to the validator's lookup
// notifications.
func New(validator FrequentFlyerValidator, opts ...Option) (*Evaluator, error) {
	if isNil(validator) {
		return nil, ErrValidatorRequired
	}

	e := &Evaluator{
		validator: validator,
		fraud:     ports.NoFraudRisk{},
		logger:    slog.New(slog.DiscardHandler),
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	validator.OnLookupPerformed(e.lookupPerformed)

	return e, nil
}

// isNil also catches a typed nil pointer wrapped in the interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// LookupCount returns the number of completed frequent flyer lookups since
// the evaluator was constructed.
func (e *Evaluator) LookupCount() int64 {
	return e.lookups.Load()
}

func (e *Evaluator) lookupPerformed(event ports.LookupEvent) {
	e.lookups.Add(1)
	e.metrics.IncrementFlyerLookup(event.Mode.String(), event.Failed)
}

// Evaluate returns the decision for an application. The only error it returns
// is a fraud lookup failure.
func (e *Evaluator) Evaluate(ctx context.Context, application models.Application) (models.Decision, error) {
	result, err := e.EvaluateDetailed(ctx, application)
	if err != nil {
		return models.DecisionUnknown, err
	}
	return result.Decision, nil
}

// EvaluateDetailed is Evaluate plus the rule that fired and an evaluation ID.
func (e *Evaluator) EvaluateDetailed(ctx context.Context, application models.Application) (*models.Result, error) {
	start := e.now()
	ctx, span := e.tracer.Start(ctx, "evaluation.Evaluate")
	defer span.End()

	decision, reason, err := e.applyRules(ctx, application)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fraud lookup failed")
		e.logger.ErrorContext(ctx, "application evaluation failed",
			"age", application.Age,
			"error", err,
		)
		return nil, err
	}

	result := &models.Result{
		ID:          uuid.New(),
		Decision:    decision,
		Reason:      reason,
		EvaluatedAt: start,
	}

	span.SetAttributes(
		attribute.String("evaluation.id", result.ID.String()),
		attribute.String("evaluation.decision", decision.String()),
		attribute.String("evaluation.reason", string(reason)),
	)
	e.metrics.IncrementDecision(decision.String(), string(reason))
	e.metrics.ObserveEvaluateLatency(e.now().Sub(start))

	e.logger.InfoContext(ctx, "application evaluated",
		"evaluation_id", result.ID.String(),
		"decision", decision,
		"reason", reason,
		"lookup_count", e.LookupCount(),
	)

	e.emitAudit(ctx, audit.EventApplicationEvaluated, application, result)
	if reason == models.ReasonFlyerLookupFailed {
		e.emitAudit(ctx, audit.EventFlyerLookupFailed, application, result)
	}

	return result, nil
}

// emitAudit publishes an audit event. Failures are logged and never change
// the decision.
func (e *Evaluator) emitAudit(ctx context.Context, action audit.AuditEvent, application models.Application, result *models.Result) {
	if e.auditPublisher == nil {
		return
	}

	event := audit.Event{
		Category:      action.Category(),
		Timestamp:     result.EvaluatedAt,
		Action:        string(action),
		Decision:      result.Decision.String(),
		Reason:        string(result.Reason),
		SubjectIDHash: audit.HashSubject(application.FrequentFlyerNumber),
		Age:           application.Age,
		IncomeBand:    incomeBand(application),
	}
	if action == audit.EventApplicationEvaluated {
		event.ID = result.ID
	}

	if err := e.auditPublisher.Emit(ctx, event); err != nil {
		e.logger.WarnContext(ctx, "audit emit failed",
			"action", string(action),
			"evaluation_id", result.ID.String(),
			"error", err,
		)
	}
}

func incomeBand(application models.Application) string {
	switch {
	case application.IsHighIncome():
		return "high"
	case application.IsLowIncome():
		return "low"
	default:
		return "middle"
	}
}
