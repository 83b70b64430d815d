package ports

//go:generate mockgen -source=fraud.go -destination=mocks/fraud_mock.go -package=mocks

import (
	"context"

	"cardeval/internal/evaluation/models"
)

// FraudLookup decides whether an application is a fraud risk. Errors are
// treated as infrastructure failures and are not recovered by the evaluator.
type FraudLookup interface {
	IsFraudRisk(ctx context.Context, application models.Application) (bool, error)
}

// FraudCheckFunc adapts a plain function to FraudLookup.
type FraudCheckFunc func(ctx context.Context, application models.Application) (bool, error)

func (f FraudCheckFunc) IsFraudRisk(ctx context.Context, application models.Application) (bool, error) {
	return f(ctx, application)
}

// NoFraudRisk is the default lookup; it never flags an application.
type NoFraudRisk struct{}

func (NoFraudRisk) IsFraudRisk(context.Context, models.Application) (bool, error) {
	return false, nil
}
