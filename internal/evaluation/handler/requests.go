package handler

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"cardeval/internal/evaluation/models"
)

const (
	maxAge               = 150
	maxFlyerNumberLength = 32

	// Income bounds are checked on the raw representation. Comparing a decimal
	// with a large exponent rescales it to a big.Int of that many digits.
	maxIncomeExponent = 12
	minIncomeExponent = -8
	maxIncomeDigits   = 24
)

// EvaluateRequest is the HTTP request body for POST /applications/evaluate.
// Income is a decimal string or JSON number.
type EvaluateRequest struct {
	GrossAnnualIncome   decimal.NullDecimal `json:"gross_annual_income"`
	Age                 int                 `json:"age"`
	FrequentFlyerNumber string              `json:"frequent_flyer_number"`
}

// Validate checks field ranges. Omitted fields take their zero value.
func (r *EvaluateRequest) Validate() error {
	if r == nil {
		return errors.New("request body is required")
	}

	// Size validation (fail fast)
	r.FrequentFlyerNumber = strings.TrimSpace(r.FrequentFlyerNumber)
	if len(r.FrequentFlyerNumber) > maxFlyerNumberLength {
		return errors.New("frequent_flyer_number must be at most 32 characters")
	}

	if r.GrossAnnualIncome.Valid {
		income := r.GrossAnnualIncome.Decimal
		if exp := income.Exponent(); exp > maxIncomeExponent || exp < minIncomeExponent {
			return errors.New("gross_annual_income is out of range")
		}
		if income.NumDigits() > maxIncomeDigits {
			return errors.New("gross_annual_income is out of range")
		}
		if income.IsNegative() {
			return errors.New("gross_annual_income must not be negative")
		}
	}
	if r.Age < 0 || r.Age > maxAge {
		return errors.New("age must be between 0 and 150")
	}
	return nil
}

// Application converts the validated request into the domain model.
func (r *EvaluateRequest) Application() models.Application {
	income := decimal.Zero
	if r.GrossAnnualIncome.Valid {
		income = r.GrossAnnualIncome.Decimal
	}
	return models.Application{
		GrossAnnualIncome:   income,
		Age:                 r.Age,
		FrequentFlyerNumber: r.FrequentFlyerNumber,
	}
}
