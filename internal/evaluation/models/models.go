package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fixed business thresholds. These are not configurable.
var (
	HighIncomeThreshold = decimal.NewFromInt(100_000)
	LowIncomeThreshold  = decimal.NewFromInt(20_000)
)

const (
	MinimumAge            = 20
	DetailedValidationAge = 30

	// ExpiredLicenseKey is the license key value reported by a validator whose
	// service license has lapsed.
	ExpiredLicenseKey = "EXPIRED"
)

// ErrInvalidDecision is returned when parsing an unknown decision string.
var ErrInvalidDecision = errors.New("invalid decision")

// Application is a credit-card application as submitted by the caller. The
// evaluator only reads it.
type Application struct {
	GrossAnnualIncome   decimal.Decimal
	Age                 int
	FrequentFlyerNumber string
}

// IsHighIncome reports whether the applicant clears the auto-accept threshold.
func (a Application) IsHighIncome() bool {
	return a.GrossAnnualIncome.GreaterThanOrEqual(HighIncomeThreshold)
}

// IsLowIncome reports whether the applicant falls below the auto-decline threshold.
func (a Application) IsLowIncome() bool {
	return a.GrossAnnualIncome.LessThan(LowIncomeThreshold)
}

// IsTooYoung reports whether the applicant must be referred regardless of
// frequent flyer validation.
func (a Application) IsTooYoung() bool {
	return a.Age < MinimumAge
}

// RequiredValidationMode returns the validation depth the applicant's age calls for.
func (a Application) RequiredValidationMode() ValidationMode {
	if a.Age >= DetailedValidationAge {
		return ValidationModeDetailed
	}
	return ValidationModeQuick
}

// Decision enumerates the terminal outcomes of an evaluation.
type Decision string

const (
	DecisionUnknown                  Decision = ""
	DecisionAutoAccepted             Decision = "auto_accepted"
	DecisionAutoDeclined             Decision = "auto_declined"
	DecisionReferredToHuman          Decision = "referred_to_human"
	DecisionReferredToHumanFraudRisk Decision = "referred_to_human_fraud_risk"
)

// ParseDecision converts a wire value into a Decision.
func ParseDecision(s string) (Decision, error) {
	d := Decision(s)
	if !d.IsValid() {
		return DecisionUnknown, fmt.Errorf("%w: %q", ErrInvalidDecision, s)
	}
	return d, nil
}

// IsValid reports whether d is one of the four defined decisions.
func (d Decision) IsValid() bool {
	switch d {
	case DecisionAutoAccepted, DecisionAutoDeclined, DecisionReferredToHuman, DecisionReferredToHumanFraudRisk:
		return true
	}
	return false
}

func (d Decision) String() string {
	return string(d)
}

// ValidationMode is the depth of frequent flyer validation requested from the
// validator.
type ValidationMode string

const (
	ValidationModeQuick    ValidationMode = "quick"
	ValidationModeDetailed ValidationMode = "detailed"
)

func (m ValidationMode) String() string {
	return string(m)
}

// Reason records which rule produced a decision.
type Reason string

const (
	ReasonHighIncome         Reason = "high_income"
	ReasonLicenseExpired     Reason = "license_expired"
	ReasonFraudRisk          Reason = "fraud_risk"
	ReasonFlyerLookupFailed  Reason = "flyer_lookup_failed"
	ReasonFlyerNumberInvalid Reason = "flyer_number_invalid"
	ReasonApplicantTooYoung  Reason = "applicant_too_young"
	ReasonLowIncome          Reason = "low_income"
	ReasonManualReview       Reason = "manual_review"
)

// Result is the outcome of a single evaluation.
type Result struct {
	ID          uuid.UUID
	Decision    Decision
	Reason      Reason
	EvaluatedAt time.Time
}
