package evaluation

import (
	"context"
	"fmt"

	"cardeval/internal/evaluation/models"
)

// applyRules runs the application rule chain. The first matching rule ends
// evaluation.
// Rule priority (fail-fast):
//  1. High income - auto accept without touching any collaborator
//  2. Validator license - an expired license always refers
//  3. Fraud risk - checked before the frequent flyer lookup
//  4. Validation mode - set from age, not a terminal rule
//  5. Frequent flyer number - failed or invalid lookups refer
//  6. Young applicant
//  7. Low income
//  8. Everything else is reviewed by a human
func (e *Evaluator) applyRules(ctx context.Context, application models.Application) (models.Decision, models.Reason, error) {
	// Rule 1: High income
	if application.IsHighIncome() {
		return models.DecisionAutoAccepted, models.ReasonHighIncome, nil
	}

	// Rule 2: Validator license
	if e.validator.ServiceInformation().License.IsExpired() {
		return models.DecisionReferredToHuman, models.ReasonLicenseExpired, nil
	}

	// Rule 3: Fraud risk
	risky, err := e.fraud.IsFraudRisk(ctx, application)
	if err != nil {
		e.metrics.IncrementFraudLookupError()
		return models.DecisionUnknown, "", fmt.Errorf("%w: %w", ErrFraudLookup, err)
	}
	if risky {
		return models.DecisionReferredToHumanFraudRisk, models.ReasonFraudRisk, nil
	}

	// Rules 4 and 5: Validation mode and frequent flyer number
	valid, err := e.checkFlyerNumber(ctx, application)
	if err != nil {
		e.logger.WarnContext(ctx, "frequent flyer lookup failed",
			"validation_mode", application.RequiredValidationMode(),
			"error", err,
		)
		return models.DecisionReferredToHuman, models.ReasonFlyerLookupFailed, nil
	}
	if !valid {
		return models.DecisionReferredToHuman, models.ReasonFlyerNumberInvalid, nil
	}

	// Rule 6: Young applicant
	if application.IsTooYoung() {
		return models.DecisionReferredToHuman, models.ReasonApplicantTooYoung, nil
	}

	// Rule 7: Low income
	if application.IsLowIncome() {
		return models.DecisionAutoDeclined, models.ReasonLowIncome, nil
	}

	return models.DecisionReferredToHuman, models.ReasonManualReview, nil
}

// checkFlyerNumber sets the validation mode for the applicant and validates the
// frequent flyer number. A panicking validator is reported as an error.
func (e *Evaluator) checkFlyerNumber(ctx context.Context, application models.Application) (valid bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			valid, err = false, fmt.Errorf("%w: %v", ErrValidatorPanicked, r)
		}
	}()

	e.validator.SetValidationMode(application.RequiredValidationMode())
	return e.validator.IsValid(ctx, application.FrequentFlyerNumber)
}
