package evaluation

import "errors"

var (
	// ErrValidatorRequired is returned by New when no frequent flyer validator is supplied.
	ErrValidatorRequired = errors.New("frequent flyer validator is required")

	// ErrFraudLookup wraps failures returned by the fraud lookup.
	ErrFraudLookup = errors.New("fraud lookup failed")

	// ErrValidatorPanicked wraps a panic raised inside the validator's IsValid.
	ErrValidatorPanicked = errors.New("frequent flyer validator panicked")
)
