package ports

//go:generate mockgen -source=validator.go -destination=mocks/validator_mock.go -package=mocks

import (
	"context"

	"cardeval/internal/evaluation/models"
)

// FrequentFlyerValidator defines the frequent flyer number service consumed by
// the evaluator. The real implementation is an external, billed service that
// can be slow or fail; the evaluator depends only on this contract.
type FrequentFlyerValidator interface {
	// IsValid checks a frequent flyer number. An error means the outcome is
	// unknown, not that the number is invalid.
	IsValid(ctx context.Context, frequentFlyerNumber string) (bool, error)

	// ValidationMode returns the currently configured validation depth.
	ValidationMode() models.ValidationMode

	// SetValidationMode configures the depth used by subsequent IsValid calls.
	SetValidationMode(mode models.ValidationMode)

	// ServiceInformation reports the service's license details. Each call is
	// an independent read.
	ServiceInformation() ServiceInformation

	// OnLookupPerformed registers a listener notified exactly once per
	// completed IsValid call, successful or not, before IsValid returns.
	OnLookupPerformed(listener LookupListener)
}

// LookupListener receives lookup-performed notifications.
type LookupListener func(event LookupEvent)

// LookupEvent describes a completed validation call.
type LookupEvent struct {
	Mode models.ValidationMode
	// Failed is true when the call returned an error.
	Failed bool
}

// ServiceInformation is the validator's service metadata.
type ServiceInformation struct {
	License ServiceLicense
}

// ServiceLicense carries the license the validator service runs under.
type ServiceLicense struct {
	LicenseKey string
}

// IsExpired reports whether the license key is the expiry sentinel.
func (l ServiceLicense) IsExpired() bool {
	return l.LicenseKey == models.ExpiredLicenseKey
}
