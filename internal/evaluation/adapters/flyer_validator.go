package adapters

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"cardeval/internal/evaluation/models"
	"cardeval/internal/evaluation/ports"
)

// DefaultFlyerNumberPattern matches two airline letters followed by 6-10 digits.
const DefaultFlyerNumberPattern = `^[A-Z]{2}[0-9]{6,10}$`

var (
	ErrEmptyFlyerNumber = errors.New("frequent flyer number is empty")
	ErrLicenseExpired   = errors.New("frequent flyer service license expired")
)

// LocalFlyerValidator is an in-process implementation of ports.FrequentFlyerValidator.
// It stands in for the billed external service: Quick mode checks the number
// format, Detailed mode also verifies the trailing mod-10 check digit.
type LocalFlyerValidator struct {
	pattern *regexp.Regexp

	mu         sync.RWMutex
	licenseKey string
	mode       models.ValidationMode
	listeners  []ports.LookupListener
}

// NewLocalFlyerValidator creates a validator running under licenseKey. An empty
// pattern uses DefaultFlyerNumberPattern.
func NewLocalFlyerValidator(licenseKey, pattern string) (*LocalFlyerValidator, error) {
	if pattern == "" {
		pattern = DefaultFlyerNumberPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile flyer number pattern: %w", err)
	}
	return &LocalFlyerValidator{
		pattern:    re,
		licenseKey: licenseKey,
		mode:       models.ValidationModeQuick,
	}, nil
}

func (v *LocalFlyerValidator) IsValid(ctx context.Context, frequentFlyerNumber string) (bool, error) {
	mode := v.ValidationMode()
	valid, err := v.check(ctx, mode, frequentFlyerNumber)
	v.notify(ports.LookupEvent{Mode: mode, Failed: err != nil})
	return valid, err
}

func (v *LocalFlyerValidator) check(ctx context.Context, mode models.ValidationMode, number string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if v.ServiceInformation().License.IsExpired() {
		return false, ErrLicenseExpired
	}

	number = strings.TrimSpace(number)
	if number == "" {
		return false, ErrEmptyFlyerNumber
	}
	if !v.pattern.MatchString(number) {
		return false, nil
	}
	if mode == models.ValidationModeDetailed {
		return passesCheckDigit(number), nil
	}
	return true, nil
}

func (v *LocalFlyerValidator) ValidationMode() models.ValidationMode {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.mode
}

func (v *LocalFlyerValidator) SetValidationMode(mode models.ValidationMode) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mode = mode
}

func (v *LocalFlyerValidator) ServiceInformation() ports.ServiceInformation {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return ports.ServiceInformation{License: ports.ServiceLicense{LicenseKey: v.licenseKey}}
}

// SetLicenseKey replaces the license the service runs under.
func (v *LocalFlyerValidator) SetLicenseKey(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.licenseKey = key
}

func (v *LocalFlyerValidator) OnLookupPerformed(listener ports.LookupListener) {
	if listener == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, listener)
}

// notify runs listeners outside the lock so they may call back into the validator.
func (v *LocalFlyerValidator) notify(event ports.LookupEvent) {
	v.mu.RLock()
	listeners := append([]ports.LookupListener(nil), v.listeners...)
	v.mu.RUnlock()

	for _, l := range listeners {
		l(event)
	}
}

// passesCheckDigit applies the Luhn mod-10 check to the digits of number.
func passesCheckDigit(number string) bool {
	sum, n := 0, 0
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			continue
		}
		d := int(c - '0')
		if n%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		n++
	}
	return n > 0 && sum%10 == 0
}
