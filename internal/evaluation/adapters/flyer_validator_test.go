package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardeval/internal/evaluation/models"
	"cardeval/internal/evaluation/ports"
)

func newValidator(t *testing.T, licenseKey string) *LocalFlyerValidator {
	t.Helper()
	v, err := NewLocalFlyerValidator(licenseKey, "")
	require.NoError(t, err)
	return v
}

func TestNewLocalFlyerValidator(t *testing.T) {
	t.Run("invalid pattern returns error", func(t *testing.T) {
		_, err := NewLocalFlyerValidator("key", "[")
		require.Error(t, err)
	})

	t.Run("defaults to quick mode", func(t *testing.T) {
		v := newValidator(t, "key")
		assert.Equal(t, models.ValidationModeQuick, v.ValidationMode())
		assert.Equal(t, "key", v.ServiceInformation().License.LicenseKey)
	})
}

func TestLocalFlyerValidator_IsValid(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mode   models.ValidationMode
		number string
		want   bool
	}{
		{"quick accepts well formed number", models.ValidationModeQuick, "AB123456", true},
		{"quick rejects malformed number", models.ValidationModeQuick, "x", false},
		{"quick rejects lowercase airline", models.ValidationModeQuick, "ab123456", false},
		{"detailed rejects bad check digit", models.ValidationModeDetailed, "AB123456", false},
		{"detailed accepts good check digit", models.ValidationModeDetailed, "AB1234566", true},
		{"detailed rejects malformed number", models.ValidationModeDetailed, "1234566", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newValidator(t, "key")
			v.SetValidationMode(tt.mode)

			got, err := v.IsValid(ctx, tt.number)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalFlyerValidator_Failures(t *testing.T) {
	t.Run("empty number", func(t *testing.T) {
		v := newValidator(t, "key")
		_, err := v.IsValid(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrEmptyFlyerNumber)
	})

	t.Run("expired license", func(t *testing.T) {
		v := newValidator(t, models.ExpiredLicenseKey)
		_, err := v.IsValid(context.Background(), "AB123456")
		assert.ErrorIs(t, err, ErrLicenseExpired)
	})

	t.Run("cancelled context", func(t *testing.T) {
		v := newValidator(t, "key")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := v.IsValid(ctx, "AB123456")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalFlyerValidator_Notifications(t *testing.T) {
	v := newValidator(t, "key")

	var events []ports.LookupEvent
	v.OnLookupPerformed(func(e ports.LookupEvent) { events = append(events, e) })
	v.OnLookupPerformed(nil)

	_, err := v.IsValid(context.Background(), "AB123456")
	require.NoError(t, err)

	v.SetValidationMode(models.ValidationModeDetailed)
	_, err = v.IsValid(context.Background(), "")
	require.Error(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, ports.LookupEvent{Mode: models.ValidationModeQuick, Failed: false}, events[0])
	assert.Equal(t, ports.LookupEvent{Mode: models.ValidationModeDetailed, Failed: true}, events[1])
}

func TestLocalFlyerValidator_SetLicenseKey(t *testing.T) {
	v := newValidator(t, "key")
	v.SetLicenseKey(models.ExpiredLicenseKey)

	assert.True(t, v.ServiceInformation().License.IsExpired())
}

func TestPassesCheckDigit(t *testing.T) {
	assert.True(t, passesCheckDigit("AB79927398713"))
	assert.False(t, passesCheckDigit("AB7992739871"))
	assert.False(t, passesCheckDigit("AB"))
}
