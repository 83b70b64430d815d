package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardeval/internal/evaluation/models"
)

func TestBlocklistFraudLookup(t *testing.T) {
	lookup := NewBlocklistFraudLookup([]string{" ab123456 ", "", "ZZ0000000"})
	ctx := context.Background()

	t.Run("blocked number is a risk", func(t *testing.T) {
		risky, err := lookup.IsFraudRisk(ctx, models.Application{FrequentFlyerNumber: "AB123456"})
		require.NoError(t, err)
		assert.True(t, risky)
	})

	t.Run("matching ignores case and space", func(t *testing.T) {
		risky, err := lookup.IsFraudRisk(ctx, models.Application{FrequentFlyerNumber: " zz0000000"})
		require.NoError(t, err)
		assert.True(t, risky)
	})

	t.Run("unknown number is not a risk", func(t *testing.T) {
		risky, err := lookup.IsFraudRisk(ctx, models.Application{FrequentFlyerNumber: "CD123456"})
		require.NoError(t, err)
		assert.False(t, risky)
	})

	t.Run("empty number is not a risk", func(t *testing.T) {
		risky, err := lookup.IsFraudRisk(ctx, models.Application{})
		require.NoError(t, err)
		assert.False(t, risky)
	})

	t.Run("cancelled context returns error", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := lookup.IsFraudRisk(cctx, models.Application{FrequentFlyerNumber: "AB123456"})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
