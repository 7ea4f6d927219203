package pricing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raymondctw/Option-Pricing-Model/models"
)

func TestImpliedVolatilityRoundTrip(t *testing.T) {
	const (
		s, k, tenor, r = 100.0, 110.0, 0.5, 0.03
	)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 25; i++ {
		sigma := 0.05 + rng.Float64()*1.85
		optionType := models.Call
		if i%2 == 1 {
			optionType = models.Put
		}

		premium, err := Premium(s, k, tenor, r, sigma, optionType)
		require.NoError(t, err)

		got, err := ImpliedVolatility(s, k, tenor, r, premium, optionType)
		require.NoError(t, err, "solve failed for sigma=%.4f %s", sigma, optionType)
		assert.InDelta(t, sigma, got, 2*Accuracy, "round trip for sigma=%.4f %s", sigma, optionType)
	}
}

func TestImpliedVolatilityKnownValue(t *testing.T) {
	// Call worth 10.4506 at sigma=0.2.
	got, err := ImpliedVolatility(100, 100, 1, 0.05, 10.450584, models.Call)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, got, 2*Accuracy)
}

func TestImpliedVolatilityUnbracketed(t *testing.T) {
	t.Run("premium above the sigma=2 price", func(t *testing.T) {
		_, err := ImpliedVolatility(100, 110, 0.5, 0.03, 99, models.Call)
		assert.ErrorIs(t, err, ErrImpliedVolOutOfBounds)
	})

	t.Run("premium below intrinsic value", func(t *testing.T) {
		_, err := ImpliedVolatility(120, 100, 0.5, 0.03, 0.5, models.Call)
		assert.ErrorIs(t, err, ErrImpliedVolOutOfBounds)
	})

	t.Run("at expiry the premium carries no vol information", func(t *testing.T) {
		_, err := ImpliedVolatility(100, 100, 0, 0.03, 5, models.Call)
		assert.ErrorIs(t, err, ErrImpliedVolOutOfBounds)
	})
}

func TestImpliedVolatilityInvalidType(t *testing.T) {
	_, err := ImpliedVolatility(100, 100, 1, 0.05, 10, models.OptionType("Straddle"))
	assert.ErrorIs(t, err, models.ErrInvalidOptionType)
}
