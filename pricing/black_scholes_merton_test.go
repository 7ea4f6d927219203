package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raymondctw/Option-Pricing-Model/models"
)

const parityTolerance = 1e-6

func TestPremiumKnownValues(t *testing.T) {
	t.Run("otm call with 60 trading days left", func(t *testing.T) {
		got, err := Premium(100, 105, 60.0/252, 0.02, 0.3, models.Call)
		require.NoError(t, err)
		assert.InDelta(t, 3.9831, got, 5e-3)
	})

	t.Run("atm call one year out", func(t *testing.T) {
		got, err := Premium(100, 100, 1, 0.05, 0.2, models.Call)
		require.NoError(t, err)
		assert.InDelta(t, 10.4506, got, 1e-3)
	})

	t.Run("atm put one year out", func(t *testing.T) {
		got, err := Premium(100, 100, 1, 0.05, 0.2, models.Put)
		require.NoError(t, err)
		assert.InDelta(t, 5.5735, got, 1e-3)
	})
}

func TestPremiumAtExpiry(t *testing.T) {
	t.Run("itm call pays intrinsic", func(t *testing.T) {
		got, err := Premium(120, 100, 0, 0.05, 0.2, models.Call)
		require.NoError(t, err)
		assert.Equal(t, 20.0, got)
	})

	t.Run("otm call pays nothing", func(t *testing.T) {
		got, err := Premium(90, 100, 0, 0.05, 0.2, models.Call)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})

	t.Run("itm put pays intrinsic", func(t *testing.T) {
		got, err := Premium(90, 100, 0, 0.05, 0.2, models.Put)
		require.NoError(t, err)
		assert.Equal(t, 10.0, got)
	})

	t.Run("otm put pays nothing", func(t *testing.T) {
		got, err := Premium(120, 100, 0, 0.05, 0.2, models.Put)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})
}

func TestPutCallParity(t *testing.T) {
	spots := []float64{80, 95, 100, 110, 150}
	tenors := []float64{1.0 / 252, 30.0 / 252, 0.5, 1, 2}
	vols := []float64{0.05, 0.2, 0.6, 1.5}

	for _, s := range spots {
		for _, tenor := range tenors {
			for _, sigma := range vols {
				call, err := Premium(s, 100, tenor, 0.03, sigma, models.Call)
				require.NoError(t, err)
				put, err := Premium(s, 100, tenor, 0.03, sigma, models.Put)
				require.NoError(t, err)

				want := s - 100*math.Exp(-0.03*tenor)
				assert.InDelta(t, want, call-put, parityTolerance,
					"parity failed for s=%.0f t=%.4f sigma=%.2f", s, tenor, sigma)
			}
		}
	}
}

func TestPremiumMonotonicInSpot(t *testing.T) {
	prevCall, prevPut := math.Inf(-1), math.Inf(1)
	for s := 50.0; s <= 150; s += 2.5 {
		call, err := Premium(s, 100, 0.5, 0.03, 0.25, models.Call)
		require.NoError(t, err)
		put, err := Premium(s, 100, 0.5, 0.03, 0.25, models.Put)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, call, prevCall, "call premium decreased at s=%.1f", s)
		assert.LessOrEqual(t, put, prevPut, "put premium increased at s=%.1f", s)
		prevCall, prevPut = call, put
	}
}

func TestPremiumMonotonicInVolatility(t *testing.T) {
	for _, optionType := range []models.OptionType{models.Call, models.Put} {
		prev := math.Inf(-1)
		for sigma := 0.01; sigma <= 2; sigma += 0.05 {
			got, err := Premium(100, 110, 0.5, 0.03, sigma, optionType)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, prev, "%s premium decreased at sigma=%.2f", optionType, sigma)
			prev = got
		}
	}
}

func TestDeltaKnownValue(t *testing.T) {
	call, err := Delta(100, 100, 1, 0.05, 0.2, models.Call)
	require.NoError(t, err)
	assert.InDelta(t, 0.6368, call, 1e-4)

	put, err := Delta(100, 100, 1, 0.05, 0.2, models.Put)
	require.NoError(t, err)
	assert.InDelta(t, call-1, put, 1e-12)
}

func TestDeltaBounds(t *testing.T) {
	for _, s := range []float64{50, 90, 100, 110, 200} {
		for _, sigma := range []float64{0.05, 0.3, 1.0, 1.9} {
			call, err := Delta(s, 100, 0.25, 0.02, sigma, models.Call)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, call, 0.0)
			assert.LessOrEqual(t, call, 1.0)

			put, err := Delta(s, 100, 0.25, 0.02, sigma, models.Put)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, put, -1.0)
			assert.LessOrEqual(t, put, 0.0)
		}
	}
}

func TestPremiumInvalidType(t *testing.T) {
	_, err := Premium(100, 100, 1, 0.05, 0.2, models.OptionType("Straddle"))
	assert.ErrorIs(t, err, models.ErrInvalidOptionType)

	// The t=0 branch validates too.
	_, err = Premium(100, 100, 0, 0.05, 0.2, models.OptionType("Straddle"))
	assert.ErrorIs(t, err, models.ErrInvalidOptionType)

	_, err = Delta(100, 100, 1, 0.05, 0.2, models.OptionType(""))
	assert.ErrorIs(t, err, models.ErrInvalidOptionType)
}
