package pricing

import (
	"errors"
	"math"

	"github.com/raymondctw/Option-Pricing-Model/models"
)

const (
	// Accuracy is both the bisection convergence tolerance and the
	// lower volatility bound.
	Accuracy = 0.0001
	// IVUpperBound caps the search at 200% annualized volatility.
	IVUpperBound = 2.0
)

// ErrImpliedVolOutOfBounds is returned when the observed premium is not
// bracketed by the premiums at the two volatility bounds.
var ErrImpliedVolOutOfBounds = errors.New("implied volatility is not in the range of 0 to 2; check premium input")

// ImpliedVolatility recovers the volatility at which the model reprices
// the observed premium, by bisection over [Accuracy, IVUpperBound].
// The premium is monotonically increasing in volatility, so a sign
// change between the bounds brackets exactly one root and the loop
// converges in ~15 iterations.
func ImpliedVolatility(s, k, t, r, observedPremium float64, optionType models.OptionType) (float64, error) {
	if err := optionType.Validate(); err != nil {
		return 0, err
	}

	f := func(sigma float64) float64 {
		p, _ := Premium(s, k, t, r, sigma, optionType)
		return p - observedPremium
	}

	lower, upper := Accuracy, IVUpperBound
	if prod := f(lower) * f(upper); prod >= 0 || math.IsNaN(prod) {
		return 0, ErrImpliedVolOutOfBounds
	}

	for (upper-lower)/2 >= Accuracy {
		mid := (upper + lower) / 2
		switch {
		case f(mid)*f(lower) < 0:
			upper = mid
		case f(mid)*f(upper) < 0:
			lower = mid
		default:
			// f(mid) is exactly zero or numerically coincides with a
			// bound; collapse the interval so the loop terminates on
			// the next pass.
			upper = mid
			lower = mid
		}
	}

	return (upper + lower) / 2, nil
}
