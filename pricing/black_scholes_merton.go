package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/raymondctw/Option-Pricing-Model/models"
)

// stdNormal backs the Φ terms of the closed form.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// D1 calculates d1 in the Black-Scholes-Merton model. Defined only for
// t > 0 and sigma > 0; Premium branches on t == 0 before coming here.
func D1(s, k, t, r, sigma float64) float64 {
	return (math.Log(s/k) + (r+sigma*sigma/2)*t) / (sigma * math.Sqrt(t))
}

// D2 calculates d2 in the Black-Scholes-Merton model.
func D2(s, k, t, r, sigma float64) float64 {
	return D1(s, k, t, r, sigma) - sigma*math.Sqrt(t)
}

// Premium calculates the theoretical option price. At expiry (t == 0)
// the premium is the intrinsic value; this branch has to run first so
// d1/d2 never divide by zero.
func Premium(s, k, t, r, sigma float64, optionType models.OptionType) (float64, error) {
	if t == 0 {
		switch optionType {
		case models.Call:
			return math.Max(s-k, 0), nil
		case models.Put:
			return math.Max(k-s, 0), nil
		default:
			return 0, models.ErrInvalidOptionType
		}
	}

	d1 := D1(s, k, t, r, sigma)
	d2 := D2(s, k, t, r, sigma)
	switch optionType {
	case models.Call:
		return s*stdNormal.CDF(d1) - k*math.Exp(-r*t)*stdNormal.CDF(d2), nil
	case models.Put:
		return k*math.Exp(-r*t)*stdNormal.CDF(-d2) - s*stdNormal.CDF(-d1), nil
	default:
		return 0, models.ErrInvalidOptionType
	}
}

// Delta calculates the change in premium for a one unit move in spot.
// Call delta lies in [0, 1], put delta in [-1, 0], for t > 0.
func Delta(s, k, t, r, sigma float64, optionType models.OptionType) (float64, error) {
	d1 := D1(s, k, t, r, sigma)
	switch optionType {
	case models.Call:
		return stdNormal.CDF(d1), nil
	case models.Put:
		return stdNormal.CDF(d1) - 1, nil
	default:
		return 0, models.ErrInvalidOptionType
	}
}
