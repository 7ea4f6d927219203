package positions

import (
	"math"

	"github.com/raymondctw/Option-Pricing-Model/models"
	"github.com/raymondctw/Option-Pricing-Model/pricing"
)

// minPremium is the floor applied when an option carries no intrinsic
// value; an observed premium at or below it cannot be inverted.
const minPremium = 0.01

// CalculateGreeks evaluates the premium and all five sensitivities for
// one parameter tuple.
func CalculateGreeks(s, k, t, r, sigma float64, optionType models.OptionType) (BSMGreeks, error) {
	premium, err := pricing.Premium(s, k, t, r, sigma, optionType)
	if err != nil {
		return BSMGreeks{}, err
	}
	delta, err := pricing.Delta(s, k, t, r, sigma, optionType)
	if err != nil {
		return BSMGreeks{}, err
	}
	gamma, err := pricing.GammaOnePercent(s, k, t, r, sigma, optionType)
	if err != nil {
		return BSMGreeks{}, err
	}
	theta, err := pricing.ThetaOneDay(s, k, t, r, sigma, optionType)
	if err != nil {
		return BSMGreeks{}, err
	}
	vega, err := pricing.VegaOnePercent(s, k, t, r, sigma, optionType)
	if err != nil {
		return BSMGreeks{}, err
	}
	rho, err := pricing.RhoOnePercent(s, k, t, r, sigma, optionType)
	if err != nil {
		return BSMGreeks{}, err
	}

	return BSMGreeks{
		Premium: premium,
		Delta:   delta,
		Gamma:   gamma,
		Theta:   theta,
		Vega:    vega,
		Rho:     rho,
	}, nil
}

// Exposure scales unit figures to position dollar terms: multiplier
// times signed quantity, with the delta and gamma rows additionally
// scaled by spot since they are quoted against a move in the underlying.
func (p Position) Exposure(unit BSMGreeks, spot float64) BSMGreeks {
	size := p.Multiplier * p.SignedQuantity()
	return BSMGreeks{
		Premium: unit.Premium * size,
		Delta:   unit.Delta * spot * size,
		Gamma:   unit.Gamma * spot * size,
		Theta:   unit.Theta * size,
		Vega:    unit.Vega * size,
		Rho:     unit.Rho * size,
	}
}

// DeltaHedge returns the underlying trade that neutralizes the
// position's delta.
func (p Position) DeltaHedge(unitDelta float64) (HedgeAction, float64) {
	shares := -unitDelta * p.Multiplier * p.SignedQuantity()
	if shares > 0 {
		return Buy, shares
	}
	return Sell, math.Abs(shares)
}

// Moneyness classifies the strike against spot from the holder's side
// and returns the distance as a fraction of spot.
func Moneyness(spot, strike float64, optionType models.OptionType) (string, float64) {
	if spot == strike {
		return "ATM", 0
	}
	itm := spot > strike
	if optionType == models.Put {
		itm = !itm
	}
	pct := math.Abs(spot-strike) / spot
	if itm {
		return "ITM", pct
	}
	return "OTM", pct
}

// PremiumFloor is the lowest observed premium the solver can be asked
// to match: the option's intrinsic value, or minPremium when there is
// none.
func PremiumFloor(spot, strike float64, optionType models.OptionType) float64 {
	if optionType == models.Call && spot > strike {
		return spot - strike
	}
	if optionType == models.Put && spot < strike {
		return strike - spot
	}
	return minPremium
}
