package pricing

import "github.com/raymondctw/Option-Pricing-Model/models"

// The remaining Greeks are measured by bumping one input and repricing,
// not by closed-form derivatives. The bump sizes and difference
// directions are fixed; downstream consumers depend on these exact
// estimates.
const (
	spotBump = 0.005
	volBump  = 0.005
	rateBump = 0.005
)

// GammaOnePercent approximates the change in delta for a 1% move in
// spot, via a central difference over a ±0.5% spot bump.
func GammaOnePercent(s, k, t, r, sigma float64, optionType models.OptionType) (float64, error) {
	up, err := Delta(s*(1+spotBump), k, t, r, sigma, optionType)
	if err != nil {
		return 0, err
	}
	down, err := Delta(s*(1-spotBump), k, t, r, sigma, optionType)
	if err != nil {
		return 0, err
	}
	return up - down, nil
}

// VegaOnePercent approximates the change in premium for a one
// percentage point move in volatility.
func VegaOnePercent(s, k, t, r, sigma float64, optionType models.OptionType) (float64, error) {
	up, err := Premium(s, k, t, r, sigma+volBump, optionType)
	if err != nil {
		return 0, err
	}
	down, err := Premium(s, k, t, r, sigma-volBump, optionType)
	if err != nil {
		return 0, err
	}
	return up - down, nil
}

// ThetaOneDay is the change in premium from today to tomorrow, one
// trading day closer to expiry. One-sided, and signed as
// tomorrow-minus-today rather than the textbook -dP/dt.
func ThetaOneDay(s, k, t, r, sigma float64, optionType models.OptionType) (float64, error) {
	decayed, err := Premium(s, k, t-1.0/models.TradingDays, r, sigma, optionType)
	if err != nil {
		return 0, err
	}
	today, err := Premium(s, k, t, r, sigma, optionType)
	if err != nil {
		return 0, err
	}
	return decayed - today, nil
}

// RhoOnePercent approximates the change in premium for a one percentage
// point move in the financing rate.
func RhoOnePercent(s, k, t, r, sigma float64, optionType models.OptionType) (float64, error) {
	up, err := Premium(s, k, t, r+rateBump, sigma, optionType)
	if err != nil {
		return 0, err
	}
	down, err := Premium(s, k, t, r-rateBump, sigma, optionType)
	if err != nil {
		return 0, err
	}
	return up - down, nil
}
