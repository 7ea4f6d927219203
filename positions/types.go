package positions

import (
	"errors"
	"strings"

	"github.com/raymondctw/Option-Pricing-Model/models"
)

// ErrInvalidSide is returned when a supplied position side does not
// normalize to Long or Short.
var ErrInvalidSide = errors.New("position side must be either Long or Short")

type Side string

const (
	Long  Side = "long"
	Short Side = "short"
)

// ParseSide normalizes "Long"/"Short" (case-insensitive, "L"/"S" also
// accepted) into the two-variant enum.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long", "l":
		return Long, nil
	case "short", "s":
		return Short, nil
	}
	return "", ErrInvalidSide
}

// Position is an option holding: contract type plus size terms.
type Position struct {
	OptionType models.OptionType
	Side       Side
	Quantity   int
	Multiplier float64
}

// SignedQuantity is the quantity negated for short positions.
func (p Position) SignedQuantity() float64 {
	if p.Side == Short {
		return -float64(p.Quantity)
	}
	return float64(p.Quantity)
}

// BSMGreeks holds the per-contract premium and sensitivities, or the
// same figures scaled to position terms.
type BSMGreeks struct {
	Premium float64 `json:"premium"`
	Delta   float64 `json:"delta"`
	Gamma   float64 `json:"gamma_one_percent"`
	Theta   float64 `json:"theta_one_day"`
	Vega    float64 `json:"vega_one_percent"`
	Rho     float64 `json:"rho_one_percent"`
}

type HedgeAction string

const (
	Buy  HedgeAction = "Buy"
	Sell HedgeAction = "Sell"
)
