package models

import (
	"errors"
	"strings"
)

// TradingDays is the day-count convention: trading days per year, used
// both for one-day theta and for converting tenors quoted in trading days.
const TradingDays = 252

// ErrInvalidOptionType is returned whenever a supplied option type does
// not normalize to Call or Put.
var ErrInvalidOptionType = errors.New("option type must be either Call or Put")

type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// ParseOptionType normalizes the user-facing spellings ("Call", "call",
// "C", "c", ...) into the two-variant enum. Parsing happens once at the
// input boundary; everything downstream matches on the enum.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return "", ErrInvalidOptionType
}

func (o OptionType) Validate() error {
	if o != Call && o != Put {
		return ErrInvalidOptionType
	}
	return nil
}
