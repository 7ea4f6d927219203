package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOptionType(t *testing.T) {
	cases := []struct {
		input string
		want  OptionType
	}{
		{"Call", Call},
		{"call", Call},
		{"CALL", Call},
		{"C", Call},
		{"c", Call},
		{" call ", Call},
		{"Put", Put},
		{"put", Put},
		{"PUT", Put},
		{"P", Put},
		{"p", Put},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseOptionType(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseOptionTypeInvalid(t *testing.T) {
	for _, input := range []string{"Straddle", "", "ca ll", "cal"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseOptionType(input)
			assert.ErrorIs(t, err, ErrInvalidOptionType)
		})
	}
}

func TestOptionTypeValidate(t *testing.T) {
	assert.NoError(t, Call.Validate())
	assert.NoError(t, Put.Validate())
	assert.ErrorIs(t, OptionType("straddle").Validate(), ErrInvalidOptionType)
	assert.ErrorIs(t, OptionType("").Validate(), ErrInvalidOptionType)
}

func TestOptionQuoteUnitConversions(t *testing.T) {
	q := OptionQuote{TradingDays: 63, RatePercent: 2.5}
	assert.InDelta(t, 0.25, q.YearsToMaturity(), 1e-12)
	assert.InDelta(t, 0.025, q.Rate(), 1e-12)
}
