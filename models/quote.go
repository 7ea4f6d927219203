package models

// OptionQuote is one observed market quote, as read from the scan input
// CSV. Tenor arrives in trading days and the rate in percent, the same
// units the interactive surface collects; convert here and nowhere else.
type OptionQuote struct {
	Symbol      string  `csv:"symbol" json:"symbol"`
	OptionType  string  `csv:"option_type" json:"option_type"`
	Spot        float64 `csv:"spot" json:"spot"`
	Strike      float64 `csv:"strike" json:"strike"`
	TradingDays float64 `csv:"trading_days" json:"trading_days"`
	RatePercent float64 `csv:"rate_percent" json:"rate_percent"`
	Premium     float64 `csv:"premium" json:"premium"`
}

// YearsToMaturity converts the quoted tenor to years.
func (q OptionQuote) YearsToMaturity() float64 {
	return q.TradingDays / TradingDays
}

// Rate converts the quoted rate to a decimal.
func (q OptionQuote) Rate() float64 {
	return q.RatePercent / 100
}
