package scanner

import "github.com/montanaflynn/stats"

// Summary aggregates the recovered implied volatilities across a scan.
type Summary struct {
	Quotes   int     `json:"quotes"`
	Solved   int     `json:"solved"`
	Failed   int     `json:"failed"`
	MeanIV   float64 `json:"mean_iv"`
	MedianIV float64 `json:"median_iv"`
	StdDevIV float64 `json:"stddev_iv"`
	MinIV    float64 `json:"min_iv"`
	MaxIV    float64 `json:"max_iv"`
}

func Summarize(results []Result) Summary {
	var ivs []float64
	for _, r := range results {
		if r.Error == "" {
			ivs = append(ivs, r.ImpliedVol)
		}
	}

	summary := Summary{
		Quotes: len(results),
		Solved: len(ivs),
		Failed: len(results) - len(ivs),
	}
	if len(ivs) == 0 {
		return summary
	}

	summary.MeanIV, _ = stats.Mean(ivs)
	summary.MedianIV, _ = stats.Median(ivs)
	summary.StdDevIV, _ = stats.StandardDeviation(ivs)
	summary.MinIV, _ = stats.Min(ivs)
	summary.MaxIV, _ = stats.Max(ivs)
	return summary
}
