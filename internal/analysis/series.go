// Package analysis provides the quantitative engine: series statistics,
// signal classification, price projection, portfolio health scoring and
// planning calculators. All functions are pure and never fail; sparse or
// malformed input degrades to sentinel values instead of errors.
package analysis

import "math"

const (
	// DefaultRSIPeriod is the standard RSI lookback
	DefaultRSIPeriod = 14

	// TradingDaysPerYear is used to annualize daily volatility
	TradingDaysPerYear = 252
)

// SMASeries calculates the simple moving average over the given window for
// each position in the series. Positions with fewer than window preceding
// points emit 0, so the result always has the same length as the input.
func SMASeries(closes []float64, window int) []float64 {
	sma := make([]float64, len(closes))
	for i := range closes {
		if i < window-1 {
			sma[i] = 0
			continue
		}
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += closes[j]
		}
		sma[i] = sum / float64(window)
	}
	return sma
}

// RSI calculates the Relative Strength Index over the trailing period.
// Series with fewer than period+1 points return the neutral value 50.
// A period with no losses returns 100.
func RSI(closes []float64, period int) float64 {
	if len(closes) < period+1 {
		return 50
	}

	var gains, losses float64
	for i := len(closes) - period; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	if avgLoss == 0 {
		return 100
	}

	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

// Volatility calculates annualized volatility as a percentage from a
// chronological close series. Fewer than 2 points returns 0.
func Volatility(closes []float64) float64 {
	if len(closes) < 2 {
		return 0
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns = append(returns, (closes[i]-closes[i-1])/closes[i-1])
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns))

	return math.Sqrt(variance) * math.Sqrt(TradingDaysPerYear) * 100
}

// CAGR calculates the compound annual growth rate as a percentage.
// Non-positive start values or year spans return 0.
func CAGR(start, end, years float64) float64 {
	if start <= 0 || years <= 0 {
		return 0
	}
	return (math.Pow(end/start, 1/years) - 1) * 100
}
