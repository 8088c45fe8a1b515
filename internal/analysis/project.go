package analysis

import "math"

// ProjectPrice compounds the current price forward at the given annual
// growth rate for the given number of months. No bounds checking is done
// on negative prices or extreme rates.
func ProjectPrice(currentPrice, annualRatePct, months float64) float64 {
	years := months / 12
	return currentPrice * math.Pow(1+annualRatePct/100, years)
}
