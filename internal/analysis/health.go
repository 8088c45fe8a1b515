package analysis

import (
	"fmt"
	"math"

	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

// DefaultHoldingVolatility is assumed for holdings with unknown volatility,
// representing typical equity volatility in percent.
const DefaultHoldingVolatility = 20.0

// PortfolioHealth scores a set of holdings for diversification,
// concentration and volatility, and derives a letter grade with
// advisory suggestions.
func PortfolioHealth(holdings []models.HoldingSnapshot) models.HealthReport {
	var suggestions []string

	total := 0.0
	for _, h := range holdings {
		total += h.CurrentValue
	}

	if total == 0 {
		return models.HealthReport{
			Grade:                models.GradeD,
			DiversificationScore: 0,
			ConcentrationRisk:    "No holdings",
			VolatilityRating:     models.VolatilityLow,
			Suggestions:          []string{"Start building your portfolio by adding some investments."},
		}
	}

	// Herfindahl index over position weights: 1 is fully concentrated,
	// 1/n is evenly spread.
	weights := make([]float64, len(holdings))
	hhi := 0.0
	for i, h := range holdings {
		weights[i] = h.CurrentValue / total
		hhi += weights[i] * weights[i]
	}

	n := len(holdings)
	diversification := 0
	if n > 1 {
		minHHI := 1 / float64(n)
		diversification = int(math.Round((1 - (hhi-minHHI)/(1-minHHI)) * 100))
	}

	maxWeight := 0.0
	maxIdx := 0
	for i, w := range weights {
		if w > maxWeight {
			maxWeight = w
			maxIdx = i
		}
	}

	concentration := "Low"
	if maxWeight > 0.5 {
		concentration = "High — more than 50% in one stock"
		suggestions = append(suggestions, fmt.Sprintf(
			"Consider reducing your %s position — it's %.0f%% of your portfolio.",
			holdings[maxIdx].Ticker, maxWeight*100))
	} else if maxWeight > 0.3 {
		concentration = "Medium — over 30% in one stock"
		suggestions = append(suggestions, "Your largest holding is sizable. Consider rebalancing if it grows further.")
	}

	if n < 3 {
		suggestions = append(suggestions, "Consider adding more stocks for better diversification (aim for 5-10 holdings).")
	} else if n > 15 {
		suggestions = append(suggestions, "You have many holdings. Consider consolidating into your highest-conviction picks.")
	}

	avgVol := 0.0
	for _, h := range holdings {
		if h.Volatility != nil {
			avgVol += *h.Volatility
		} else {
			avgVol += DefaultHoldingVolatility
		}
	}
	avgVol /= float64(n)

	rating := models.VolatilityMedium
	if avgVol < 15 {
		rating = models.VolatilityLow
	} else if avgVol > 30 {
		rating = models.VolatilityHigh
		suggestions = append(suggestions, "Your portfolio has high volatility. Consider adding some stable, low-beta stocks.")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Your portfolio looks well-balanced! Keep monitoring and rebalancing periodically.")
	}

	return models.HealthReport{
		Grade:                healthGrade(diversification, maxWeight, n, rating),
		DiversificationScore: diversification,
		ConcentrationRisk:    concentration,
		VolatilityRating:     rating,
		Suggestions:          suggestions,
	}
}

// healthGrade maps the scoring inputs to a letter grade via an internal
// composite score. The composite is scratch only and never reported.
func healthGrade(diversification int, maxWeight float64, count int, rating models.VolatilityRating) models.Grade {
	score := diversification

	switch {
	case maxWeight > 0.5:
		score -= 30
	case maxWeight > 0.3:
		score -= 15
	}

	if count >= 3 && count <= 15 {
		score += 20
	}

	switch rating {
	case models.VolatilityLow:
		score += 15
	case models.VolatilityMedium:
		score += 5
	case models.VolatilityHigh:
		score -= 10
	}

	switch {
	case score >= 70:
		return models.GradeA
	case score >= 45:
		return models.GradeB
	case score >= 20:
		return models.GradeC
	default:
		return models.GradeD
	}
}
