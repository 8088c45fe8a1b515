package analysis

import (
	"math"

	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

// SIP projects a recurring monthly investment compounded at the given
// annual rate. The future value uses the ordinary annuity-due closed form,
// and the growth series is sampled every month for horizons up to 60
// months and every 3rd month beyond that, always including the final month.
func SIP(monthly, annualRatePct, years float64) models.SIPResult {
	monthlyRate := annualRatePct / 100 / 12
	months := int(years * 12)
	totalInvested := monthly * float64(months)

	// FV of annuity due: P * [((1+r)^n - 1) / r] * (1+r)
	futureValue := totalInvested
	if monthlyRate != 0 {
		futureValue = monthly * ((math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate) * (1 + monthlyRate)
	}
	gained := futureValue - totalInvested

	step := 1
	if months > 60 {
		step = 3
	}

	var series []models.SIPPoint
	invested := 0.0
	value := 0.0
	for m := 1; m <= months; m++ {
		invested += monthly
		value = (value + monthly) * (1 + monthlyRate)
		if m%step == 0 || m == months {
			series = append(series, models.SIPPoint{
				Month:    m,
				Invested: math.Round(invested),
				Value:    math.Round(value),
			})
		}
	}

	multiple := 0.0
	if totalInvested != 0 {
		multiple = math.Round(futureValue/totalInvested*100) / 100
	}

	return models.SIPResult{
		TotalInvested:  math.Round(totalInvested),
		FutureValue:    math.Round(futureValue),
		WealthGained:   math.Round(gained),
		ReturnMultiple: multiple,
		Series:         series,
	}
}

// FD computes fixed-deposit maturity under quarterly compounding.
func FD(principal, annualRatePct, years float64) models.FDResult {
	maturity := principal * math.Pow(1+annualRatePct/400, 4*years)
	interest := maturity - principal

	effective := 0.0
	if principal != 0 {
		effective = math.Round((maturity/principal-1)*100*100) / 100
	}

	return models.FDResult{
		Principal:       math.Round(principal),
		MaturityAmount:  math.Round(maturity),
		InterestEarned:  math.Round(interest),
		EffectiveReturn: effective,
	}
}

// allocationTable is the static risk-profile to asset-split mapping.
var allocationTable = map[models.RiskProfile]models.AllocationProfile{
	models.RiskConservative: {
		Equity: 30, Debt: 50, Gold: 10, Liquid: 10,
		Label:       "Conservative",
		Description: "Capital preservation focused. Ideal for near-term goals (1-3 years) or low risk tolerance.",
		Suggestions: []string{
			"Prefer large-cap index funds (Nifty 50, Sensex)",
			"Consider PPF and NPS for tax-efficient debt allocation",
			"Gold via Sovereign Gold Bonds (SGB) for zero making charges",
			"Keep 6 months expenses in liquid fund / savings account",
		},
	},
	models.RiskBalanced: {
		Equity: 60, Debt: 25, Gold: 10, Liquid: 5,
		Label:       "Balanced",
		Description: "Growth with stability. Ideal for medium-term goals (3-7 years).",
		Suggestions: []string{
			"Mix of Nifty 50 index + Nifty Next 50 for core equity",
			"Add 1-2 quality mid-cap stocks for alpha generation",
			"Debt mutual funds or corporate bonds for stable returns",
			"SIP into ELSS funds for Section 80C tax benefits",
		},
	},
	models.RiskAggressive: {
		Equity: 80, Debt: 10, Gold: 5, Liquid: 5,
		Label:       "Aggressive",
		Description: "Maximum growth potential. Ideal for long-term goals (7+ years) with high risk tolerance.",
		Suggestions: []string{
			"Core: Nifty 50 index fund (40%), direct stock picks (40%)",
			"Explore quality mid-cap and small-cap opportunities",
			"Consider international diversification (US S&P 500 index)",
			"Keep minimal debt allocation for rebalancing opportunities",
		},
	},
}

// Allocation returns the fixed asset split for a risk profile.
// The second return value is false for unknown profiles.
func Allocation(profile models.RiskProfile) (models.AllocationProfile, bool) {
	a, ok := allocationTable[profile]
	return a, ok
}
