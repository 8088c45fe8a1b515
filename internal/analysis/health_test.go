package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

func vol(v float64) *float64 {
	return &v
}

func TestPortfolioHealthNoHoldings(t *testing.T) {
	tests := []struct {
		name     string
		holdings []models.HoldingSnapshot
	}{
		{"empty list", nil},
		{"fully liquidated", []models.HoldingSnapshot{
			{Ticker: "INFY", CurrentValue: 0},
			{Ticker: "TCS", CurrentValue: 0},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := PortfolioHealth(tt.holdings)

			assert.Equal(t, models.GradeD, report.Grade)
			assert.Equal(t, 0, report.DiversificationScore)
			assert.Equal(t, "No holdings", report.ConcentrationRisk)
			assert.Equal(t, models.VolatilityLow, report.VolatilityRating)
			require.Len(t, report.Suggestions, 1)
			assert.Contains(t, report.Suggestions[0], "Start building")
		})
	}
}

func TestPortfolioHealthSingleHolding(t *testing.T) {
	report := PortfolioHealth([]models.HoldingSnapshot{
		{Ticker: "RELIANCE", CurrentValue: 50000},
	})

	// Single holding is never diversified, regardless of the raw formula
	assert.Equal(t, 0, report.DiversificationScore)
	assert.Equal(t, "High — more than 50% in one stock", report.ConcentrationRisk)
	assert.Equal(t, models.GradeD, report.Grade)

	require.NotEmpty(t, report.Suggestions)
	assert.Contains(t, report.Suggestions[0], "RELIANCE")
	assert.Contains(t, report.Suggestions[0], "100%")
}

func TestPortfolioHealthEqualSplit(t *testing.T) {
	report := PortfolioHealth([]models.HoldingSnapshot{
		{Ticker: "INFY", CurrentValue: 25000},
		{Ticker: "TCS", CurrentValue: 25000},
	})

	// Two equal weights hit the Herfindahl minimum for n=2, but a 50%
	// position still lands in the Medium concentration bucket
	assert.Equal(t, 100, report.DiversificationScore)
	assert.Equal(t, "Medium — over 30% in one stock", report.ConcentrationRisk)
	assert.Equal(t, models.VolatilityMedium, report.VolatilityRating)
	assert.Equal(t, models.GradeA, report.Grade)

	// Rebalancing advisory plus the add-more advisory for fewer than 3 holdings
	require.Len(t, report.Suggestions, 2)
	assert.Contains(t, report.Suggestions[0], "rebalancing")
	assert.Contains(t, report.Suggestions[1], "adding more stocks")
}

func TestPortfolioHealthLowConcentration(t *testing.T) {
	report := PortfolioHealth([]models.HoldingSnapshot{
		{Ticker: "HDFC", CurrentValue: 25000},
		{Ticker: "INFY", CurrentValue: 25000},
		{Ticker: "TCS", CurrentValue: 25000},
		{Ticker: "ITC", CurrentValue: 25000},
	})

	// Max weight 25% stays under every concentration threshold
	assert.Equal(t, 100, report.DiversificationScore)
	assert.Equal(t, "Low", report.ConcentrationRisk)
	assert.Equal(t, models.GradeA, report.Grade)
	require.Len(t, report.Suggestions, 1)
	assert.Contains(t, report.Suggestions[0], "well-balanced")
}

func TestPortfolioHealthMediumConcentration(t *testing.T) {
	report := PortfolioHealth([]models.HoldingSnapshot{
		{Ticker: "HDFC", CurrentValue: 40000},
		{Ticker: "INFY", CurrentValue: 30000},
		{Ticker: "TCS", CurrentValue: 30000},
	})

	assert.Equal(t, "Medium — over 30% in one stock", report.ConcentrationRisk)
	assert.Contains(t, report.Suggestions[0], "rebalancing")
}

func TestPortfolioHealthVolatilityBuckets(t *testing.T) {
	base := []models.HoldingSnapshot{
		{Ticker: "A", CurrentValue: 1000},
		{Ticker: "B", CurrentValue: 1000},
		{Ticker: "C", CurrentValue: 1000},
		{Ticker: "D", CurrentValue: 1000},
	}

	t.Run("low volatility", func(t *testing.T) {
		holdings := make([]models.HoldingSnapshot, len(base))
		copy(holdings, base)
		for i := range holdings {
			holdings[i].Volatility = vol(10)
		}
		report := PortfolioHealth(holdings)
		assert.Equal(t, models.VolatilityLow, report.VolatilityRating)
		assert.Equal(t, models.GradeA, report.Grade)
	})

	t.Run("missing volatility defaults to medium", func(t *testing.T) {
		report := PortfolioHealth(base)
		assert.Equal(t, models.VolatilityMedium, report.VolatilityRating)
	})

	t.Run("high volatility adds suggestion", func(t *testing.T) {
		holdings := make([]models.HoldingSnapshot, len(base))
		copy(holdings, base)
		for i := range holdings {
			holdings[i].Volatility = vol(45)
		}
		report := PortfolioHealth(holdings)
		assert.Equal(t, models.VolatilityHigh, report.VolatilityRating)

		found := false
		for _, s := range report.Suggestions {
			if s == "Your portfolio has high volatility. Consider adding some stable, low-beta stocks." {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestPortfolioHealthManyHoldings(t *testing.T) {
	holdings := make([]models.HoldingSnapshot, 16)
	for i := range holdings {
		holdings[i] = models.HoldingSnapshot{Ticker: "T", CurrentValue: 1000}
	}

	report := PortfolioHealth(holdings)

	found := false
	for _, s := range report.Suggestions {
		if s == "You have many holdings. Consider consolidating into your highest-conviction picks." {
			found = true
		}
	}
	assert.True(t, found)
}

func TestPortfolioHealthWellBalanced(t *testing.T) {
	holdings := make([]models.HoldingSnapshot, 5)
	tickers := []string{"A", "B", "C", "D", "E"}
	for i := range holdings {
		holdings[i] = models.HoldingSnapshot{Ticker: tickers[i], CurrentValue: 10000, Volatility: vol(18)}
	}

	report := PortfolioHealth(holdings)

	require.Len(t, report.Suggestions, 1)
	assert.Contains(t, report.Suggestions[0], "well-balanced")
	assert.Equal(t, models.GradeA, report.Grade)
}

func TestHealthGrade(t *testing.T) {
	tests := []struct {
		name            string
		diversification int
		maxWeight       float64
		count           int
		rating          models.VolatilityRating
		expected        models.Grade
	}{
		{"diversified calm portfolio", 100, 0.2, 5, models.VolatilityLow, models.GradeA},
		{"composite exactly at A threshold", 45, 0.2, 4, models.VolatilityMedium, models.GradeA},
		{"mid-range portfolio", 40, 0.4, 5, models.VolatilityMedium, models.GradeB},
		{"concentrated volatile portfolio", 30, 0.6, 2, models.VolatilityHigh, models.GradeD},
		{"composite exactly at C threshold", 45, 0.6, 2, models.VolatilityMedium, models.GradeC},
		{"worst case", 0, 1.0, 1, models.VolatilityHigh, models.GradeD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grade := healthGrade(tt.diversification, tt.maxWeight, tt.count, tt.rating)
			assert.Equal(t, tt.expected, grade)
		})
	}
}
