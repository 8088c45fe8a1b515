package models

// SIPPoint is one sample of the systematic-investment growth series
type SIPPoint struct {
	Month    int     `json:"month"`
	Invested float64 `json:"invested"`
	Value    float64 `json:"value"`
}

// SIPResult holds systematic-investment projection totals and series
type SIPResult struct {
	TotalInvested  float64    `json:"total_invested"`
	FutureValue    float64    `json:"future_value"`
	WealthGained   float64    `json:"wealth_gained"`
	ReturnMultiple float64    `json:"return_multiple"`
	Series         []SIPPoint `json:"series"`
}

// FDResult holds fixed-deposit maturity figures under quarterly compounding
type FDResult struct {
	Principal       float64 `json:"principal"`
	MaturityAmount  float64 `json:"maturity_amount"`
	InterestEarned  float64 `json:"interest_earned"`
	EffectiveReturn float64 `json:"effective_return"` // total return percent
}

// RiskProfile identifies an allocation profile
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskBalanced     RiskProfile = "balanced"
	RiskAggressive   RiskProfile = "aggressive"
)

// AllocationProfile is a fixed asset split for a risk profile.
// Equity, Debt, Gold and Liquid are percentages summing to 100.
type AllocationProfile struct {
	Equity      int      `json:"equity"`
	Debt        int      `json:"debt"`
	Gold        int      `json:"gold"`
	Liquid      int      `json:"liquid"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Suggestions []string `json:"suggestions"`
}
