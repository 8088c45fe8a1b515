package models

// Signal is a discrete trade recommendation
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// SignalResult is the classifier's output for one instrument
type SignalResult struct {
	Signal   Signal `json:"signal"`
	Strength int    `json:"strength"` // 0-100
	Reason   string `json:"reason"`
}

// Grade is a portfolio health letter grade
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// VolatilityRating buckets average portfolio volatility
type VolatilityRating string

const (
	VolatilityLow    VolatilityRating = "Low"
	VolatilityMedium VolatilityRating = "Medium"
	VolatilityHigh   VolatilityRating = "High"
)

// HealthReport summarizes portfolio concentration and volatility
type HealthReport struct {
	Grade                Grade            `json:"grade"`
	DiversificationScore int              `json:"diversification_score"` // 0-100
	ConcentrationRisk    string           `json:"concentration_risk"`
	VolatilityRating     VolatilityRating `json:"volatility_rating"`
	Suggestions          []string         `json:"suggestions"`
}

// StockAnalysis is the full per-ticker advisor output
type StockAnalysis struct {
	Ticker         string  `json:"ticker"`
	Name           string  `json:"name"`
	CurrentPrice   float64 `json:"current_price"`
	Quantity       float64 `json:"quantity"`
	Invested       float64 `json:"invested"`
	CurrentValue   float64 `json:"current_value"`
	Signal         Signal  `json:"signal"`
	SignalStrength int     `json:"signal_strength"`
	SignalReason   string  `json:"signal_reason"`
	SMA50          float64 `json:"sma50"`
	SMA200         float64 `json:"sma200"`
	RSI            float64 `json:"rsi"`
	CAGR           float64 `json:"cagr"`
	Volatility     float64 `json:"volatility"`
	Projection1M   float64 `json:"projection_1m"`
	Projection6M   float64 `json:"projection_6m"`
	Projection1Y   float64 `json:"projection_1y"`
}

// AdvisorReview bundles per-ticker analysis with portfolio health
type AdvisorReview struct {
	Stocks []StockAnalysis `json:"stocks"`
	Health *HealthReport   `json:"health"`
}
