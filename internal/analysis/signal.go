package analysis

import (
	"fmt"

	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

// ClassifierInput holds the indicator values the signal classifier consumes
type ClassifierInput struct {
	SMA50      float64
	SMA200     float64
	SMA50Prev  float64
	SMA200Prev float64
	RSI        float64
	Price      float64
}

// signalRule is one weighted condition in the classifier.
// Rules are evaluated in a fixed order; the first rule with a non-empty
// text that held supplies the reported reason.
type signalRule struct {
	hit   bool
	delta int
	text  string
}

// Classify combines crossover, trend, price position and momentum into a
// trade recommendation via an additive scoring model. Score >= 25 is BUY,
// <= -25 is SELL, anything between is HOLD. Strength is the absolute
// score capped at 100.
func Classify(in ClassifierInput) models.SignalResult {
	bullishCross := in.SMA50Prev <= in.SMA200Prev && in.SMA50 > in.SMA200
	bearishCross := in.SMA50Prev >= in.SMA200Prev && in.SMA50 < in.SMA200

	// The price-position checks are deliberately independent: with
	// SMA50 < price-range < SMA200 both can hold and offset each other.
	rules := []signalRule{
		{bullishCross, 40, "Golden Cross detected (50-MA crossed above 200-MA)"},
		{bearishCross, -40, "Death Cross detected (50-MA crossed below 200-MA)"},
		{in.SMA50 > in.SMA200, 20, "Bullish trend (50-MA above 200-MA)"},
		{in.SMA50 < in.SMA200, -20, "Bearish trend (50-MA below 200-MA)"},
		{in.Price > in.SMA50 && in.SMA50 > 0, 10, "Price trading above 50-day average"},
		{in.Price < in.SMA200 && in.SMA200 > 0, -10, "Price trading below 200-day average"},
		{in.RSI < 30, 15, fmt.Sprintf("Oversold (RSI: %.0f)", in.RSI)},
		{in.RSI > 70, -15, fmt.Sprintf("Overbought (RSI: %.0f)", in.RSI)},
		{in.RSI >= 30 && in.RSI <= 70, 0, fmt.Sprintf("RSI neutral at %.0f", in.RSI)},
	}

	score := 0
	reason := ""
	for _, r := range rules {
		if !r.hit {
			continue
		}
		score += r.delta
		if reason == "" && r.text != "" {
			reason = r.text
		}
	}

	if reason == "" {
		reason = "No strong signals detected"
	}

	signal := models.SignalHold
	if score >= 25 {
		signal = models.SignalBuy
	} else if score <= -25 {
		signal = models.SignalSell
	}

	strength := score
	if strength < 0 {
		strength = -strength
	}
	if strength > 100 {
		strength = 100
	}

	return models.SignalResult{
		Signal:   signal,
		Strength: strength,
		Reason:   reason,
	}
}
