// Package advisor derives trade signals and projections for holdings
package advisor

import (
	"context"
	"fmt"

	"github.com/Fazlur4471/portfolio-tracker/internal/analysis"
	"github.com/Fazlur4471/portfolio-tracker/internal/common"
	"github.com/Fazlur4471/portfolio-tracker/internal/interfaces"
	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

// Compile-time interface check
var _ interfaces.AdvisorService = (*Service)(nil)

// Service implements AdvisorService
type Service struct {
	portfolio interfaces.PortfolioService
	market    interfaces.MarketClient
	logger    *common.Logger
}

// NewService creates a new advisor service
func NewService(portfolio interfaces.PortfolioService, market interfaces.MarketClient, logger *common.Logger) *Service {
	return &Service{
		portfolio: portfolio,
		market:    market,
		logger:    logger,
	}
}

// Analyze computes the full technical picture for one position: moving
// averages, momentum, trade signal, growth estimate and projections over
// one year of history.
func (s *Service) Analyze(ctx context.Context, ticker string, quantity, invested float64) (*models.StockAnalysis, error) {
	history, err := s.market.GetHistory(ctx, ticker, "1y")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history for %s: %w", ticker, err)
	}

	closes := history.Closes()
	if len(closes) == 0 {
		return nil, fmt.Errorf("no price history for %s", ticker)
	}

	sma50 := analysis.SMASeries(closes, 50)
	sma200 := analysis.SMASeries(closes, 200)
	rsi := analysis.RSI(closes, analysis.DefaultRSIPeriod)
	volatility := analysis.Volatility(closes)

	// Live quote wins; last close is the fallback
	currentPrice := closes[len(closes)-1]
	if quote, err := s.market.GetQuote(ctx, ticker); err == nil && quote.Price > 0 {
		currentPrice = quote.Price
	} else if err != nil {
		s.logger.Warn().Str("ticker", ticker).Err(err).Msg("Quote fetch failed, using last close")
	}

	in := analysis.ClassifierInput{
		SMA50:  sma50[len(sma50)-1],
		SMA200: sma200[len(sma200)-1],
		RSI:    rsi,
		Price:  currentPrice,
	}
	if len(closes) > 1 {
		in.SMA50Prev = sma50[len(sma50)-2]
		in.SMA200Prev = sma200[len(sma200)-2]
	}
	signal := analysis.Classify(in)

	// Growth rate from the series endpoints over the one-year window
	cagr := analysis.CAGR(closes[0], closes[len(closes)-1], 1)

	return &models.StockAnalysis{
		Ticker:         ticker,
		Name:           history.Name,
		CurrentPrice:   currentPrice,
		Quantity:       quantity,
		Invested:       invested,
		CurrentValue:   quantity * currentPrice,
		Signal:         signal.Signal,
		SignalStrength: signal.Strength,
		SignalReason:   signal.Reason,
		SMA50:          in.SMA50,
		SMA200:         in.SMA200,
		RSI:            rsi,
		CAGR:           cagr,
		Volatility:     volatility,
		Projection1M:   analysis.ProjectPrice(currentPrice, cagr, 1),
		Projection6M:   analysis.ProjectPrice(currentPrice, cagr, 6),
		Projection1Y:   analysis.ProjectPrice(currentPrice, cagr, 12),
	}, nil
}

// Review analyzes every open position and scores the portfolio. Tickers
// whose market data cannot be fetched are skipped, not fatal.
func (s *Service) Review(ctx context.Context) (*models.AdvisorReview, error) {
	holdings, err := s.portfolio.Holdings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load holdings: %w", err)
	}

	review := &models.AdvisorReview{
		Stocks: make([]models.StockAnalysis, 0, len(holdings)),
	}

	snapshots := make([]models.HoldingSnapshot, 0, len(holdings))
	for _, h := range holdings {
		stock, err := s.Analyze(ctx, h.Ticker, h.Quantity, h.Invested)
		if err != nil {
			s.logger.Warn().Str("ticker", h.Ticker).Err(err).Msg("Analysis skipped")
			continue
		}
		review.Stocks = append(review.Stocks, *stock)
		// Zero volatility means the series was too short to measure;
		// leave it unset so the health scorer applies its default
		var volatility *float64
		if stock.Volatility > 0 {
			vol := stock.Volatility
			volatility = &vol
		}
		snapshots = append(snapshots, models.HoldingSnapshot{
			Ticker:       stock.Ticker,
			CurrentValue: stock.CurrentValue,
			Volatility:   volatility,
		})
	}

	health := analysis.PortfolioHealth(snapshots)
	review.Health = &health

	s.logger.Info().Int("holdings", len(holdings)).Int("analyzed", len(review.Stocks)).Msg("Advisor review complete")
	return review, nil
}
