package server

import (
	"fmt"
	"net/http"

	"github.com/Fazlur4471/portfolio-tracker/internal/analysis"
)

func (s *Server) handleMarketQuote(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker := PathParam(r, "/api/market/quote/", "")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "ticker is required in path")
		return
	}

	quote, err := s.app.MarketClient.GetQuote(r.Context(), ticker)
	if err != nil {
		WriteError(w, http.StatusBadGateway, fmt.Sprintf("Error fetching quote: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, quote)
}

// handleMarketHistorical serves the price series with moving averages
// computed over the same window, so chart clients get aligned arrays.
func (s *Server) handleMarketHistorical(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker := PathParam(r, "/api/market/historical/", "")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "ticker is required in path")
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = "1y"
	}

	history, err := s.app.MarketClient.GetHistory(r.Context(), ticker, period)
	if err != nil {
		WriteError(w, http.StatusBadGateway, fmt.Sprintf("Error fetching history: %v", err))
		return
	}

	closes := history.Closes()

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ticker": history.Ticker,
		"name":   history.Name,
		"points": history.Points,
		"sma50":  analysis.SMASeries(closes, 50),
		"sma200": analysis.SMASeries(closes, 200),
	})
}
