package server

import (
	"net/http"

	"github.com/Fazlur4471/portfolio-tracker/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Portfolio ledger and derived views
	mux.HandleFunc("/api/portfolio/holdings", s.handleHoldings)
	mux.HandleFunc("/api/portfolio/health", s.handlePortfolioHealth)
	mux.HandleFunc("/api/portfolio", s.handlePortfolio)

	// Advisor
	mux.HandleFunc("/api/advisor/review", s.handleAdvisorReview)

	// Market data
	mux.HandleFunc("/api/market/quote/", s.handleMarketQuote)
	mux.HandleFunc("/api/market/historical/", s.handleMarketHistorical)

	// Planner
	mux.HandleFunc("/api/planner/sip/chart", s.handleSIPChart)
	mux.HandleFunc("/api/planner/sip", s.handleSIP)
	mux.HandleFunc("/api/planner/fd", s.handleFD)
	mux.HandleFunc("/api/planner/allocation/", s.handleAllocation)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.Build,
		"commit":  common.GitCommit,
	})
}
