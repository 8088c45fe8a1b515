package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

// handlePortfolio dispatches ledger operations on /api/portfolio.
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleTransactionList(w, r)
	case http.MethodPost:
		s.handleTransactionAdd(w, r)
	case http.MethodDelete:
		s.handleTransactionDelete(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleTransactionList(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.app.PortfolioService.ListTransactions(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error listing transactions: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": transactions,
	})
}

func (s *Server) handleTransactionAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Ticker       string  `json:"ticker"`
		Quantity     float64 `json:"quantity"`
		AveragePrice float64 `json:"average_price"`
		IsBuy        *bool   `json:"is_buy"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	// Absent is_buy means a buy
	isBuy := true
	if req.IsBuy != nil {
		isBuy = *req.IsBuy
	}

	tx := &models.Transaction{
		Ticker:       req.Ticker,
		Quantity:     req.Quantity,
		AveragePrice: req.AveragePrice,
		IsBuy:        isBuy,
	}

	if err := s.app.PortfolioService.AddTransaction(r.Context(), tx); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Error adding transaction: %v", err))
		return
	}

	WriteJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleTransactionDelete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "id query parameter is required")
		return
	}

	if err := s.app.PortfolioService.DeleteTransaction(r.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		WriteError(w, status, fmt.Sprintf("Error deleting transaction: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (s *Server) handleHoldings(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	holdings, err := s.app.PortfolioService.Holdings(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error computing holdings: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"holdings": holdings,
	})
}

func (s *Server) handlePortfolioHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	report, err := s.app.PortfolioService.Health(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Error scoring portfolio: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, report)
}
