package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

type sipRequest struct {
	Monthly float64 `json:"monthly"`
	Rate    float64 `json:"rate"`
	Years   float64 `json:"years"`
}

func (req *sipRequest) validate() error {
	if req.Monthly <= 0 {
		return fmt.Errorf("monthly must be positive")
	}
	if req.Years <= 0 {
		return fmt.Errorf("years must be positive")
	}
	if req.Rate < 0 {
		return fmt.Errorf("rate must not be negative")
	}
	return nil
}

func (s *Server) handleSIP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req sipRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, s.app.PlannerService.SIP(req.Monthly, req.Rate, req.Years))
}

func (s *Server) handleFD(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Principal float64 `json:"principal"`
		Rate      float64 `json:"rate"`
		Years     float64 `json:"years"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Principal <= 0 {
		WriteError(w, http.StatusBadRequest, "principal must be positive")
		return
	}
	if req.Years <= 0 {
		WriteError(w, http.StatusBadRequest, "years must be positive")
		return
	}

	WriteJSON(w, http.StatusOK, s.app.PlannerService.FD(req.Principal, req.Rate, req.Years))
}

// handleSIPChart serves the growth chart as PNG. Parameters come in as
// query strings so the URL can be dropped straight into an img tag.
func (s *Server) handleSIPChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	req := sipRequest{
		Monthly: queryFloat(q.Get("monthly"), 0),
		Rate:    queryFloat(q.Get("rate"), 12),
		Years:   queryFloat(q.Get("years"), 10),
	}
	if err := req.validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	png, err := s.app.PlannerService.SIPChart(req.Monthly, req.Rate, req.Years)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Chart error: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (s *Server) handleAllocation(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	profile := PathParam(r, "/api/planner/allocation/", "")
	if profile == "" {
		WriteError(w, http.StatusBadRequest, "risk profile is required in path")
		return
	}

	allocation, ok := s.app.PlannerService.Allocation(models.RiskProfile(profile))
	if !ok {
		WriteError(w, http.StatusNotFound, fmt.Sprintf("Unknown risk profile: %s", profile))
		return
	}

	WriteJSON(w, http.StatusOK, allocation)
}

func queryFloat(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return f
}
