package server

import (
	"fmt"
	"net/http"
)

func (s *Server) handleAdvisorReview(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	review, err := s.app.AdvisorService.Review(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Review error: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, review)
}
