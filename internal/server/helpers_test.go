package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathParam(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		prefix string
		suffix string
		want   string
	}{
		{"simple", "/api/market/quote/RELIANCE.NS", "/api/market/quote/", "", "RELIANCE.NS"},
		{"with suffix", "/api/planner/allocation/balanced/extra", "/api/planner/allocation/", "/extra", "balanced"},
		{"trailing segment cut", "/api/market/quote/INFY.NS/more", "/api/market/quote/", "", "INFY.NS"},
		{"wrong prefix", "/api/other/INFY.NS", "/api/market/quote/", "", ""},
		{"empty param", "/api/market/quote/", "/api/market/quote/", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.want, PathParam(r, tt.prefix, tt.suffix))
		})
	}
}

func TestRequireMethod(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/x", nil)
	rec := httptest.NewRecorder()

	assert.False(t, RequireMethod(rec, r, http.MethodGet))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET", rec.Header().Get("Allow"))

	rec = httptest.NewRecorder()
	assert.True(t, RequireMethod(rec, r, http.MethodGet, http.MethodPost))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusBadRequest, "bad input")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"bad input"}`, rec.Body.String())
}
