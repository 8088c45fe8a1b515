package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Fazlur4471/portfolio-tracker/internal/analysis"
	"github.com/Fazlur4471/portfolio-tracker/internal/app"
	"github.com/Fazlur4471/portfolio-tracker/internal/common"
	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

// --- Test fakes ---

type fakePortfolioService struct {
	transactions []models.Transaction
	holdings     []models.Holding
	health       *models.HealthReport
	addErr       error
	deleteErr    error
}

func (f *fakePortfolioService) AddTransaction(_ context.Context, tx *models.Transaction) error {
	if f.addErr != nil {
		return f.addErr
	}
	if tx.ID == "" {
		tx.ID = "tx-1"
	}
	tx.CreatedAt = time.Now().UTC()
	f.transactions = append(f.transactions, *tx)
	return nil
}

func (f *fakePortfolioService) DeleteTransaction(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, tx := range f.transactions {
		if tx.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction '%s' not found", id)
}

func (f *fakePortfolioService) ListTransactions(context.Context) ([]models.Transaction, error) {
	return f.transactions, nil
}

func (f *fakePortfolioService) Holdings(context.Context) ([]models.Holding, error) {
	return f.holdings, nil
}

func (f *fakePortfolioService) Snapshot(context.Context) ([]models.HoldingSnapshot, error) {
	return nil, nil
}

func (f *fakePortfolioService) Health(context.Context) (*models.HealthReport, error) {
	return f.health, nil
}

type fakeAdvisorService struct {
	review *models.AdvisorReview
	err    error
}

func (f *fakeAdvisorService) Analyze(context.Context, string, float64, float64) (*models.StockAnalysis, error) {
	return nil, f.err
}

func (f *fakeAdvisorService) Review(context.Context) (*models.AdvisorReview, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.review, nil
}

type fakeMarketClient struct {
	quotes    map[string]*models.Quote
	histories map[string]*models.History
}

func (f *fakeMarketClient) GetQuote(_ context.Context, ticker string) (*models.Quote, error) {
	if q, ok := f.quotes[ticker]; ok {
		return q, nil
	}
	return nil, fmt.Errorf("no quote for %s", ticker)
}

func (f *fakeMarketClient) GetHistory(_ context.Context, ticker string, _ string) (*models.History, error) {
	if h, ok := f.histories[ticker]; ok {
		return h, nil
	}
	return nil, fmt.Errorf("no history for %s", ticker)
}

type fakePlannerService struct{}

func (f *fakePlannerService) SIP(monthly, rate, years float64) models.SIPResult {
	return analysis.SIP(monthly, rate, years)
}

func (f *fakePlannerService) FD(principal, rate, years float64) models.FDResult {
	return analysis.FD(principal, rate, years)
}

func (f *fakePlannerService) Allocation(profile models.RiskProfile) (models.AllocationProfile, bool) {
	return analysis.Allocation(profile)
}

func (f *fakePlannerService) SIPChart(monthly, rate, years float64) ([]byte, error) {
	if years <= 0 {
		return nil, fmt.Errorf("need at least 2 data points")
	}
	return []byte("\x89PNG\r\n\x1a\nfake"), nil
}

// --- Test harness ---

type testDeps struct {
	portfolio *fakePortfolioService
	advisor   *fakeAdvisorService
	market    *fakeMarketClient
}

func newTestServer(t *testing.T) (*Server, *testDeps) {
	t.Helper()

	deps := &testDeps{
		portfolio: &fakePortfolioService{},
		advisor:   &fakeAdvisorService{},
		market: &fakeMarketClient{
			quotes:    map[string]*models.Quote{},
			histories: map[string]*models.History{},
		},
	}

	a := &app.App{
		Config:           common.NewDefaultConfig(),
		Logger:           common.NewSilentLogger(),
		MarketClient:     deps.market,
		PortfolioService: deps.portfolio,
		AdvisorService:   deps.advisor,
		PlannerService:   &fakePlannerService{},
	}

	return NewServer(a), deps
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func decodeBody(t *testing.T, body io.Reader, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(v))
}
