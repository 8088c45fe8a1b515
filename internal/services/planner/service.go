// Package planner exposes the financial planning calculators
package planner

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Fazlur4471/portfolio-tracker/internal/analysis"
	"github.com/Fazlur4471/portfolio-tracker/internal/common"
	"github.com/Fazlur4471/portfolio-tracker/internal/interfaces"
	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

// Compile-time interface check
var _ interfaces.PlannerService = (*Service)(nil)

// Service implements PlannerService
type Service struct {
	logger *common.Logger
}

// NewService creates a new planner service
func NewService(logger *common.Logger) *Service {
	return &Service{logger: logger}
}

// SIP projects recurring monthly investment growth
func (s *Service) SIP(monthly, annualRatePct, years float64) models.SIPResult {
	return analysis.SIP(monthly, annualRatePct, years)
}

// FD computes fixed-deposit maturity under quarterly compounding
func (s *Service) FD(principal, annualRatePct, years float64) models.FDResult {
	return analysis.FD(principal, annualRatePct, years)
}

// Allocation returns the asset split for a risk profile
func (s *Service) Allocation(profile models.RiskProfile) (models.AllocationProfile, bool) {
	return analysis.Allocation(profile)
}

// SIPChart renders the SIP growth series as a PNG line chart.
// Two series: compounded value (blue solid) and amount invested
// (gray dashed).
func (s *Service) SIPChart(monthly, annualRatePct, years float64) ([]byte, error) {
	result := analysis.SIP(monthly, annualRatePct, years)
	if len(result.Series) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(result.Series))
	}

	xValues := make([]float64, len(result.Series))
	valueY := make([]float64, len(result.Series))
	investedY := make([]float64, len(result.Series))

	for i, p := range result.Series {
		xValues[i] = float64(p.Month)
		valueY[i] = p.Value
		investedY[i] = p.Invested
	}

	valueSeries := chart.ContinuousSeries{
		Name: "Projected Value",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: valueY,
	}

	investedSeries := chart.ContinuousSeries{
		Name: "Invested",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"), // gray-400
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: investedY,
	}

	graph := chart.Chart{
		Title:  "SIP Growth",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0fm", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0fk", f/1000)
				}
				return ""
			},
		},
		Series: []chart.Series{
			valueSeries,
			investedSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
