package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/cloud-ru/amortization-go/internal/amortization"
	"github.com/cloud-ru/amortization-go/internal/config"
	"github.com/cloud-ru/amortization-go/internal/metrics"
)

func newTestCalculator() *Calculator {
	cfg := &config.Config{
		MaxPrincipal:   1e12,
		MaxRate:        200,
		MaxTermYears:   50,
		PeriodsPerYear: 12,
	}
	return NewCalculator(cfg, noop.NewTracerProvider().Tracer("test"), zap.NewNop())
}

func TestCalculatorCompute(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name      string
		params    amortization.LoanParameters
		wantError bool
		wantRows  int
	}{
		{
			name:     "default periods per year",
			params:   amortization.LoanParameters{Principal: 10000000, AnnualEffectiveRate: 12, TermYears: 5},
			wantRows: 61,
		},
		{
			name:     "explicit quarterly",
			params:   amortization.LoanParameters{Principal: 10000, AnnualEffectiveRate: 8, TermYears: 2, PeriodsPerYear: 4},
			wantRows: 9,
		},
		{
			name:      "zero principal",
			params:    amortization.LoanParameters{Principal: 0, AnnualEffectiveRate: 12, TermYears: 5},
			wantError: true,
		},
		{
			name:      "term above limit",
			params:    amortization.LoanParameters{Principal: 1000, AnnualEffectiveRate: 12, TermYears: 51},
			wantError: true,
		},
		{
			name:      "negative rate",
			params:    amortization.LoanParameters{Principal: 1000, AnnualEffectiveRate: -0.5, TermYears: 1},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Compute(context.Background(), "test_compute", tt.params)
			if (err != nil) != tt.wantError {
				t.Fatalf("Compute() error = %v, wantError %v", err, tt.wantError)
			}
			if tt.wantError {
				if !errors.Is(err, amortization.ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if len(result.Schedule) != tt.wantRows {
				t.Errorf("expected %d rows, got %d", tt.wantRows, len(result.Schedule))
			}
			if result.Schedule[len(result.Schedule)-1].ClosingBalance != 0 {
				t.Error("expected final closing balance 0")
			}
		})
	}
}

func TestCalculatorMetrics(t *testing.T) {
	calc := newTestCalculator()
	const operation = "metrics_probe"

	before := testutil.ToFloat64(metrics.Calculations.WithLabelValues(operation, "success"))
	if _, err := calc.Compute(context.Background(), operation, amortization.LoanParameters{Principal: 1200, TermYears: 1}); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := testutil.ToFloat64(metrics.Calculations.WithLabelValues(operation, "success")); got != before+1 {
		t.Errorf("expected success counter %g, got %g", before+1, got)
	}

	beforeErr := testutil.ToFloat64(metrics.CalculationErrors.WithLabelValues(operation, "validation"))
	if _, err := calc.Compute(context.Background(), operation, amortization.LoanParameters{Principal: -1, TermYears: 1}); err == nil {
		t.Fatal("expected validation error")
	}
	if got := testutil.ToFloat64(metrics.CalculationErrors.WithLabelValues(operation, "validation")); got != beforeErr+1 {
		t.Errorf("expected validation error counter %g, got %g", beforeErr+1, got)
	}
}
