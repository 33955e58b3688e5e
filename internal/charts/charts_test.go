package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cloud-ru/amortization-go/internal/amortization"
)

func TestRender(t *testing.T) {
	result, err := amortization.Compute(amortization.LoanParameters{Principal: 10000000, AnnualEffectiveRate: 12, TermYears: 5})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, result.Schedule); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	html := buf.String()
	for _, want := range []string{"<html", "Saldo Final", "Abono a Capital", "Cuota"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected rendered page to contain %q", want)
		}
	}
}

func TestInstallmentChartSkipsInitialRow(t *testing.T) {
	schedule := []amortization.ScheduleRow{
		{Period: 0, OpeningBalance: 200, ClosingBalance: 200},
		{Period: 1, OpeningBalance: 200, Installment: 100, PrincipalPortion: 100, ClosingBalance: 100},
		{Period: 2, OpeningBalance: 100, Installment: 100, PrincipalPortion: 100, ClosingBalance: 0},
	}

	line := installmentChart(schedule)
	if len(line.MultiSeries) != 1 {
		t.Fatalf("expected one series, got %d", len(line.MultiSeries))
	}
	data, ok := line.MultiSeries[0].Data.([]opts.LineData)
	if !ok {
		t.Fatalf("unexpected series data type %T", line.MultiSeries[0].Data)
	}
	if len(data) != 2 {
		t.Errorf("expected 2 points for periods ≥ 1, got %d", len(data))
	}
}
