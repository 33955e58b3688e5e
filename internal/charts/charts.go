package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cloud-ru/amortization-go/internal/amortization"
	"github.com/cloud-ru/amortization-go/pkg/utils"
)

// Render пишет HTML-страницу с тремя графиками: остаток долга, структура
// платежа (проценты и основной долг) и сам платеж начиная с первого периода
func Render(w io.Writer, schedule []amortization.ScheduleRow) error {
	page := components.NewPage()
	page.AddCharts(
		balanceChart(schedule),
		compositionChart(schedule),
		installmentChart(schedule),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	return nil
}

func balanceChart(schedule []amortization.ScheduleRow) *charts.Line {
	periods := make([]int, 0, len(schedule))
	balance := make([]opts.LineData, 0, len(schedule))
	for _, row := range schedule {
		periods = append(periods, row.Period)
		balance = append(balance, opts.LineData{Value: utils.Round2(row.ClosingBalance)})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Saldo Final por Mes"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	line.SetXAxis(periods).AddSeries("Saldo Final", balance)
	return line
}

func compositionChart(schedule []amortization.ScheduleRow) *charts.Line {
	periods := make([]int, 0, len(schedule))
	interest := make([]opts.LineData, 0, len(schedule))
	principal := make([]opts.LineData, 0, len(schedule))
	for _, row := range schedule {
		periods = append(periods, row.Period)
		interest = append(interest, opts.LineData{Value: utils.Round2(row.InterestPortion)})
		principal = append(principal, opts.LineData{Value: utils.Round2(row.PrincipalPortion)})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Composición de la Cuota"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Right: "10%"}),
	)
	line.SetXAxis(periods).
		AddSeries("Interés", interest).
		AddSeries("Abono a Capital", principal).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{Stack: "cuota"}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.4}),
		)
	return line
}

func installmentChart(schedule []amortization.ScheduleRow) *charts.Line {
	periods := make([]int, 0, len(schedule))
	installments := make([]opts.LineData, 0, len(schedule))
	for _, row := range schedule {
		if row.Period < 1 {
			continue
		}
		periods = append(periods, row.Period)
		installments = append(installments, opts.LineData{Value: utils.Round2(row.Installment)})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Cuota por Mes"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	line.SetXAxis(periods).AddSeries("Cuota", installments)
	return line
}
