package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Calculations счетчик расчетов графика
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "amortization_calculations_total",
			Help: "Общее количество расчетов графика платежей",
		},
		[]string{"operation", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "amortization_calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"operation", "error_type"},
	)

	// SchedulePeriods распределение длины графика
	SchedulePeriods = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "amortization_schedule_periods",
			Help:    "Число периодов в рассчитанном графике",
			Buckets: []float64{12, 24, 60, 120, 240, 360, 600},
		},
	)

	// HTTPRequests вызовы HTTP API
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Вызовы HTTP API",
		},
		[]string{"endpoint", "code"},
	)
)
