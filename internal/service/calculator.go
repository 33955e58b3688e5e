package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/amortization-go/internal/amortization"
	"github.com/cloud-ru/amortization-go/internal/config"
	"github.com/cloud-ru/amortization-go/internal/metrics"
	"github.com/cloud-ru/amortization-go/internal/validators"
)

// Calculator проверяет входные данные и рассчитывает график, оборачивая расчет
// в спан, метрики и лог
type Calculator struct {
	cfg    *config.Config
	tracer trace.Tracer
	logger *zap.Logger
}

// NewCalculator создает Calculator
func NewCalculator(cfg *config.Config, tracer trace.Tracer, logger *zap.Logger) *Calculator {
	return &Calculator{
		cfg:    cfg,
		tracer: tracer,
		logger: logger.Named("calculator"),
	}
}

// Compute рассчитывает график. operation попадает в имя спана и метки метрик.
func (c *Calculator) Compute(ctx context.Context, operation string, params amortization.LoanParameters) (*amortization.Amortization, error) {
	_, span := c.tracer.Start(ctx, operation)
	defer span.End()

	if params.PeriodsPerYear == 0 {
		params.PeriodsPerYear = c.cfg.PeriodsPerYear
	}

	span.SetAttributes(
		attribute.Float64("principal", params.Principal),
		attribute.Float64("annual_rate_percent", params.AnnualEffectiveRate),
		attribute.Int("term_years", params.TermYears),
		attribute.Int("periods_per_year", params.PeriodsPerYear),
	)

	if err := validators.CheckLoanParameters(c.cfg, params); err != nil {
		return nil, c.fail(span, operation, "validation", fmt.Errorf("неверные параметры: %w", err))
	}

	result, err := amortization.Compute(params)
	if err != nil {
		errType := "calculation"
		if errors.Is(err, amortization.ErrInvalidInput) {
			errType = "validation"
		}
		return nil, c.fail(span, operation, errType, fmt.Errorf("ошибка при выполнении расчета: %w", err))
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Float64("periodic_rate", result.PeriodicRate),
		attribute.Float64("installment", result.Installment),
		attribute.Float64("total_paid", result.Totals.TotalPaid),
		attribute.Int("periods", len(result.Schedule)-1),
	)
	metrics.Calculations.WithLabelValues(operation, "success").Inc()
	metrics.SchedulePeriods.Observe(float64(len(result.Schedule) - 1))

	c.logger.Debug("schedule computed",
		zap.String("operation", operation),
		zap.Int("periods", len(result.Schedule)-1),
		zap.Float64("installment", result.Installment),
	)

	return result, nil
}

func (c *Calculator) fail(span trace.Span, operation, errType string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, errType)
	span.SetAttributes(attribute.String("error", errType+"_error"))
	metrics.Calculations.WithLabelValues(operation, errType+"_error").Inc()
	metrics.CalculationErrors.WithLabelValues(operation, errType).Inc()

	c.logger.Warn("calculation rejected",
		zap.String("operation", operation),
		zap.String("error_type", errType),
		zap.Error(err),
	)
	return err
}
