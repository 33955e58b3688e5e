package amortization

import (
	"fmt"
	"math"

	"github.com/cloud-ru/amortization-go/pkg/utils"
)

// ConvertAnnualEffectiveToPeriodicRate переводит годовую эффективную ставку (в процентах)
// в эффективную ставку за подпериод
func ConvertAnnualEffectiveToPeriodicRate(annualRatePercent float64, periodsPerYear int) float64 {
	return math.Pow(1.0+annualRatePercent/100.0, 1.0/float64(periodsPerYear)) - 1.0
}

// ComputeFixedInstallment рассчитывает фиксированный платеж (французская схема)
func ComputeFixedInstallment(principal, periodicRate float64, termPeriods int) (float64, error) {
	if termPeriods < 1 {
		return 0, fmt.Errorf("число периодов должно быть ≥ 1, получено %d: %w", termPeriods, ErrInvalidInput)
	}
	if principal < 0 {
		return 0, fmt.Errorf("сумма кредита не может быть отрицательной: %w", ErrInvalidInput)
	}

	P := principal
	r := periodicRate
	n := float64(termPeriods)

	if r == 0.0 {
		return P / n, nil
	}
	return P * r / (1.0 - math.Pow(1.0+r, -n)), nil
}

// BuildSchedule строит полный график из termPeriods+1 строк.
//
// Если расчетная часть основного долга превышает остаток, она ограничивается
// остатком, а платеж периода пересчитывается как проценты плюс остаток.
// Последний период всегда гасит остаток целиком, поэтому итоговый остаток ровно 0.
func BuildSchedule(principal, periodicRate float64, termPeriods int, installment float64) []ScheduleRow {
	n := termPeriods
	if n < 0 {
		n = 0
	}
	schedule := make([]ScheduleRow, 0, n+1)
	schedule = append(schedule, ScheduleRow{
		Period:         0,
		OpeningBalance: principal,
		ClosingBalance: principal,
	})

	remaining := principal
	for m := 1; m <= n; m++ {
		interest := remaining * periodicRate
		principalComponent := installment - interest
		payment := installment

		if principalComponent > remaining || m == n {
			principalComponent = remaining
			payment = interest + principalComponent
		}
		if principalComponent < 0 {
			// процент превышает платеж: долг не гасится, но и не растет в графике
			principalComponent = 0
			payment = interest
		}

		closing := remaining - principalComponent
		schedule = append(schedule, ScheduleRow{
			Period:           m,
			OpeningBalance:   remaining,
			Installment:      payment,
			InterestPortion:  interest,
			PrincipalPortion: principalComponent,
			ClosingBalance:   closing,
		})
		remaining = closing
	}

	return schedule
}

// Summarize суммирует платежи и проценты по графику
func Summarize(schedule []ScheduleRow) Totals {
	var totals Totals
	for _, row := range schedule {
		totals.TotalPaid += row.Installment
		totals.TotalInterest += row.InterestPortion
	}
	return totals
}

// Compute валидирует параметры и рассчитывает ставку, платеж, график и итоги
func Compute(params LoanParameters) (*Amortization, error) {
	if params.Principal < 0 || !utils.IsFinite(params.Principal) {
		return nil, fmt.Errorf("principal: сумма должна быть неотрицательным конечным числом: %w", ErrInvalidInput)
	}
	if params.AnnualEffectiveRate < 0 || !utils.IsFinite(params.AnnualEffectiveRate) {
		return nil, fmt.Errorf("annual_rate_percent: ставка должна быть неотрицательным конечным числом: %w", ErrInvalidInput)
	}
	if params.TermYears < 1 {
		return nil, fmt.Errorf("term_years: срок должен быть ≥ 1: %w", ErrInvalidInput)
	}
	if params.PeriodsPerYear < 0 {
		return nil, fmt.Errorf("periods_per_year: значение должно быть положительным: %w", ErrInvalidInput)
	}

	periodsPerYear := params.periodsPerYear()
	n := params.TermPeriods()
	r := ConvertAnnualEffectiveToPeriodicRate(params.AnnualEffectiveRate, periodsPerYear)

	installment, err := ComputeFixedInstallment(params.Principal, r, n)
	if err != nil {
		return nil, err
	}

	schedule := BuildSchedule(params.Principal, r, n, installment)

	params.PeriodsPerYear = periodsPerYear
	return &Amortization{
		Parameters:   params,
		PeriodicRate: r,
		Installment:  installment,
		Schedule:     schedule,
		Totals:       Summarize(schedule),
	}, nil
}
