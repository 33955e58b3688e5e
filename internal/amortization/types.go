package amortization

import "errors"

// DefaultPeriodsPerYear ежемесячные платежи
const DefaultPeriodsPerYear = 12

// ErrInvalidInput единственная категория ошибок движка: неположительный срок,
// отрицательная сумма или ставка. Проверяется через errors.Is.
var ErrInvalidInput = errors.New("некорректные входные данные")

// LoanParameters входные параметры кредита
type LoanParameters struct {
	Principal           float64 `json:"principal"`
	AnnualEffectiveRate float64 `json:"annual_rate_percent"`
	TermYears           int     `json:"term_years"`
	PeriodsPerYear      int     `json:"periods_per_year,omitempty"`
}

// TermPeriods возвращает общее число платежей
func (p LoanParameters) TermPeriods() int {
	return p.TermYears * p.periodsPerYear()
}

func (p LoanParameters) periodsPerYear() int {
	if p.PeriodsPerYear == 0 {
		return DefaultPeriodsPerYear
	}
	return p.PeriodsPerYear
}

// ScheduleRow одна строка графика платежей. Строка с Period == 0 описывает
// состояние кредита до первого платежа.
type ScheduleRow struct {
	Period           int     `json:"period"`
	OpeningBalance   float64 `json:"opening_balance"`
	Installment      float64 `json:"installment"`
	InterestPortion  float64 `json:"interest_portion"`
	PrincipalPortion float64 `json:"principal_portion"`
	ClosingBalance   float64 `json:"closing_balance"`
}

// Totals сводка по графику
type Totals struct {
	TotalPaid     float64 `json:"total_paid"`
	TotalInterest float64 `json:"total_interest"`
}

// Amortization результат расчета кредита
type Amortization struct {
	Parameters   LoanParameters `json:"parameters"`
	PeriodicRate float64        `json:"periodic_rate"`
	Installment  float64        `json:"installment"`
	Schedule     []ScheduleRow  `json:"schedule"`
	Totals       Totals         `json:"totals"`
}
