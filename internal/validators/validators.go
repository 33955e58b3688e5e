package validators

import (
	"fmt"

	"github.com/cloud-ru/amortization-go/internal/amortization"
	"github.com/cloud-ru/amortization-go/internal/config"
	"github.com/cloud-ru/amortization-go/pkg/utils"
)

// ValidateNumber проверяет, что число конечное и лежит в [minInclusive; maxInclusive]
func ValidateNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом: %w", name, amortization.ErrInvalidInput)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %g: %w", name, minInclusive, amortization.ErrInvalidInput)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%g): %w", name, maxInclusive, amortization.ErrInvalidInput)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]: %w",
			name, minInclusive, maxInclusive, amortization.ErrInvalidInput)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита: строго положительная
func CheckPrincipal(cfg *config.Config, principal float64) error {
	if err := ValidateNumber("principal", principal, 0, cfg.MaxPrincipal); err != nil {
		return err
	}
	if principal == 0 {
		return fmt.Errorf("principal: сумма кредита должна быть положительной: %w", amortization.ErrInvalidInput)
	}
	return nil
}

// CheckRate проверяет годовую эффективную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidateNumber("annual_rate_percent", rate, 0.0, cfg.MaxRate)
}

// CheckTermYears проверяет срок в годах
func CheckTermYears(cfg *config.Config, years int) error {
	return ValidateIntRange("term_years", years, 1, cfg.MaxTermYears)
}

// CheckPeriodsPerYear проверяет число платежей в году
func CheckPeriodsPerYear(periodsPerYear int) error {
	return ValidateIntRange("periods_per_year", periodsPerYear, 1, 365)
}

// CheckLoanParameters проверяет все параметры кредита; первая ошибка прерывает проверку
func CheckLoanParameters(cfg *config.Config, params amortization.LoanParameters) error {
	if err := CheckPrincipal(cfg, params.Principal); err != nil {
		return err
	}
	if err := CheckRate(cfg, params.AnnualEffectiveRate); err != nil {
		return err
	}
	if err := CheckTermYears(cfg, params.TermYears); err != nil {
		return err
	}
	return CheckPeriodsPerYear(params.PeriodsPerYear)
}
