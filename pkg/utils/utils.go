package utils

import "math"

// RoundTo округляет число до places знаков после запятой
func RoundTo(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}

// Round2 округляет денежную сумму до копеек
func Round2(value float64) float64 {
	return RoundTo(value, 2)
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}
