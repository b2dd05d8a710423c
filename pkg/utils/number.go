package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para o centavo mais próximo
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ToMinorUnits converte um valor monetário em centavos, como a Graph API espera
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinorUnits converte centavos no valor exibido, sem frações de centavo
func FromMinorUnits(minor float64) float64 {
	return RoundWithTwoDecimalPlace(minor / 100)
}

// SafeDivide retorna 0 quando o divisor é 0
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}
