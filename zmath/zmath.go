package zmath

import "math"

// RuleOfThree solves isThis/ifThis = x/thenThat for x.
// Division by zero is not checked, giving Inf or NaN.
func RuleOfThree(ifThis, isThis, thenThat float64) float64 {
	return isThis * thenThat / ifThis
}

// Percent returns toCalc as a percentage of total, 100 * toCalc / total.
func Percent(toCalc, total float64) float64 {
	return RuleOfThree(total, 100, toCalc)
}

// PercentOrZero is Percent, but 0 when total is 0.
func PercentOrZero(toCalc, total float64) float64 {
	if total == 0 {
		return 0
	}
	return Percent(toCalc, total)
}

// Widened returns r with Min floored and Max ceiled to whole numbers.
func (r Range[N]) Widened() Range[N] {
	if !r.Valid {
		return r
	}
	r.Min = N(math.Floor(float64(r.Min)))
	r.Max = N(math.Ceil(float64(r.Max)))
	return r
}
