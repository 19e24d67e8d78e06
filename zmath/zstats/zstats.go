// Package zstats has reducers over arrays of numbers or records: sum, min/max, domain,
// mean, median, variance, weighted mean/median, percentiles and quartiles.
//
// Every function takes the items and an optional property path resolved with zaccess.
// nil, absent and non-numeric values are ignored. Results that need at least one value
// return a false "got" when there is none. Inputs are never modified.
package zstats

import (
	"math"
	"slices"

	"github.com/torlangballe/zstats/zaccess"
	"github.com/torlangballe/zstats/zmath"
	"gonum.org/v1/gonum/stat"
)

// Stats runs the reducers with a specific Getter; the zero value uses zaccess.Default.
type Stats struct {
	Getter zaccess.Getter
}

var std Stats

func (s Stats) numbers(items []any, property string) []float64 {
	return zaccess.Numbers(items, property, s.Getter)
}

func (s Stats) accumulate(items []any, property string) zmath.Accumulator {
	var a zmath.Accumulator
	a.AddAll(s.numbers(items, property))
	return a
}

func (s Stats) Sum(items []any, property string) float64 {
	a := s.accumulate(items, property)
	return a.Sum
}

func (s Stats) Max(items []any, property string) (float64, bool) {
	r := s.Domain(items, property)
	return r.Max, r.Valid
}

func (s Stats) Min(items []any, property string) (float64, bool) {
	r := s.Domain(items, property)
	return r.Min, r.Valid
}

// Domain returns the min and max; it is not Valid if there are no values.
func (s Stats) Domain(items []any, property string) zmath.RangeF64 {
	a := s.accumulate(items, property)
	return a.Range
}

// Diff returns the absolute difference between max and min.
func (s Stats) Diff(items []any, property string) (float64, bool) {
	r := s.Domain(items, property)
	if !r.Valid {
		return 0, false
	}
	return math.Abs(r.Length()), true
}

func (s Stats) Mean(items []any, property string) (float64, bool) {
	a := s.accumulate(items, property)
	return a.Average()
}

// Median is the middle value, or the average of the two middle values for an even count.
func (s Stats) Median(items []any, property string) (float64, bool) {
	sorted := s.sortedNumbers(items, property)
	n := len(sorted)
	if n == 0 {
		return 0, false
	}
	if n%2 == 1 {
		return sorted[n/2], true
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2, true
}

// Variance is the sample variance (divided by n-1); false for fewer than 2 values.
func (s Stats) Variance(items []any, property string) (float64, bool) {
	values := s.numbers(items, property)
	if len(values) < 2 {
		return 0, false
	}
	return stat.Variance(values, nil), true
}

// StdDeviation is the square root of Variance.
func (s Stats) StdDeviation(items []any, property string) (float64, bool) {
	values := s.numbers(items, property)
	if len(values) < 2 {
		return 0, false
	}
	return stat.StdDev(values, nil), true
}

// sortedNumbers sorts a fresh slice from zaccess.Numbers, so items keeps its order.
func (s Stats) sortedNumbers(items []any, property string) []float64 {
	sorted := s.numbers(items, property)
	slices.Sort(sorted)
	return sorted
}

func Sum(items []any, property string) float64 {
	return std.Sum(items, property)
}

func Max(items []any, property string) (float64, bool) {
	return std.Max(items, property)
}

func Min(items []any, property string) (float64, bool) {
	return std.Min(items, property)
}

func Domain(items []any, property string) zmath.RangeF64 {
	return std.Domain(items, property)
}

func Diff(items []any, property string) (float64, bool) {
	return std.Diff(items, property)
}

func Mean(items []any, property string) (float64, bool) {
	return std.Mean(items, property)
}

func Median(items []any, property string) (float64, bool) {
	return std.Median(items, property)
}

func Variance(items []any, property string) (float64, bool) {
	return std.Variance(items, property)
}

func StdDeviation(items []any, property string) (float64, bool) {
	return std.StdDeviation(items, property)
}
