package zstats

import (
	"errors"
	"math"

	"github.com/torlangballe/zstats/zdict"
	"github.com/torlangballe/zstats/zerrors"
	"github.com/torlangballe/zstats/zfloat"
)

var ErrPercentileOutOfRange = errors.New("percentile must be a number between 0 and 1")

// Quartile ranks used by Quartiles.
var quartileRanks = [3]float64{0.25, 0.5, 0.75}

// Percentile returns the p-quantile (p in 0-1) of the values at property, interpolating
// linearly between the order statistics around p*(n-1).
// got is false if there are no values; p outside 0-1 is an error.
func (s Stats) Percentile(items []any, property string, p float64) (value float64, got bool, err error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, false, zerrors.MakeContextError(zdict.Dict{"percentile": p}, ErrPercentileOutOfRange)
	}
	sorted := s.sortedNumbers(items, property)
	if len(sorted) == 0 {
		return 0, false, nil
	}
	return zfloat.MixedValueAtT(sorted, p), true, nil
}

// Quartiles returns the values at nearest ranks round(n*0.25), round(n*0.5) and round(n*0.75)
// of the sorted values, without interpolation.
func (s Stats) Quartiles(items []any, property string) ([3]float64, bool) {
	var q [3]float64
	sorted := s.sortedNumbers(items, property)
	n := len(sorted)
	if n == 0 {
		return q, false
	}
	for i, rank := range quartileRanks {
		index := int(math.Round(float64(n)*rank)) - 1
		index = max(0, min(index, n-1))
		q[i] = sorted[index]
	}
	return q, true
}

// Percentile gets the p-quantile of items, which should be numbers; nil entries are ignored.
func Percentile(items []any, p float64) (float64, bool, error) {
	return std.Percentile(items, "", p)
}

// PercentileOf is Percentile for the values at property.
func PercentileOf(items []any, property string, p float64) (float64, bool, error) {
	return std.Percentile(items, property, p)
}

func Quartiles(items []any, property string) ([3]float64, bool) {
	return std.Quartiles(items, property)
}
