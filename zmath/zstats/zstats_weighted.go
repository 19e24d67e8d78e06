package zstats

import (
	"cmp"
	"errors"
	"slices"

	"github.com/torlangballe/zstats/zaccess"
	"github.com/torlangballe/zstats/zdict"
	"github.com/torlangballe/zstats/zerrors"
	"github.com/torlangballe/zstats/zstr"
)

var ErrWeightedPropertiesRequired = errors.New("both value and weight properties are required")

type weightedItem struct {
	value  float64
	weight float64
}

func checkWeightedProperties(valueProperty, weightProperty string) error {
	if zstr.IsBlank(valueProperty) || zstr.IsBlank(weightProperty) {
		dict := zdict.Dict{"value": valueProperty, "weight": weightProperty}
		return zerrors.MakeContextError(dict, ErrWeightedPropertiesRequired)
	}
	return nil
}

// weightedItems pairs value and weight of each record. An absent value or weight is 0.
// nil records are left out.
func (s Stats) weightedItems(items []any, valueProperty, weightProperty string) (pairs []weightedItem, weightSum float64) {
	g := zaccess.OrDefault(s.Getter)
	pairs = make([]weightedItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		v, _ := zaccess.Number(item, valueProperty, g)
		w, _ := zaccess.Number(item, weightProperty, g)
		pairs = append(pairs, weightedItem{value: v, weight: w})
		weightSum += w
	}
	return pairs, weightSum
}

// WeightedMean returns sum(value*weight) / sum(weight).
// Zero total weight gives NaN or Inf, as the division does.
func (s Stats) WeightedMean(items []any, valueProperty, weightProperty string) (float64, error) {
	err := checkWeightedProperties(valueProperty, weightProperty)
	if err != nil {
		return 0, err
	}
	pairs, weightSum := s.weightedItems(items, valueProperty, weightProperty)
	var upper float64
	for _, p := range pairs {
		upper += p.value * p.weight
	}
	return upper / weightSum, nil
}

// WeightedMedian walks the records sorted by value, accumulating weight until half the
// total weight is reached. Landing exactly on half averages that value and the next one.
// An empty input gives 0.
func (s Stats) WeightedMedian(items []any, valueProperty, weightProperty string) (float64, error) {
	err := checkWeightedProperties(valueProperty, weightProperty)
	if err != nil {
		return 0, err
	}
	pairs, weightSum := s.weightedItems(items, valueProperty, weightProperty)
	if len(pairs) == 0 {
		return 0, nil
	}
	slices.SortStableFunc(pairs, func(a, b weightedItem) int {
		return cmp.Compare(a.value, b.value)
	})
	valueAt := func(i int) float64 {
		if i < 0 || i >= len(pairs) {
			return 0
		}
		return pairs[i].value
	}
	midpoint := weightSum / 2
	var index int
	var weight float64
	for weight < midpoint && index < len(pairs) {
		weight += pairs[index].weight
		index++
	}
	if weight == midpoint {
		return (valueAt(index-1) + valueAt(index)) / 2, nil
	}
	return valueAt(index - 1), nil
}

func WeightedMean(items []any, valueProperty, weightProperty string) (float64, error) {
	return std.WeightedMean(items, valueProperty, weightProperty)
}

func WeightedMedian(items []any, valueProperty, weightProperty string) (float64, error) {
	return std.WeightedMedian(items, valueProperty, weightProperty)
}
