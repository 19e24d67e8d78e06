package zstats

import (
	"fmt"
	"testing"

	"github.com/torlangballe/zstats/zaccess"
	"github.com/torlangballe/zstats/zmath"
	"github.com/torlangballe/zstats/ztesting"
)

var testValues = []any{1, 1, 2, 3, 3}

func objects(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = map[string]any{"value": v}
	}
	return out
}

func withNulls(values []any) []any {
	out := append([]any{nil}, values...)
	return append(out, nil)
}

func TestNullsDontChangeResults(t *testing.T) {
	fmt.Println("TestNullsDontChangeResults")
	inputs := []struct {
		name     string
		items    []any
		property string
	}{
		{"simple", testValues, ""},
		{"simple with nulls", withNulls(testValues), ""},
		{"objects", objects(testValues), "value"},
		{"objects with nulls", withNulls(objects(testValues)), "value"},
	}
	for _, in := range inputs {
		ztesting.Equal(t, in.name+" sum", Sum(in.items, in.property), 10.0)
		max, _ := Max(in.items, in.property)
		ztesting.Equal(t, in.name+" max", max, 3.0)
		min, _ := Min(in.items, in.property)
		ztesting.Equal(t, in.name+" min", min, 1.0)
		diff, _ := Diff(in.items, in.property)
		ztesting.Equal(t, in.name+" diff", diff, 2.0)
		ztesting.Equal(t, in.name+" domain", Domain(in.items, in.property), zmath.MakeRange(1.0, 3.0))
		mean, _ := Mean(in.items, in.property)
		ztesting.Equal(t, in.name+" mean", mean, 2.0)
		median, _ := Median(in.items, in.property)
		ztesting.Equal(t, in.name+" median", median, 2.0)
	}
}

func TestDomainMatchesMinMax(t *testing.T) {
	fmt.Println("TestDomainMatchesMinMax")
	for _, values := range [][]any{{5}, {-3, 7.5, 0}, {2, 2, 2}, {1e9, -1e-9}} {
		d := Domain(values, "")
		min, _ := Min(values, "")
		max, _ := Max(values, "")
		ztesting.Equal(t, fmt.Sprint(values, " domain min"), d.Min, min)
		ztesting.Equal(t, fmt.Sprint(values, " domain max"), d.Max, max)
	}
}

func TestEmptyInputs(t *testing.T) {
	fmt.Println("TestEmptyInputs")
	for _, items := range [][]any{nil, {}, {nil, nil}, {"a", true}} {
		ztesting.Equal(t, "sum", Sum(items, ""), 0.0)
		_, got := Max(items, "")
		ztesting.Equal(t, "max", got, false)
		_, got = Min(items, "")
		ztesting.Equal(t, "min", got, false)
		_, got = Diff(items, "")
		ztesting.Equal(t, "diff", got, false)
		ztesting.Equal(t, "domain", Domain(items, "").Valid, false)
		_, got = Mean(items, "")
		ztesting.Equal(t, "mean", got, false)
		_, got = Median(items, "")
		ztesting.Equal(t, "median", got, false)
		_, got = Variance(items, "")
		ztesting.Equal(t, "variance", got, false)
	}
	_, got := StdDeviation([]any{4}, "")
	ztesting.Equal(t, "single deviation", got, false)
}

func TestMedianEven(t *testing.T) {
	fmt.Println("TestMedianEven")
	items := []any{4, 1, 3, 2}
	m, got := Median(items, "")
	ztesting.Equal(t, "got", got, true)
	ztesting.Equal(t, "median", m, 2.5)
	ztesting.Equal(t, "input untouched", items[0], any(4))
}

func TestVariance(t *testing.T) {
	fmt.Println("TestVariance")
	v, got := Variance([]any{0, 5, 10}, "")
	ztesting.Equal(t, "variance got", got, true)
	ztesting.Equal(t, "variance", v, 25.0)
	d, _ := StdDeviation([]any{0, 5, 10}, "")
	ztesting.Equal(t, "deviation", d, 5.0)
	d, _ = StdDeviation(objects([]any{2, 4, 4, 4, 5, 5, 7, 9}), "value")
	ztesting.InDelta(t, "deviation of objects", d, 2.138089935299395, 1e-12)
}

func TestStatsGetter(t *testing.T) {
	fmt.Println("TestStatsGetter")
	type row [2]float64
	s := Stats{Getter: zaccess.GetterFunc(func(item any, path string) (any, bool) {
		r := item.(row)
		if path == "second" {
			return r[1], true
		}
		return r[0], true
	})}
	rows := []any{row{1, 10}, row{2, 20}, row{3, 60}}
	ztesting.Equal(t, "sum second", s.Sum(rows, "second"), 90.0)
	m, _ := s.WeightedMean(rows, "first", "second")
	ztesting.Equal(t, "weighted mean", m, (1*10+2*20+3*60)/90.0)
}
