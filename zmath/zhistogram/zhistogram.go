package zhistogram

import (
	"math"

	"github.com/torlangballe/zstats/zaccess"
	"github.com/torlangballe/zstats/zmath"
)

// DefaultBins is the number of classes Calc uses if none is given.
const DefaultBins = 4

type Class struct {
	Count    int
	MaxRange float64
}

// Histogram has equal-width classes from MinValue, each Step wide.
// The last class is closed, so a value at the range max goes in it.
type Histogram struct {
	MinValue     float64
	Step         float64
	Classes      []Class `json:",omitempty"`
	OutlierBelow int     `json:",omitempty"`
	OutlierAbove int     `json:",omitempty"`
}

// New makes a histogram with bins equal-width classes spanning r.
// bins <= 0 uses DefaultBins; an invalid r gives an empty 0-width range.
func New(bins int, r zmath.RangeF64) *Histogram {
	if bins <= 0 {
		bins = DefaultBins
	}
	h := &Histogram{}
	h.MinValue = r.Min
	h.Step = r.Length() / float64(bins)
	h.Classes = make([]Class, bins)
	for i := range h.Classes {
		h.Classes[i].MaxRange = r.Min + float64(i+1)*h.Step
	}
	h.Classes[bins-1].MaxRange = r.Max
	return h
}

func (h *Histogram) Max() float64 {
	if len(h.Classes) == 0 {
		return h.MinValue
	}
	return h.Classes[len(h.Classes)-1].MaxRange
}

// Range is the span from MinValue to the top of the last class.
func (h *Histogram) Range() zmath.RangeF64 {
	return zmath.MakeRange(h.MinValue, h.Max())
}

// ClassIndex returns the class value belongs in, floor((value-min)/step) kept
// within the classes, or -1 if it is outside the histogram's range.
func (h *Histogram) ClassIndex(value float64) int {
	last := len(h.Classes) - 1
	if last < 0 || !h.Range().Contains(value) {
		return -1
	}
	if h.Step == 0 {
		return last
	}
	i := int(math.Floor((value - h.MinValue) / h.Step))
	return zmath.MakeRange(0, last).Clamped(i)
}

func (h *Histogram) Add(value float64) {
	i := h.ClassIndex(value)
	if i == -1 {
		if value < h.MinValue {
			h.OutlierBelow++
		} else {
			h.OutlierAbove++
		}
		return
	}
	h.Classes[i].Count++
}

// Counts returns the count of each class.
func (h *Histogram) Counts() []int {
	counts := make([]int, len(h.Classes))
	for i, c := range h.Classes {
		counts[i] = c.Count
	}
	return counts
}

// Calc counts the values at property in bins equal-width classes over their exact min-max.
// Unlike a bucket distribution, the domain is not widened and no labels are made.
// No values gives bins zero counts.
func Calc(items []any, bins int, property string, g zaccess.Getter) []int {
	values := zaccess.Numbers(items, property, g)
	var a zmath.Accumulator
	a.AddAll(values)
	h := New(bins, a.Range)
	for _, v := range values {
		h.Add(v)
	}
	return h.Counts()
}
