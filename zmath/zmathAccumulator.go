package zmath

// Accumulator gathers count, sum and range of values in one pass.
type Accumulator struct {
	Count int
	Sum   float64
	Range RangeF64
}

func (a *Accumulator) Add(value float64) {
	a.Count++
	a.Sum += value
	a.Range.Add(value)
}

func (a *Accumulator) AddAll(values []float64) {
	for _, v := range values {
		a.Add(v)
	}
}

// Average returns Sum/Count, false if nothing was added.
func (a *Accumulator) Average() (float64, bool) {
	if a.Count == 0 {
		return 0, false
	}
	return a.Sum / float64(a.Count), true
}
