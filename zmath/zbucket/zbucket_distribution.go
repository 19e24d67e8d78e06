package zbucket

import (
	"fmt"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/torlangballe/zstats/zaccess"
	"github.com/torlangballe/zstats/zlog"
	"github.com/torlangballe/zstats/zmath"
	"github.com/torlangballe/zstats/zwords"
)

// Distribution is the count of values in each bucket, Data parallel to Labels.
type Distribution struct {
	Labels []string
	Data   []int
}

// ArrayItem is one bucket of a Distribution, with its range parsed from the label.
type ArrayItem struct {
	Label      string
	Count      int
	Percentage float64
	From       float64
	To         float64
}

// ArrayItems is the array view of a Distribution, in bucket order.
type ArrayItems []ArrayItem

// Serie is the counts of one group's values in a shared set of buckets.
type Serie struct {
	Name            string
	Count           []int
	PercentageSerie []float64 // of the serie's own total
	PercentageTotal []float64 // of all series' total
}

// SeriesDistribution has a Serie per group, each with counts parallel to Labels.
type SeriesDistribution struct {
	Labels []string
	Series []Serie
}

// Total is the number of values counted, the sum of Data.
func (d Distribution) Total() int {
	var n int
	for _, c := range d.Data {
		n += c
	}
	return n
}

// CalcDistribution counts the valid values at opts.Property in buckets made from items.
func CalcDistribution(items []any, opts Opts) Distribution {
	values := zaccess.Numbers(items, opts.Property, opts.Getter)
	buckets := MakeBuckets(values, opts)
	d := Distribution{
		Labels: make([]string, len(buckets)),
		Data:   countInside(buckets, values),
	}
	for i, b := range buckets {
		d.Labels[i] = b.Label
	}
	return d
}

// CalcDistributionAsArray is CalcDistribution with each bucket as an ArrayItem.
func CalcDistributionAsArray(items []any, opts Opts) ArrayItems {
	d := CalcDistribution(items, opts)
	total := float64(d.Total())
	arr := make(ArrayItems, len(d.Labels))
	for i, label := range d.Labels {
		a := &arr[i]
		a.Label = label
		a.Count = d.Data[i]
		a.Percentage = zmath.PercentOrZero(float64(a.Count), total)
		var err error
		a.From, a.To, err = MinMaxFromLabel(label)
		zlog.OnError(err, "parse own label")
	}
	return arr
}

// Table renders the items as a text table with a total footer.
func (arr ArrayItems) Table() string {
	var total int
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Bucket", "From", "To", "Count", "%"})
	for _, a := range arr {
		total += a.Count
		w.AppendRow(table.Row{a.Label, a.From, a.To, a.Count, fmt.Sprintf("%.1f", a.Percentage)})
	}
	w.AppendFooter(table.Row{zwords.Pluralize("bucket", len(arr)), "", "", total, ""})
	return w.Render()
}

// CalcDistributionWithSeries counts the values at property of each group's items in buckets.
// Series are ordered by group name.
func CalcDistributionWithSeries(buckets []Bucket, groups map[string][]any, property string, g zaccess.Getter) SeriesDistribution {
	var sd SeriesDistribution
	for _, b := range buckets {
		sd.Labels = append(sd.Labels, b.Label)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)

	var grandTotal int
	totals := make([]int, len(names))
	for i, name := range names {
		values := zaccess.Numbers(groups[name], property, g)
		s := Serie{Name: name, Count: countInside(buckets, values)}
		for _, c := range s.Count {
			totals[i] += c
		}
		grandTotal += totals[i]
		sd.Series = append(sd.Series, s)
	}
	for i := range sd.Series {
		s := &sd.Series[i]
		s.PercentageSerie = make([]float64, len(s.Count))
		s.PercentageTotal = make([]float64, len(s.Count))
		for j, c := range s.Count {
			s.PercentageSerie[j] = zmath.PercentOrZero(float64(c), float64(totals[i]))
			s.PercentageTotal[j] = zmath.PercentOrZero(float64(c), float64(grandTotal))
		}
	}
	return sd
}

// Serie returns the serie named name, or nil.
func (sd *SeriesDistribution) Serie(name string) *Serie {
	for i := range sd.Series {
		if sd.Series[i].Name == name {
			return &sd.Series[i]
		}
	}
	return nil
}
