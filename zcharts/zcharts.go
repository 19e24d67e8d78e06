// Package zcharts renders bucket distributions as echarts bar charts in an html page.
package zcharts

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/torlangballe/zstats/zmath/zbucket"
)

type Renderer interface {
	Render(w io.Writer) error
}

func newBar(title string, labels []string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "500px"}),
	)
	bar.SetXAxis(labels)
	return bar
}

func barData(counts []int) []opts.BarData {
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		data[i] = opts.BarData{Value: c}
	}
	return data
}

// BarChart has a bar per bucket of d.
func BarChart(title string, d zbucket.Distribution) *charts.Bar {
	bar := newBar(title, d.Labels)
	bar.AddSeries("Count", barData(d.Data))
	return bar
}

// SeriesBarChart has a bar series per serie of sd, stacked on each other if stacked.
func SeriesBarChart(title string, sd zbucket.SeriesDistribution, stacked bool) *charts.Bar {
	bar := newBar(title, sd.Labels)
	var stack string
	if stacked {
		stack = "total"
	}
	for _, s := range sd.Series {
		bar.AddSeries(s.Name, barData(s.Count), charts.WithBarChartOpts(opts.BarChart{Stack: stack}))
	}
	if len(sd.Series) > 1 {
		bar.SetGlobalOptions(charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}))
	}
	return bar
}

// Render writes r as a complete html page to w.
func Render(w io.Writer, r Renderer) error {
	return r.Render(w)
}
