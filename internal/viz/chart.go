package viz

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/san-kum/cosmic/internal/cosmo"
)

var chartSeries = []string{"da", "dl", "dc", "dm"}

// Chart renders the four distance measures against redshift as an HTML
// page.
func Chart(w io.Writer, samples []cosmo.Snapshot, title string) error {
	if len(samples) == 0 {
		return fmt.Errorf("no data to chart")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       "cosmic",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: paramsSubtitle(samples[0]),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Top:          "bottom",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "z",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Mpc",
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	x := make([]string, len(samples))
	for i, s := range samples {
		x[i] = strconv.FormatFloat(s.Z, 'g', 4, 64)
	}
	line.SetXAxis(x)

	for _, name := range chartSeries {
		q, err := GetQuantity(name)
		if err != nil {
			return err
		}
		data := make([]opts.LineData, len(samples))
		for i, s := range samples {
			data[i] = opts.LineData{Value: q.Value(s)}
		}
		line.AddSeries(q.Caption, data)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
		Smooth:     opts.Bool(true),
		ShowSymbol: opts.Bool(false),
	}))

	return line.Render(w)
}

func paramsSubtitle(s cosmo.Snapshot) string {
	return fmt.Sprintf("H0 = %g, Ωm = %g, ΩΛ = %g", s.H0, s.OmegaM, s.OmegaL)
}
