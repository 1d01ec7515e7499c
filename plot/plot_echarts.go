package plot

import (
	"fmt"
	"image/color"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pivolan/barplot/domain/models"
)

// EChartsRenderer writes an interactive HTML page. ECharts places grouped
// series side by side on its category axis itself.
type EChartsRenderer struct{}

func (EChartsRenderer) Formats() []string {
	return []string{FormatHTML}
}

func (e EChartsRenderer) Render(layout models.Layout, format string, w io.Writer) error {
	if !supports(e, format) {
		return unsupported(e, format)
	}

	bar := drawEChartsBar(layout)
	if err := bar.Render(w); err != nil {
		return fmt.Errorf("error rendering chart: %w", err)
	}
	return nil
}

func drawEChartsBar(layout models.Layout) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: layout.Title,
			Width:     fmt.Sprintf("%dpx", layout.WidthPixels()),
			Height:    fmt.Sprintf("%dpx", layout.HeightPixels()),
		}),
		charts.WithTitleOpts(opts.Title{Title: layout.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: layout.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: layout.YLabel}),
	)
	bar.SetXAxis(layout.Categories)
	for _, s := range layout.Series {
		items := make([]opts.BarData, len(s.Values))
		for i, v := range s.Values {
			items[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(s.Name, items, charts.WithItemStyleOpts(opts.ItemStyle{Color: cssColor(s.Color)}))
	}
	// echarts shows a legend unless told otherwise
	if len(layout.Legend) == 0 {
		bar.SetGlobalOptions(charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}))
	}
	return bar
}

func cssColor(c color.NRGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, float64(c.A)/255)
}
