package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/pivolan/barplot/domain/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// GoChartRenderer draws layouts with go-chart.
type GoChartRenderer struct{}

func (GoChartRenderer) Formats() []string {
	return []string{FormatPNG, FormatSVG}
}

func (g GoChartRenderer) Render(layout models.Layout, format string, w io.Writer) error {
	var provider chart.RendererProvider
	switch format {
	case FormatPNG:
		provider = chart.PNG
	case FormatSVG:
		provider = chart.SVG
	default:
		return unsupported(g, format)
	}

	graph := DrawPlotBar(layout)
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("error rendering chart: %w", err)
	}
	return nil
}

// DrawPlotBar configures a go-chart chart for the layout. Bars are drawn by
// barSeries at the positions the layout computed.
func DrawPlotBar(layout models.Layout) chart.Chart {
	var series []chart.Series
	for _, s := range layout.Series {
		series = append(series, barSeries{
			name: s.Name,
			bars: layout.BarsOf(s.Name),
			style: chart.Style{
				FillColor:   toDrawingColor(s.Color),
				StrokeColor: toDrawingColor(s.Color),
				StrokeWidth: 1,
			},
		})
	}

	xTicks := make([]chart.Tick, 0, len(layout.Ticks))
	for _, t := range layout.Ticks {
		xTicks = append(xTicks, chart.Tick{Value: t.Value, Label: t.Label})
	}
	xTicks = withBounds(xTicks, layout.XRange)

	graph := chart.Chart{
		Title:  layout.Title,
		Width:  layout.WidthPixels(),
		Height: layout.HeightPixels(),
		DPI:    models.DPI,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   20,
				Right:  20,
				Bottom: customizePaddingXBottom(layout.Ticks),
			},
			FillColor: drawing.ColorWhite,
		},
		XAxis: chart.XAxis{
			Name:  layout.XLabel,
			Ticks: xTicks,
			Range: &chart.ContinuousRange{
				Min: layout.XRange.Min,
				Max: layout.XRange.Max,
			},
			Style: chart.Style{
				StrokeWidth: 1,
				StrokeColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			Name: layout.YLabel,
			Range: &chart.ContinuousRange{
				Min: layout.YRange.Min,
				Max: layout.YRange.Max,
			},
			Ticks: withBounds(generateGrid(layout.YRange), layout.YRange),
			Style: chart.Style{
				StrokeWidth: 1,
				StrokeColor: chart.ColorBlack,
			},
			GridMajorStyle: chart.Style{
				StrokeColor:     drawing.ColorFromHex("efefef"),
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		},
		Series: series,
	}
	if len(layout.Legend) > 0 {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}
	return graph
}

// barSeries is a chart.Series drawing one rectangle per bar. It also
// implements chart.ValuesProvider so the chart sees its extent.
type barSeries struct {
	name  string
	bars  []models.Bar
	style chart.Style
}

func (bs barSeries) GetName() string {
	return bs.name
}
func (bs barSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}
func (bs barSeries) GetStyle() chart.Style {
	return bs.style
}
func (bs barSeries) Validate() error {
	return nil
}
func (bs barSeries) Len() int {
	return len(bs.bars)
}
func (bs barSeries) GetValues(index int) (float64, float64) {
	return bs.bars[index].X, bs.bars[index].Height
}

func (bs barSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := bs.style.InheritFrom(defaults)
	base := canvasBox.Bottom - yrange.Translate(0)
	for _, b := range bs.bars {
		left := canvasBox.Left + xrange.Translate(b.X-b.Width/2)
		right := canvasBox.Left + xrange.Translate(b.X+b.Width/2)
		top := canvasBox.Bottom - yrange.Translate(b.Height)

		r.SetFillColor(style.GetFillColor())
		r.SetStrokeColor(style.GetStrokeColor())
		r.SetStrokeWidth(style.GetStrokeWidth())
		r.MoveTo(left, min(top, base))
		r.LineTo(right, min(top, base))
		r.LineTo(right, max(top, base))
		r.LineTo(left, max(top, base))
		r.LineTo(left, min(top, base))
		r.Close()
		r.FillStroke()
	}
}

func toDrawingColor(c color.NRGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// generateGrid returns y ticks on "nice" steps covering the range.
func generateGrid(r models.Range) []chart.Tick {
	gridStep := calculateGridStep(math.Max(math.Abs(r.Min), math.Abs(r.Max)))
	if gridStep <= 0 {
		return nil
	}
	var ticks []chart.Tick
	for i := math.Floor(r.Min/gridStep) * gridStep; i <= r.Max; i += gridStep {
		if i < r.Min {
			continue
		}
		ticks = append(ticks, chart.Tick{
			Value: i,
			Label: formatTick(i, gridStep),
		})
	}
	return ticks
}

// withBounds adds unlabeled ticks at both ends of the range. go-chart
// fits an axis to its ticks when ticks are given.
func withBounds(ticks []chart.Tick, r models.Range) []chart.Tick {
	bounded := make([]chart.Tick, 0, len(ticks)+2)
	if len(ticks) == 0 || ticks[0].Value > r.Min {
		bounded = append(bounded, chart.Tick{Value: r.Min})
	}
	bounded = append(bounded, ticks...)
	if len(ticks) == 0 || ticks[len(ticks)-1].Value < r.Max {
		bounded = append(bounded, chart.Tick{Value: r.Max})
	}
	return bounded
}

func formatTick(v, step float64) string {
	if step >= 1 {
		return fmt.Sprintf("%.0f", v)
	}
	decimals := int(math.Ceil(-math.Log10(step)))
	return fmt.Sprintf("%.*f", decimals, v)
}

func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}

	// Обработка очень маленьких чисел
	if maxValue < 1e-10 {
		return 1e-10
	}

	// порядок величины и нормализация к [1, 10)
	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}

	finalStep := step * magnitude

	// Округляем большие шаги до "красивых" чисел
	if finalStep >= 1000 {
		return math.Round(finalStep/100) * 100
	}
	if finalStep >= 100 {
		return math.Round(finalStep/10) * 10
	}

	return finalStep
}

// customizePaddingXBottom leaves room under the axis for the longest tick label.
func customizePaddingXBottom(ticks []models.Tick) int {
	count := 0
	for _, t := range ticks {
		if len(t.Label) > count {
			count = len(t.Label)
		}
	}
	return 40 + count*2
}
