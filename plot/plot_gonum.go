package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/pivolan/barplot/domain/models"
	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// GonumRenderer draws layouts with gonum/plot.
type GonumRenderer struct{}

func (GonumRenderer) Formats() []string {
	return []string{FormatPNG, FormatSVG, FormatPDF}
}

func (g GonumRenderer) Render(layout models.Layout, format string, w io.Writer) error {
	if !supports(g, format) {
		return unsupported(g, format)
	}
	p, err := drawGonumPlot(layout)
	if err != nil {
		return err
	}

	width := vg.Length(layout.WidthInches) * vg.Inch
	height := vg.Length(layout.HeightInches) * vg.Inch
	writer, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("failed to create plot writer: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}
	return nil
}

func drawGonumPlot(layout models.Layout) (*gonumplot.Plot, error) {
	p := gonumplot.New()
	p.Title.Text = layout.Title
	p.X.Label.Text = layout.XLabel
	p.Y.Label.Text = layout.YLabel

	ticks := make(gonumplot.ConstantTicks, len(layout.Ticks))
	for i, t := range layout.Ticks {
		ticks[i] = gonumplot.Tick{Value: t.Value, Label: t.Label}
	}
	p.X.Tick.Marker = ticks

	for _, s := range layout.Series {
		bars := layout.BarsOf(s.Name)
		if len(bars) == 0 {
			continue
		}
		for _, b := range bars {
			if math.IsNaN(b.Height) || math.IsInf(b.Height, 0) {
				return nil, fmt.Errorf("failed to create bar chart for %s: bad value %v at %q", s.Name, b.Height, b.Label)
			}
		}
		series := gonumBars{bars: bars, color: s.Color}
		p.Add(series)
		if len(layout.Legend) > 0 {
			p.Legend.Add(s.Name, series)
		}
	}
	p.Legend.Top = true

	// Add widens the axes to the data, so the layout ranges go last.
	p.X.Min, p.X.Max = layout.XRange.Min, layout.XRange.Max
	p.Y.Min, p.Y.Max = layout.YRange.Min, layout.YRange.Max
	return p, nil
}

// gonumBars draws one series with bar edges in data units, so widths follow
// the axis scale instead of a fixed canvas length.
type gonumBars struct {
	bars  []models.Bar
	color color.Color
}

func (g gonumBars) Plot(c draw.Canvas, plt *gonumplot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, b := range g.bars {
		c.FillPolygon(g.color, c.ClipPolygonXY(barPolygon(b, trX, trY)))
	}
}

func barPolygon(b models.Bar, trX, trY func(float64) vg.Length) []vg.Point {
	left, right := trX(b.X-b.Width/2), trX(b.X+b.Width/2)
	base, top := trY(0), trY(b.Height)
	return []vg.Point{
		{X: left, Y: base},
		{X: left, Y: top},
		{X: right, Y: top},
		{X: right, Y: base},
	}
}

func (g gonumBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, b := range g.bars {
		xmin = math.Min(xmin, b.X-b.Width/2)
		xmax = math.Max(xmax, b.X+b.Width/2)
		ymin = math.Min(ymin, b.Height)
		ymax = math.Max(ymax, b.Height)
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail fills the legend swatch.
func (g gonumBars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(g.color, c.ClipPolygonY(pts))
}
