package plot

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/pivolan/barplot/domain/models"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	for _, backend := range Backends() {
		r, err := NewRenderer(backend)
		require.NoError(t, err, backend)
		assert.NotEmpty(t, r.Formats())
	}

	_, err := NewRenderer("matplotlib")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestDefaultFormat(t *testing.T) {
	assert.Equal(t, FormatPNG, DefaultFormat(GoChartRenderer{}))
	assert.Equal(t, FormatPNG, DefaultFormat(GonumRenderer{}))
	assert.Equal(t, FormatHTML, DefaultFormat(EChartsRenderer{}))
}

func TestGonumRender(t *testing.T) {
	r := GonumRenderer{}
	tests := []struct {
		format string
		prefix string
	}{
		{FormatPNG, "\x89PNG"},
		{FormatPDF, "%PDF"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Render(groupedLayout(t), tt.format, &buf))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(tt.prefix)))
		})
	}

	var svg bytes.Buffer
	require.NoError(t, r.Render(singleLayout(t), FormatSVG, &svg))
	assert.Contains(t, svg.String(), "<svg")

	assert.ErrorIs(t, r.Render(singleLayout(t), FormatHTML, &bytes.Buffer{}), ErrUnsupportedFormat)
}

func TestDrawGonumPlot(t *testing.T) {
	layout := groupedLayout(t)
	p, err := drawGonumPlot(layout)
	require.NoError(t, err)
	assert.Equal(t, layout.XRange.Min, p.X.Min)
	assert.Equal(t, layout.XRange.Max, p.X.Max)
	assert.Equal(t, "Dense vs Sparse", p.Title.Text)
}

func TestGonumBarWidthInDataUnits(t *testing.T) {
	for _, n := range []int{1, 3, 30} {
		t.Run(fmt.Sprintf("%d groups", n), func(t *testing.T) {
			groups := make([]string, n)
			values := make([]float64, n)
			for i := range groups {
				groups[i] = fmt.Sprintf("g%d", i)
				values[i] = float64(i + 1)
			}
			layout, err := BuildGroupedLayout(models.GroupedRequest{Groups: groups, Dense: values, Sparse: values})
			require.NoError(t, err)
			p, err := drawGonumPlot(layout)
			require.NoError(t, err)

			img := vgimg.New(vg.Length(layout.WidthInches)*vg.Inch, vg.Length(layout.HeightInches)*vg.Inch)
			dc := p.DataCanvas(draw.New(img))
			trX, trY := p.Transforms(&dc)
			unit := float64(trX(1) - trX(0))

			dense := layout.BarsOf(DenseName)
			sparse := layout.BarsOf(SparseName)
			for i := range dense {
				d := barPolygon(dense[i], trX, trY)
				s := barPolygon(sparse[i], trX, trY)
				assert.InDelta(t, GroupBarWidth, float64(d[2].X-d[0].X)/unit, 1e-6)
				assert.InDelta(t, GroupBarWidth, float64(s[2].X-s[0].X)/unit, 1e-6)
				// side by side, no gap
				assert.InDelta(t, float64(d[2].X), float64(s[0].X), 1e-6)
			}
		})
	}
}

func TestGonumBarsDataRange(t *testing.T) {
	xmin, xmax, ymin, ymax := gonumBars{bars: []models.Bar{
		{X: 0, Width: 0.35, Height: -2},
		{X: 1, Width: 0.35, Height: 5},
	}}.DataRange()
	assert.InDelta(t, -0.175, xmin, 1e-9)
	assert.InDelta(t, 1.175, xmax, 1e-9)
	assert.Equal(t, -2.0, ymin)
	assert.Equal(t, 5.0, ymax)
}

func TestEChartsRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EChartsRenderer{}.Render(groupedLayout(t), FormatHTML, &buf))
	html := buf.String()
	assert.Contains(t, html, "Dense vs Sparse")
	assert.Contains(t, html, DenseName)
	assert.Contains(t, html, SparseName)
	assert.Contains(t, html, "rgba(0,0,255,0.80)")

	assert.ErrorIs(t, EChartsRenderer{}.Render(groupedLayout(t), FormatPNG, &buf), ErrUnsupportedFormat)
}

func TestEChartsLegend(t *testing.T) {
	single := drawEChartsBar(singleLayout(t))
	require.NotNil(t, single.Legend.Show)
	assert.False(t, *single.Legend.Show)

	grouped := drawEChartsBar(groupedLayout(t))
	if grouped.Legend.Show != nil {
		assert.True(t, *grouped.Legend.Show)
	}
}

func TestGonumRejectsNaN(t *testing.T) {
	layout, err := BuildSingleLayout(models.SingleRequest{Labels: []string{"x"}, Data: []float64{math.NaN()}})
	require.NoError(t, err)
	_, err = drawGonumPlot(layout)
	assert.Error(t, err)
}
