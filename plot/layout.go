package plot

import (
	"errors"
	"image/color"
	"math"

	"github.com/pivolan/barplot/domain/models"
)

const (
	// GroupBarWidth is the width of one grouped bar and the offset of the
	// second series from the first, in x-axis units.
	GroupBarWidth = 0.35
	GroupOpacity  = 0.8

	SingleBarWidth = 0.8
	SingleOpacity  = 0.5

	DenseName  = "Dense"
	SparseName = "Sparse"

	// share of the data span added on each side of an axis
	axisMargin = 0.05
)

var (
	ErrSeriesLength = errors.New("series length does not match labels")

	denseColor  = withOpacity(color.NRGBA{R: 0, G: 0, B: 255}, GroupOpacity)
	sparseColor = withOpacity(color.NRGBA{R: 0, G: 128, B: 0}, GroupOpacity)
	singleColor = withOpacity(color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4}, SingleOpacity)
)

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(opacity * 255))
	return c
}

// BuildGroupedLayout places the dense and sparse series side by side for
// every group.
func BuildGroupedLayout(req models.GroupedRequest) (models.Layout, error) {
	return buildLayout(NewDataGroupsForGraph(req.Groups, req.Dense, req.Sparse, req.XLabel, req.YLabel, req.Title))
}

// BuildSingleLayout places one bar per label at integer positions.
func BuildSingleLayout(req models.SingleRequest) (models.Layout, error) {
	return buildLayout(NewDataXStringsForGraph(req.Labels, req.Data, req.YLabel, req.Title))
}

func buildLayout(data dataForGraph) (models.Layout, error) {
	if err := data.validate(); err != nil {
		return models.Layout{}, err
	}
	series := data.generateSeries()
	width, height := data.calculateChartDimensions()
	return models.Layout{
		Title:        data.GetNameGraph(),
		XLabel:       data.getNameXAxis(),
		YLabel:       data.getNameYAxis(),
		Categories:   data.getXValues(),
		Series:       series,
		Bars:         data.generateBarValues(),
		Ticks:        data.generateTicks(),
		Legend:       data.generateLegend(),
		XRange:       data.xRange(),
		YRange:       yRange(series),
		WidthInches:  width,
		HeightInches: height,
	}, nil
}

// yRange always includes zero so bars grow from the axis.
func yRange(series []models.Series) models.Range {
	lo, hi := 0.0, 0.0
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo == 0 && hi == 0 {
		return models.Range{Min: 0, Max: 1}
	}
	span := hi - lo
	r := models.Range{Min: lo, Max: hi + span*axisMargin}
	if lo < 0 {
		r.Min = lo - span*axisMargin
	}
	return r
}

// paddedRange widens [lo, hi] by the axis margin; empty spans get a unit range.
func paddedRange(lo, hi float64) models.Range {
	span := hi - lo
	if span <= 0 {
		return models.Range{Min: lo - 0.5, Max: hi + 0.5}
	}
	return models.Range{Min: lo - span*axisMargin, Max: hi + span*axisMargin}
}
