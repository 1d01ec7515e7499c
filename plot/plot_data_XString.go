package plot

import (
	"fmt"

	"github.com/pivolan/barplot/domain/models"
)

type dataXStringsForGraph struct {
	xValues   []string
	yValues   []float64
	nameYAxis string
	nameGraph string
}

func NewDataXStringsForGraph(xValues []string, y []float64, nameYAxis, nameGraph string) dataXStringsForGraph {
	return dataXStringsForGraph{
		xValues:   xValues,
		yValues:   y,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}
func (d dataXStringsForGraph) GetNameGraph() string {
	return d.nameGraph
}

// single bar charts carry no x axis title
func (d dataXStringsForGraph) getNameXAxis() string {
	return ""
}
func (d dataXStringsForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataXStringsForGraph) getYValues() []float64 {
	return d.yValues
}
func (d dataXStringsForGraph) getXValues() []string {
	return d.xValues
}

func (d dataXStringsForGraph) lenXValues() int {
	return len(d.xValues)
}

func (d dataXStringsForGraph) validate() error {
	if len(d.yValues) != d.lenXValues() {
		return fmt.Errorf("%w: %d labels, %d values", ErrSeriesLength, d.lenXValues(), len(d.yValues))
	}
	return nil
}

func (d dataXStringsForGraph) generateSeries() []models.Series {
	return []models.Series{{Name: d.nameYAxis, Values: d.yValues, Color: singleColor}}
}

func (d dataXStringsForGraph) generateBarValues() []models.Bar {
	bars := make([]models.Bar, 0, d.lenXValues())
	yValues := d.getYValues()
	for i, label := range d.xValues {
		bars = append(bars, models.Bar{
			Series: d.nameYAxis,
			Index:  i,
			Label:  label,
			X:      float64(i),
			Width:  SingleBarWidth,
			Height: yValues[i],
			Color:  singleColor,
		})
	}
	return bars
}

func (d dataXStringsForGraph) generateTicks() []models.Tick {
	ticks := make([]models.Tick, d.lenXValues())
	for i, label := range d.xValues {
		ticks[i] = models.Tick{Value: float64(i), Label: label}
	}
	return ticks
}

func (d dataXStringsForGraph) generateLegend() []models.LegendEntry {
	return nil
}

func (d dataXStringsForGraph) xRange() models.Range {
	if d.lenXValues() == 0 {
		return paddedRange(0, 0)
	}
	return paddedRange(-SingleBarWidth/2, float64(d.lenXValues()-1)+SingleBarWidth/2)
}

// calculateChartDimensions is fixed at 8x7 inches.
func (d dataXStringsForGraph) calculateChartDimensions() (width, height float64) {
	return 8, 7
}
