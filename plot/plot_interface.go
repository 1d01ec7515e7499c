package plot

import "github.com/pivolan/barplot/domain/models"

type dataForGraph interface {
	GetNameGraph() string
	getNameXAxis() string
	getNameYAxis() string
	getXValues() []string
	validate() error
	generateSeries() []models.Series
	generateBarValues() []models.Bar
	generateTicks() []models.Tick
	generateLegend() []models.LegendEntry
	xRange() models.Range
	calculateChartDimensions() (width, height float64)
}
