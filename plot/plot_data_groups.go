package plot

import (
	"fmt"

	"github.com/pivolan/barplot/domain/models"
)

type dataGroupsForGraph struct {
	groups    []string
	dense     []float64
	sparse    []float64
	nameXAxis string
	nameYAxis string
	nameGraph string
}

func NewDataGroupsForGraph(groups []string, dense, sparse []float64, nameXAxis, nameYAxis, nameGraph string) dataGroupsForGraph {
	return dataGroupsForGraph{
		groups:    groups,
		dense:     dense,
		sparse:    sparse,
		nameXAxis: nameXAxis,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d dataGroupsForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataGroupsForGraph) getNameXAxis() string {
	return d.nameXAxis
}
func (d dataGroupsForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataGroupsForGraph) getXValues() []string {
	return d.groups
}
func (d dataGroupsForGraph) lenXValues() int {
	return len(d.groups)
}

func (d dataGroupsForGraph) validate() error {
	if len(d.dense) != d.lenXValues() || len(d.sparse) != d.lenXValues() {
		return fmt.Errorf("%w: %d groups, %d dense, %d sparse",
			ErrSeriesLength, d.lenXValues(), len(d.dense), len(d.sparse))
	}
	return nil
}

func (d dataGroupsForGraph) generateSeries() []models.Series {
	return []models.Series{
		{Name: DenseName, Values: d.dense, Color: denseColor},
		{Name: SparseName, Values: d.sparse, Color: sparseColor},
	}
}

// generateBarValues returns all dense bars followed by all sparse bars.
func (d dataGroupsForGraph) generateBarValues() []models.Bar {
	bars := make([]models.Bar, 0, 2*d.lenXValues())
	for offset, s := range d.generateSeries() {
		for i, v := range s.Values {
			bars = append(bars, models.Bar{
				Series: s.Name,
				Index:  i,
				Label:  d.groups[i],
				X:      float64(i) + float64(offset)*GroupBarWidth,
				Width:  GroupBarWidth,
				Height: v,
				Color:  s.Color,
			})
		}
	}
	return bars
}

// generateTicks centers each label between the two bars of its group.
func (d dataGroupsForGraph) generateTicks() []models.Tick {
	ticks := make([]models.Tick, d.lenXValues())
	for i, g := range d.groups {
		ticks[i] = models.Tick{Value: float64(i) + GroupBarWidth/2, Label: g}
	}
	return ticks
}

func (d dataGroupsForGraph) generateLegend() []models.LegendEntry {
	return []models.LegendEntry{
		{Name: DenseName, Color: denseColor},
		{Name: SparseName, Color: sparseColor},
	}
}

func (d dataGroupsForGraph) xRange() models.Range {
	if d.lenXValues() == 0 {
		return paddedRange(0, 0)
	}
	lo := -GroupBarWidth / 2
	hi := float64(d.lenXValues()-1) + GroupBarWidth + GroupBarWidth/2
	return paddedRange(lo, hi)
}

// calculateChartDimensions keeps the default 6.4x4.8 figure until the
// groups no longer fit, then grows the width and keeps the aspect ratio.
func (d dataGroupsForGraph) calculateChartDimensions() (width, height float64) {
	const (
		defaultWidth  = 6.4
		defaultHeight = 4.8
		groupWidth    = 0.5 // inches per group
		paddingX      = 1.5 // room for the y axis and its title
		aspectRatio   = defaultHeight / defaultWidth
	)
	width = float64(d.lenXValues())*groupWidth + paddingX
	if width <= defaultWidth {
		return defaultWidth, defaultHeight
	}
	return width, width * aspectRatio
}
