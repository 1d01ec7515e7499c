package models

import (
	"image/color"
	"math"
)

type GroupedRequest struct {
	Groups []string
	Dense  []float64
	Sparse []float64
	XLabel string
	YLabel string
	Title  string
}

type SingleRequest struct {
	Labels []string
	Data   []float64
	YLabel string
	Title  string
}

// Series is one named set of values drawn with a single color.
type Series struct {
	Name   string
	Values []float64
	Color  color.NRGBA
}

// Bar is a single rectangle in data coordinates. X is the bar center.
type Bar struct {
	Series string
	Index  int
	Label  string
	X      float64
	Width  float64
	Height float64
	Color  color.NRGBA
}

type Tick struct {
	Value float64
	Label string
}

type Range struct {
	Min float64
	Max float64
}

type LegendEntry struct {
	Name  string
	Color color.NRGBA
}

// Layout is everything a renderer needs to draw one chart.
type Layout struct {
	Title  string
	XLabel string
	YLabel string

	Categories []string
	Series     []Series
	Bars       []Bar
	Ticks      []Tick
	Legend     []LegendEntry

	XRange Range
	YRange Range

	// Canvas size in inches, 100 pixels per inch.
	WidthInches  float64
	HeightInches float64
}

const DPI = 100

func (l Layout) WidthPixels() int {
	return int(math.Round(l.WidthInches * DPI))
}

func (l Layout) HeightPixels() int {
	return int(math.Round(l.HeightInches * DPI))
}

// BarsOf returns the bars of the named series in index order.
func (l Layout) BarsOf(series string) []Bar {
	var bars []Bar
	for _, b := range l.Bars {
		if b.Series == series {
			bars = append(bars, b)
		}
	}
	return bars
}
