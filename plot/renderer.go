package plot

import (
	"errors"
	"fmt"
	"io"

	"github.com/pivolan/barplot/domain/models"
)

const (
	BackendGoChart = "gochart"
	BackendGonum   = "gonum"
	BackendECharts = "echarts"

	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

var (
	ErrUnknownBackend    = errors.New("unknown chart backend")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Renderer draws a laid out chart in one of its formats.
type Renderer interface {
	Render(layout models.Layout, format string, w io.Writer) error
	Formats() []string
}

func Backends() []string {
	return []string{BackendGoChart, BackendGonum, BackendECharts}
}

func NewRenderer(backend string) (Renderer, error) {
	switch backend {
	case BackendGoChart:
		return GoChartRenderer{}, nil
	case BackendGonum:
		return GonumRenderer{}, nil
	case BackendECharts:
		return EChartsRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// DefaultFormat is the first format a renderer supports.
func DefaultFormat(r Renderer) string {
	return r.Formats()[0]
}

func supports(r Renderer, format string) bool {
	for _, f := range r.Formats() {
		if f == format {
			return true
		}
	}
	return false
}

func unsupported(r Renderer, format string) error {
	return fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedFormat, format, r.Formats())
}
