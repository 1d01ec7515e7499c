// Package charts draws grouped and single-series bar charts and shows them
// through the configured presenter.
package charts

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pivolan/barplot/config"
	"github.com/pivolan/barplot/domain/models"
	"github.com/pivolan/barplot/plot"
	"github.com/pivolan/barplot/show"
)

// Charter lays out, renders and presents charts. It keeps no state between
// calls.
type Charter struct {
	renderer  plot.Renderer
	presenter show.Presenter
	format    string
}

func NewCharter(renderer plot.Renderer, presenter show.Presenter, format string) *Charter {
	return &Charter{
		renderer:  renderer,
		presenter: presenter,
		format:    format,
	}
}

// New builds a Charter from configuration. Charts go to Telegram when a
// token and chat are configured, otherwise to files that are optionally
// opened in the default viewer.
func New(cfg *config.Config) (*Charter, error) {
	renderer, err := plot.NewRenderer(cfg.Backend)
	if err != nil {
		return nil, err
	}
	format := cfg.Format
	if format == "" {
		format = plot.DefaultFormat(renderer)
	}

	var presenter show.Presenter
	switch {
	case cfg.Telegram():
		presenter, err = show.NewTelegramPresenter(cfg.TgToken, cfg.TgChatID)
		if err != nil {
			return nil, err
		}
	case cfg.OpenViewer:
		presenter = show.NewViewerPresenter(cfg.OutputDir)
	default:
		presenter = show.FilePresenter{Dir: cfg.OutputDir}
	}
	return NewCharter(renderer, presenter, format), nil
}

// PlotGroups draws dense and sparse values side by side for every group.
func (c *Charter) PlotGroups(ctx context.Context, groups []string, dense, sparse []float64, xlabel, ylabel, title string) error {
	layout, err := plot.BuildGroupedLayout(models.GroupedRequest{
		Groups: groups,
		Dense:  dense,
		Sparse: sparse,
		XLabel: xlabel,
		YLabel: ylabel,
		Title:  title,
	})
	if err != nil {
		return err
	}
	return c.Show(ctx, layout)
}

// SimpleBar draws one bar per label.
func (c *Charter) SimpleBar(ctx context.Context, xlabels []string, ylabel, title string, data []float64) error {
	layout, err := plot.BuildSingleLayout(models.SingleRequest{
		Labels: xlabels,
		Data:   data,
		YLabel: ylabel,
		Title:  title,
	})
	if err != nil {
		return err
	}
	return c.Show(ctx, layout)
}

// Show renders a prepared layout and hands it to the presenter.
func (c *Charter) Show(ctx context.Context, layout models.Layout) error {
	var buf bytes.Buffer
	if err := c.renderer.Render(layout, c.format, &buf); err != nil {
		return err
	}
	log.Debug("chart rendered", "title", layout.Title, "bars", len(layout.Bars), "format", c.format, "bytes", buf.Len())

	img := show.Image{
		Name:   show.FileName(layout.Title),
		Title:  layout.Title,
		Format: c.format,
		Data:   buf.Bytes(),
	}
	if err := c.presenter.Present(ctx, img); err != nil {
		return fmt.Errorf("error presenting chart %q: %w", layout.Title, err)
	}
	return nil
}

func defaultCharter() (*Charter, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// PlotGroups draws a grouped bar chart with the environment configuration.
func PlotGroups(groups []string, dense, sparse []float64, xlabel, ylabel, title string) error {
	c, err := defaultCharter()
	if err != nil {
		return err
	}
	return c.PlotGroups(context.Background(), groups, dense, sparse, xlabel, ylabel, title)
}

// SimpleBar draws a single-series bar chart with the environment configuration.
func SimpleBar(xlabels []string, ylabel, title string, data []float64) error {
	c, err := defaultCharter()
	if err != nil {
		return err
	}
	return c.SimpleBar(context.Background(), xlabels, ylabel, title, data)
}
