package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pivolan/barplot/charts"
	"github.com/pivolan/barplot/config"
	"github.com/pivolan/barplot/domain/models"
	"github.com/pivolan/barplot/plot"
	"github.com/pivolan/barplot/show"
	"github.com/spf13/cobra"
)

type options struct {
	backend string
	format  string
	out     string
	noOpen  bool
	table   bool
	debug   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "barplot",
		Short:         "Draw grouped and single-series bar charts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.backend, "backend", "", "chart backend: gochart, gonum or echarts (env CHART_BACKEND)")
	f.StringVar(&opts.format, "format", "", "output format, defaults to the backend's first format (env CHART_FORMAT)")
	f.StringVar(&opts.out, "out", "", "directory for rendered charts (env CHART_OUTPUT_DIR)")
	f.BoolVar(&opts.noOpen, "no-open", false, "only save the chart, do not open a viewer")
	f.BoolVar(&opts.table, "table", false, "print the chart data as a table")
	f.BoolVar(&opts.debug, "debug", false, "debug logging")

	root.AddCommand(newGroupsCmd(opts), newBarCmd(opts))
	return root
}

func newGroupsCmd(opts *options) *cobra.Command {
	var req models.GroupedRequest
	cmd := &cobra.Command{
		Use:     "groups",
		Short:   "Dense and sparse values side by side for every group",
		Example: `  barplot groups --groups A,B,C --dense 1,2,3 --sparse 3,2,1 --xlabel group --ylabel value --title "Dense vs Sparse"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := plot.BuildGroupedLayout(req)
			if err != nil {
				return err
			}
			return opts.show(cmd, layout)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&req.Groups, "groups", nil, "group labels, left to right")
	f.Float64SliceVar(&req.Dense, "dense", nil, "dense series, one value per group")
	f.Float64SliceVar(&req.Sparse, "sparse", nil, "sparse series, one value per group")
	f.StringVar(&req.XLabel, "xlabel", "", "x axis title")
	f.StringVar(&req.YLabel, "ylabel", "", "y axis title")
	f.StringVar(&req.Title, "title", "", "chart title")
	_ = cmd.MarkFlagRequired("groups")
	return cmd
}

func newBarCmd(opts *options) *cobra.Command {
	var req models.SingleRequest
	cmd := &cobra.Command{
		Use:     "bar",
		Short:   "One bar per label",
		Example: `  barplot bar --labels x,y --data 5,10 --ylabel count --title Counts`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := plot.BuildSingleLayout(req)
			if err != nil {
				return err
			}
			return opts.show(cmd, layout)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&req.Labels, "labels", nil, "bar labels, left to right")
	f.Float64SliceVar(&req.Data, "data", nil, "one value per label")
	f.StringVar(&req.YLabel, "ylabel", "", "y axis title")
	f.StringVar(&req.Title, "title", "", "chart title")
	_ = cmd.MarkFlagRequired("labels")
	return cmd
}

func (o *options) show(cmd *cobra.Command, layout models.Layout) error {
	if o.table {
		fmt.Fprintln(cmd.OutOrStdout(), show.DataTable(layout))
	}
	c, err := o.charter()
	if err != nil {
		return err
	}
	return c.Show(cmd.Context(), layout)
}

// charter applies command line flags on top of the environment configuration.
func (o *options) charter() (*charts.Charter, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, err
	}
	if o.backend != "" {
		cfg.Backend = o.backend
	}
	if o.format != "" {
		cfg.Format = o.format
	}
	if o.out != "" {
		cfg.OutputDir = o.out
	}
	if o.noOpen {
		cfg.OpenViewer = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debug("configuration", "backend", cfg.Backend, "format", cfg.Format, "dir", cfg.OutputDir, "telegram", cfg.Telegram())
	return charts.New(cfg)
}
