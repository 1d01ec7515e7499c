package show

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pivolan/barplot/domain/models"
)

// DataTable renders the values behind a chart, one row per label.
func DataTable(layout models.Layout) string {
	t := table.NewWriter()
	if layout.Title != "" {
		t.SetTitle("%s", layout.Title)
	}

	header := table.Row{"Label"}
	for _, s := range layout.Series {
		header = append(header, s.Name)
	}
	t.AppendHeader(header)

	for i, label := range layout.Categories {
		row := table.Row{label}
		for _, s := range layout.Series {
			row = append(row, s.Values[i])
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleDefault)
	return t.Render()
}
