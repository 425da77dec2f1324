package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
)

// column describes one table column; counts are right aligned.
type column struct {
	title string
	count bool
}

// newTable returns a rounded table writer with the given columns. Header and
// footer text is printed as written.
func newTable(columns ...column) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault

	header := make(table.Row, 0, len(columns))
	configs := make([]table.ColumnConfig, 0, len(columns))
	for i, c := range columns {
		header = append(header, c.title)
		cfg := table.ColumnConfig{Number: i + 1, AlignHeader: text.AlignLeft}
		if c.count {
			cfg.Align = text.AlignRight
			cfg.AlignFooter = text.AlignRight
		}
		configs = append(configs, cfg)
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)
	return tw
}

// renderResults lists one line per record with a totals footer.
func renderResults(results []models.ImportResult) string {
	tw := newTable(
		column{title: "Record"},
		column{title: "Process title"},
		column{title: "Images", count: true},
		column{title: "Status"},
	)
	images, failed := 0, 0
	for _, r := range results {
		status := "ok"
		if r.Failed() {
			failed++
			status = strconv.Itoa(len(r.Errors)) + " problem(s)"
		}
		images += len(r.Images)
		tw.AppendRow(table.Row{r.RecordID, r.ProcessTitle, len(r.Images), status})
	}
	tw.AppendFooter(table.Row{len(results), "", images, strconv.Itoa(failed) + " failed"})
	return tw.Render()
}

// renderRecords lists the process records of phase 1 with their sheet rows.
func renderRecords(set *eadsheet.RecordSet) string {
	tw := newTable(
		column{title: "Record"},
		column{title: "Label"},
		column{title: "Row", count: true},
	)
	for _, r := range set.Records {
		tw.AppendRow(table.Row{r.ID, r.Label, r.Snapshot.Row.Number})
	}
	tw.AppendFooter(table.Row{strconv.Itoa(len(set.Records)) + " records", strconv.Itoa(set.Nodes) + " nodes", ""})
	return tw.Render()
}
