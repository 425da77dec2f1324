package hierarchy

import (
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/archive"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/columns"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/config"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
)

// Project writes the configured values of row into n. Values only land in
// fields the node already declares, each write replaces the previous value,
// and projecting the same row twice leaves the node unchanged.
func Project(n *archive.Node, row models.Row, header models.Header, tmpl *config.Template, process bool) {
	meta := tmpl.Metadata

	if first := meta.FirstField; first != nil && first.EadName != "" {
		setField(n, first.Level, first.EadName, row.First)
	}
	if second := tmpl.Second(); second != nil && second.EadName != "" {
		setField(n, second.Level, second.EadName, row.Second)
	}

	for _, col := range meta.AdditionalFields {
		value := columns.Value(row, header, col)
		setField(n, col.Level, col.EadName, value)
		if col.RulesetName == meta.MainTitleField && !models.IsBlank(value) {
			n.Label = value
		}
	}
	for _, p := range meta.Persons {
		setField(n, p.Level, p.EadName, columns.Person(row, header, p).DisplayName())
	}
	for _, c := range meta.Corporates {
		setField(n, c.Level, c.EadName, columns.Corporate(row, header, c).DisplayName())
	}
	for _, g := range meta.Groups {
		for _, col := range g.Columns {
			setField(n, col.Level, col.EadName, columns.Value(row, header, col))
		}
	}

	if id := columns.Identifier(row, header, tmpl); id != "" {
		n.ID = id
	}
	if process {
		n.ProcessTitle = n.ID
	}
	if models.IsBlank(n.Label) {
		n.Label = row.Second
	}
}

// setField overwrites the value of a declared field. Blank values, unknown
// levels and undeclared field names are ignored.
func setField(n *archive.Node, level int, name, value string) {
	if name == "" || models.IsBlank(value) {
		return
	}
	area, ok := archive.AreaForLevel(level)
	if !ok {
		return
	}
	if f := n.Field(area, name); f != nil {
		f.Value = value
	}
}
