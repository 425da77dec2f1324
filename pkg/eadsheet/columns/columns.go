// Package columns extracts configured values from a normalized row.
package columns

import (
	"strings"

	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/config"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/parser"
)

// Value returns the row value of a metadata column.
func Value(row models.Row, header models.Header, col config.MetadataColumn) string {
	return parser.ColumnValue(row, header, col.Column)
}

// Identifier resolves the identifier of a row. Flagged mappings are checked
// in a fixed order: first field, second field, then additional fields in
// configured order. Every flagged mapping with a non-blank value overwrites
// the previous one, so the last configured identifier wins.
func Identifier(row models.Row, header models.Header, tmpl *config.Template) string {
	var id string
	if first := tmpl.Metadata.FirstField; first != nil && first.Identifier && !models.IsBlank(row.First) {
		id = row.First
	}
	if second := tmpl.Second(); second != nil && second.Identifier && !models.IsBlank(row.Second) {
		id = row.Second
	}
	for _, col := range tmpl.Metadata.AdditionalFields {
		if !col.Identifier {
			continue
		}
		if v := Value(row, header, col); !models.IsBlank(v) {
			id = v
		}
	}
	return id
}

// Person reads a person name, splitting a single column when configured.
func Person(row models.Row, header models.Header, p config.PersonColumn) models.Person {
	person := models.Person{
		Authority: parser.ColumnValue(row, header, p.AuthorityColumn),
	}
	name := parser.ColumnValue(row, header, p.NameColumn)
	if !p.SplitName {
		person.LastName = strings.TrimSpace(name)
		person.FirstName = strings.TrimSpace(parser.ColumnValue(row, header, p.FirstNameColumn))
		return person
	}

	before, after, found := strings.Cut(name, p.SplitChar)
	before, after = strings.TrimSpace(before), strings.TrimSpace(after)
	switch {
	case !found:
		person.LastName = before
	case p.FirstNameIsFirst:
		person.FirstName, person.LastName = before, after
	default:
		person.LastName, person.FirstName = before, after
	}
	return person
}

// Corporate reads a corporate name, splitting a single column when configured.
func Corporate(row models.Row, header models.Header, c config.CorporateColumn) models.Corporate {
	corp := models.Corporate{
		Authority: parser.ColumnValue(row, header, c.AuthorityColumn),
	}
	name := parser.ColumnValue(row, header, c.NameColumn)
	if !c.SplitName {
		corp.Name = strings.TrimSpace(name)
		corp.SubName = strings.TrimSpace(parser.ColumnValue(row, header, c.SubNameColumn))
		corp.PartName = strings.TrimSpace(parser.ColumnValue(row, header, c.PartNameColumn))
		return corp
	}

	parts := strings.SplitN(name, c.SplitChar, 3)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	corp.Name = parts[0]
	if len(parts) > 1 {
		corp.SubName = parts[1]
	}
	if len(parts) > 2 {
		corp.PartName = parts[2]
	}
	return corp
}
