package mets

import (
	"fmt"

	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/columns"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/config"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
)

// Metadata type names the emitter writes regardless of the column mapping.
const (
	TypeImagePath  = "pathimagefiles"
	TypeNodeID     = "NodeId"
	TypeCollection = "singleDigCollection"
	ImagePath      = "./images/"
)

// Writer serializes a document to path.
type Writer interface {
	Write(path string, doc *Document) error
}

// Emitter builds and writes the descriptive document of records.
type Emitter struct {
	Prefs    *Prefs
	Template *config.Template
	// Collections are attached to every logical structure.
	Collections []string
	Writer      Writer
}

// Build assembles the document of rec. Unknown metadata types are dropped
// and returned as *MetadataError; an undeclared structure type fails the
// record.
func (e *Emitter) Build(rec models.Record) (*Document, []error, error) {
	meta := e.Template.Metadata
	for _, t := range []string{meta.DocType, meta.PhysicalType} {
		if !e.Prefs.HasDocStruct(t) {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDocStruct, t)
		}
	}

	b := &builder{prefs: e.Prefs}
	doc := &Document{
		Logical:  DocStruct{Type: meta.DocType},
		Physical: DocStruct{Type: meta.PhysicalType},
	}
	row, header := rec.Snapshot.Row, rec.Snapshot.Header

	b.add(&doc.Physical, TypeImagePath, ImagePath, "")

	if first := meta.FirstField; first != nil {
		b.add(&doc.Logical, first.RulesetName, row.First, "")
	}
	if second := e.Template.Second(); second != nil && !models.IsBlank(row.Second) {
		b.add(&doc.Logical, second.RulesetName, row.Second, "")
	}
	for _, col := range meta.AdditionalFields {
		if col.RulesetName == "" {
			continue
		}
		if v := columns.Value(row, header, col); !models.IsBlank(v) {
			b.add(&doc.Logical, col.RulesetName, v, authority(row, header, col))
		}
	}
	for _, p := range meta.Persons {
		b.person(&doc.Logical, p.RulesetName, columns.Person(row, header, p))
	}
	for _, c := range meta.Corporates {
		b.corporate(&doc.Logical, c.RulesetName, columns.Corporate(row, header, c))
	}
	for _, g := range meta.Groups {
		b.group(&doc.Logical, g, row, header)
	}

	if _, ok := e.Prefs.MetadataType(TypeNodeID); ok {
		nodeID := columns.Identifier(row, header, e.Template)
		if nodeID == "" {
			nodeID = rec.NodeID
		}
		b.add(&doc.Logical, TypeNodeID, nodeID, "")
	}
	for _, c := range e.Collections {
		b.add(&doc.Logical, TypeCollection, c, "")
	}

	return doc, b.errs, nil
}

// Emit builds the document of rec and writes it to path. Metadata errors are
// returned alongside a successful write.
func (e *Emitter) Emit(rec models.Record, path string) ([]error, error) {
	doc, problems, err := e.Build(rec)
	if err != nil {
		return nil, err
	}
	if err := e.Writer.Write(path, doc); err != nil {
		return problems, fmt.Errorf("write document: %w", err)
	}
	return problems, nil
}

func authority(row models.Row, header models.Header, col config.MetadataColumn) string {
	if col.AuthorityColumn == "" {
		return ""
	}
	return columns.Value(row, header, config.MetadataColumn{Column: col.AuthorityColumn})
}

// builder checks types against the prefs while a document is assembled.
type builder struct {
	prefs *Prefs
	errs  []error
}

func (b *builder) check(name, kind string) bool {
	if name == "" {
		return false
	}
	t, ok := b.prefs.MetadataType(name)
	if !ok {
		b.errs = append(b.errs, &MetadataError{Type: name, Reason: "not defined in ruleset"})
		return false
	}
	if b.prefs != nil && t.Kind != kind {
		b.errs = append(b.errs, &MetadataError{Type: name, Reason: fmt.Sprintf("kind %q expected, ruleset declares %q", kind, t.Kind)})
		return false
	}
	return true
}

func (b *builder) add(ds *DocStruct, name, value, auth string) {
	if models.IsBlank(value) || !b.check(name, KindValue) {
		return
	}
	ds.Metadata = append(ds.Metadata, Metadata{Type: name, Value: value, Authority: auth})
}

func (b *builder) person(ds *DocStruct, role string, p models.Person) {
	if p.Empty() || !b.check(role, KindPerson) {
		return
	}
	ds.Persons = append(ds.Persons, Person{Role: role, Person: p})
}

func (b *builder) corporate(ds *DocStruct, role string, c models.Corporate) {
	if c.Empty() || !b.check(role, KindCorporate) {
		return
	}
	ds.Corporates = append(ds.Corporates, Corporate{Role: role, Corporate: c})
}

func (b *builder) group(ds *DocStruct, g config.GroupColumns, row models.Row, header models.Header) {
	group := Group{Type: g.RulesetName}
	for _, col := range g.Columns {
		if v := columns.Value(row, header, col); !models.IsBlank(v) && col.RulesetName != "" {
			group.Metadata = append(group.Metadata, Metadata{Type: col.RulesetName, Value: v, Authority: authority(row, header, col)})
		}
	}
	if len(group.Metadata) == 0 || !b.check(g.RulesetName, KindGroup) {
		return
	}
	ds.Groups = append(ds.Groups, group)
}
