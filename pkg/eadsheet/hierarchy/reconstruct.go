package hierarchy

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/archive"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/columns"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/config"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/parser"
	"golang.org/x/text/cases"
)

// Node type names the reconstructor relies on.
const (
	FolderType = "folder"
	FileType   = "file"
)

var (
	// ErrNoFolderType indicates the archive does not configure a folder node type.
	ErrNoFolderType = errors.New("archive has no folder node type")
	// ErrNoRoot indicates the archive has no root element to build under.
	ErrNoRoot = errors.New("archive has no root element")
)

// Result is the outcome of one reconstruction pass.
type Result struct {
	Root    *archive.Node
	Records []models.Record
	// Nodes counts the nodes created below the root.
	Nodes int
	// Skipped counts blank rows.
	Skipped int
	// Warnings lists recoverable problems such as duplicate identifiers.
	Warnings []string
}

// Reconstructor holds the state of one reconstruction pass.
type Reconstructor struct {
	archive archive.Archive
	tmpl    *config.Template
	logger  *slog.Logger

	types  []archive.NodeType
	folder *archive.NodeType
	file   *archive.NodeType
	fold   cases.Caser

	lastNode *archive.Node
	seen     map[string]int
}

// NewReconstructor resolves the node types of the archive. A missing folder
// type is a configuration error; a missing file type falls back to folder.
func NewReconstructor(a archive.Archive, tmpl *config.Template, logger *slog.Logger) (*Reconstructor, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Reconstructor{
		archive: a,
		tmpl:    tmpl,
		logger:  logger.With("component", "hierarchy"),
		types:   a.ConfiguredNodeTypes(),
		fold:    cases.Fold(),
	}
	for i := range r.types {
		switch r.types[i].Name {
		case FolderType:
			r.folder = &r.types[i]
		case FileType:
			r.file = &r.types[i]
		}
	}
	if r.folder == nil {
		return nil, ErrNoFolderType
	}
	if r.file == nil {
		r.file = r.folder
	}
	return r, nil
}

// Reconstruct consumes the data rows in order and grows the archive tree.
// Blank rows are skipped. Rows whose first non-blank cell is in column 0
// describe the root itself and never create a node.
func (r *Reconstructor) Reconstruct(rows []models.Row, header models.Header) (*Result, error) {
	root := r.archive.RootElement()
	if root == nil {
		return nil, ErrNoRoot
	}
	r.lastNode = root
	r.seen = map[string]int{}
	res := &Result{Root: root}

	for _, row := range rows {
		if row.Blank() {
			res.Skipped++
			continue
		}

		node := root
		if row.Depth > 0 {
			node = r.addNode(row, header)
			res.Nodes++
		}
		Project(node, row, header, r.tmpl, row.Bold)

		if node != root {
			r.checkUnique(node, row, res)
		}
		if row.Bold {
			res.Records = append(res.Records, r.record(node, row, header))
		}
	}

	r.archive.SetSelected(root)
	r.logger.Info("tree reconstructed",
		"nodes", res.Nodes,
		"records", len(res.Records),
		"skipped_rows", res.Skipped,
	)
	return res, nil
}

// addNode creates the node for row below the parent chosen from lastNode.
func (r *Reconstructor) addNode(row models.Row, header models.Header) *archive.Node {
	parent := r.parentFor(row.Depth)

	r.archive.SetSelected(parent)
	node := r.archive.AddChildToSelected()
	r.lastNode = node

	node.Type = r.nodeType(row, header)
	r.logger.Debug("node added",
		"row", row.Number,
		"indicator", row.Depth,
		"depth", node.Depth,
		"type", node.Type.Name,
	)
	return node
}

// parentFor picks the parent of a new node with depth indicator h.
func (r *Reconstructor) parentFor(h int) *archive.Node {
	last := r.lastNode
	switch {
	case h > last.Depth:
		return last
	case h == last.Depth:
		return last.Parent
	}

	parent := last.Parent
	for parent.Parent != nil && h <= parent.Depth {
		parent = parent.Parent
	}
	return parent
}

// nodeType chooses the node type: a matching discriminator column value,
// then file for process rows, then folder.
func (r *Reconstructor) nodeType(row models.Row, header models.Header) *archive.NodeType {
	if col := r.tmpl.NodeTypeColumn; col != "" {
		if name := parser.ColumnValue(row, header, col); !models.IsBlank(name) {
			want := r.fold.String(name)
			for i := range r.types {
				if r.fold.String(r.types[i].Name) == want {
					return &r.types[i]
				}
			}
		}
	}
	if row.Bold {
		return r.file
	}
	return r.folder
}

func (r *Reconstructor) record(node *archive.Node, row models.Row, header models.Header) models.Record {
	id := columns.Identifier(row, header, r.tmpl)
	if id == "" {
		id = row.First
	}
	return models.Record{
		ID:     id,
		Label:  row.First,
		NodeID: node.ID,
		Snapshot: models.Snapshot{
			Header: header,
			Row:    row,
		},
	}
}

func (r *Reconstructor) checkUnique(node *archive.Node, row models.Row, res *Result) {
	if prev, ok := r.seen[node.ID]; ok {
		msg := fmt.Sprintf("row %d: identifier %q already used in row %d", row.Number, node.ID, prev)
		res.Warnings = append(res.Warnings, msg)
		r.logger.Warn("duplicate node identifier", "row", row.Number, "id", node.ID, "first_row", prev)
		return
	}
	r.seen[node.ID] = row.Number
}
