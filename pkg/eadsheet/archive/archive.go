package archive

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNoDatabase indicates the archive is used before CreateDatabase.
var ErrNoDatabase = errors.New("archive database not created")

// Archive grows the description tree. Implementations own the tree; callers
// select a parent and ask for a new child below it.
type Archive interface {
	CreateDatabase(name string) error
	RootElement() *Node
	ConfiguredNodeTypes() []NodeType
	SetSelected(n *Node)
	AddChildToSelected() *Node
	Selected() *Node
}

// Memory is an in-memory Archive. It is not safe for concurrent use.
type Memory struct {
	name      string
	schema    Schema
	nodeTypes []NodeType
	root      *Node
	selected  *Node
}

// NewMemory creates an in-memory archive with the given schema and node types.
func NewMemory(schema Schema, nodeTypes []string) *Memory {
	types := make([]NodeType, 0, len(nodeTypes))
	for _, name := range nodeTypes {
		types = append(types, NodeType{Name: name})
	}
	return &Memory{schema: schema, nodeTypes: types}
}

// Name returns the database name passed to CreateDatabase.
func (m *Memory) Name() string { return m.name }

// CreateDatabase starts a new, empty tree.
func (m *Memory) CreateDatabase(name string) error {
	m.name = name
	m.root = m.newNode(nil)
	m.root.Label = name
	m.selected = m.root
	return nil
}

// RootElement returns the tree root, nil before CreateDatabase.
func (m *Memory) RootElement() *Node { return m.root }

// ConfiguredNodeTypes returns the node types known to the archive.
func (m *Memory) ConfiguredNodeTypes() []NodeType {
	return append([]NodeType(nil), m.nodeTypes...)
}

// SetSelected selects the node new children are added to.
func (m *Memory) SetSelected(n *Node) { m.selected = n }

// Selected returns the selected node.
func (m *Memory) Selected() *Node { return m.selected }

// AddChildToSelected appends a new child to the selected node and selects it.
func (m *Memory) AddChildToSelected() *Node {
	parent := m.selected
	if parent == nil {
		parent = m.root
	}
	child := m.newNode(parent)
	parent.Children = append(parent.Children, child)
	m.selected = child
	return child
}

func (m *Memory) newNode(parent *Node) *Node {
	n := &Node{
		ID:     "id_" + uuid.NewString(),
		Parent: parent,
		Areas:  m.schema.newFields(),
	}
	if parent != nil {
		n.Depth = parent.Depth + 1
	}
	return n
}
