// Package archive models the archive description tree and the collaborator
// interface used to grow it.
package archive

// Area identifies one of the seven description areas of a node.
type Area int

const (
	IdentityStatement Area = iota
	Context
	ContentAndStructure
	AccessAndUse
	AlliedMaterials
	Notes
	DescriptionControl
)

// AreaCount is the number of description areas.
const AreaCount = 7

var areaNames = [AreaCount]string{
	"identity",
	"context",
	"content",
	"access",
	"allied",
	"notes",
	"control",
}

func (a Area) String() string {
	if a < 0 || int(a) >= AreaCount {
		return "unknown"
	}
	return areaNames[a]
}

// AreaForLevel maps a configured level (1-7) to its area.
func AreaForLevel(level int) (Area, bool) {
	if level < 1 || level > AreaCount {
		return 0, false
	}
	return Area(level - 1), true
}

// Field is a named single-value metadata field.
type Field struct {
	Name  string
	Value string
}

// NodeType tags a node as folder, file or another configured kind.
type NodeType struct {
	Name string
}

// Node is one entry of the archive description tree.
type Node struct {
	ID           string
	Label        string
	Depth        int
	Parent       *Node
	Children     []*Node
	Type         *NodeType
	ProcessTitle string
	Areas        [AreaCount][]*Field
}

// Field returns the declared field with the given name in an area.
func (n *Node) Field(area Area, name string) *Field {
	for _, f := range n.Areas[area] {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Walk visits n and all its descendants depth-first in child order.
func (n *Node) Walk(fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}
