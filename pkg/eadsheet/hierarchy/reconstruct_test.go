package hierarchy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/archive"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/config"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
)

// indented builds a row whose first non-blank cell sits in column depth.
func indented(number, depth int, bold bool, values ...string) models.Row {
	cells := make([]string, depth, depth+len(values))
	cells = append(cells, values...)
	flags := make([]bool, len(cells))
	flags[depth] = bold
	return models.NewRow(number, cells, flags)
}

func testTemplate() *config.Template {
	return &config.Template{
		Name:      "*",
		NodeTypes: []string{"folder", "file", "image"},
		Metadata: config.Metadata{
			FirstField:     &config.MetadataColumn{RulesetName: "CatalogIDDigital", EadName: "unitid", Level: 1, Identifier: true},
			SecondField:    &config.SecondColumn{Enabled: true, MetadataColumn: config.MetadataColumn{RulesetName: "TitleDocMain", EadName: "unittitle", Level: 1}},
			MainTitleField: "TitleDocMain",
		},
	}
}

func newReconstructor(t *testing.T, tmpl *config.Template) (*Reconstructor, *archive.Memory) {
	t.Helper()
	m := archive.NewMemory(archive.DefaultSchema(), tmpl.NodeTypes)
	require.NoError(t, m.CreateDatabase("crown"))
	r, err := NewReconstructor(m, tmpl, nil)
	require.NoError(t, err)
	return r, m
}

func assertDepthInvariant(t *testing.T, root *archive.Node) {
	t.Helper()
	require.NoError(t, root.Walk(func(n *archive.Node) error {
		for _, c := range n.Children {
			assert.Same(t, n, c.Parent)
			assert.Equal(t, n.Depth+1, c.Depth, "node %s", c.ID)
		}
		return nil
	}))
}

func TestReconstructReattachesToNearestShallowerAncestor(t *testing.T) {
	r, _ := newReconstructor(t, testTemplate())
	rows := []models.Row{
		indented(2, 1, false, "1", "Urkunden"),
		indented(3, 2, false, "1.1", "Kaufbriefe"),
		indented(4, 3, false, "1.1.1", "Einzelstücke"),
		indented(5, 1, false, "2", "Akten"),
	}

	res, err := r.Reconstruct(rows, nil)
	require.NoError(t, err)

	root := res.Root
	require.Len(t, root.Children, 2)
	first, fourth := root.Children[0], root.Children[1]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", fourth.ID)
	assert.Equal(t, 1, fourth.Depth)
	assert.Equal(t, "1.1.1", first.Children[0].Children[0].ID)
	assert.Empty(t, first.Children[0].Children[0].Children)
	assert.Equal(t, 4, res.Nodes)
	assertDepthInvariant(t, root)
}

func TestReconstructDepthIsParentRelative(t *testing.T) {
	r, _ := newReconstructor(t, testTemplate())
	// both rows are indented to column 2; the first lands at depth 1, so the
	// second is deeper than the last node and becomes its child
	rows := []models.Row{
		indented(2, 2, false, "a"),
		indented(3, 2, false, "b"),
		indented(4, 1, false, "c"),
	}

	res, err := r.Reconstruct(rows, nil)
	require.NoError(t, err)

	root := res.Root
	require.Len(t, root.Children, 2)
	a := root.Children[0]
	assert.Equal(t, 1, a.Depth)
	require.Len(t, a.Children, 1)
	assert.Equal(t, "b", a.Children[0].ID)
	assert.Equal(t, 2, a.Children[0].Depth)
	assert.Equal(t, "c", root.Children[1].ID)
	assertDepthInvariant(t, root)
}

func TestReconstructSiblingsAndDeepUnwind(t *testing.T) {
	r, _ := newReconstructor(t, testTemplate())
	depths := []int{1, 2, 2, 3, 4, 3, 2, 1, 2, 5, 1}
	rows := make([]models.Row, 0, len(depths))
	for i, d := range depths {
		rows = append(rows, indented(i+1, d, false, "n"+string(rune('a'+i))))
	}

	res, err := r.Reconstruct(rows, nil)
	require.NoError(t, err)

	root := res.Root
	assert.Equal(t, len(depths), res.Nodes)
	assertDepthInvariant(t, root)

	require.Len(t, root.Children, 3)
	na := root.Children[0]
	require.Len(t, na.Children, 3) // nb, nc, ng
	assert.Equal(t, []string{"nb", "nc", "ng"}, ids(na.Children))
	nc := na.Children[1]
	assert.Equal(t, []string{"nd", "nf"}, ids(nc.Children))
	assert.Equal(t, []string{"ne"}, ids(nc.Children[0].Children))
	nh := root.Children[1]
	assert.Equal(t, []string{"ni"}, ids(nh.Children))
	assert.Equal(t, []string{"nj"}, ids(nh.Children[0].Children))
	assert.Equal(t, "nk", root.Children[2].ID)
}

func ids(nodes []*archive.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func TestReconstructRootRow(t *testing.T) {
	r, m := newReconstructor(t, testTemplate())
	rows := []models.Row{
		indented(2, 0, false, "BESTAND-7", "Urkundenbestand"),
		indented(3, 1, false, "1", "Urkunden"),
		indented(4, 0, false, "BESTAND-8", "Neuer Titel"),
		indented(5, 2, false, "1.1", "Kaufbriefe"),
	}

	res, err := r.Reconstruct(rows, nil)
	require.NoError(t, err)

	root := m.RootElement()
	assert.Equal(t, 2, res.Nodes)
	assert.Equal(t, "BESTAND-8", root.ID)
	assert.Equal(t, "Neuer Titel", root.Field(archive.IdentityStatement, "unittitle").Value)
	// the root row does not move the last node
	require.Len(t, root.Children, 1)
	assert.Equal(t, []string{"1.1"}, ids(root.Children[0].Children))
	assert.Same(t, root, m.Selected())
}

func TestReconstructSkipsBlankRows(t *testing.T) {
	r, _ := newReconstructor(t, testTemplate())
	rows := []models.Row{
		indented(2, 1, false, "1"),
		models.NewRow(3, []string{"", "  ", ""}, nil),
		models.NewRow(4, nil, nil),
		indented(5, 1, false, "2"),
	}

	res, err := r.Reconstruct(rows, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, 2, res.Nodes)
	assert.Empty(t, res.Records)
}

func TestReconstructRecordsAndNodeTypes(t *testing.T) {
	tmpl := testTemplate()
	tmpl.NodeTypeColumn = "Typ"
	tmpl.Metadata.AdditionalFields = []config.MetadataColumn{{Column: "Signatur", RulesetName: "shelfmark", EadName: "unitid", Level: 1, Identifier: true}}
	r, _ := newReconstructor(t, tmpl)
	header := models.Header{"Signatur": 4, "Typ": 5}

	rows := []models.Row{
		{Number: 2, Cells: []string{"", "Urkunden"}, First: "Urkunden", Depth: 1},
		{Number: 3, Cells: []string{"", "", "Kaufbrief", "", "U 1"}, First: "Kaufbrief", Second: "U 1", Depth: 2, Bold: true},
		{Number: 4, Cells: []string{"", "", "Foto", "", "U 2", "IMAGE"}, First: "Foto", Second: "U 2", Depth: 2, Bold: true},
		{Number: 5, Cells: []string{"", "", "Mappe", "", "", "unbekannt"}, First: "Mappe", Depth: 2},
	}

	res, err := r.Reconstruct(rows, header)
	require.NoError(t, err)

	folder := res.Root.Children[0]
	assert.Equal(t, FolderType, folder.Type.Name)
	require.Len(t, folder.Children, 3)
	assert.Equal(t, FileType, folder.Children[0].Type.Name)
	assert.Equal(t, "image", folder.Children[1].Type.Name)
	assert.Equal(t, FolderType, folder.Children[2].Type.Name)

	require.Len(t, res.Records, 2)
	rec := res.Records[0]
	assert.Equal(t, "U 1", rec.ID)
	assert.Equal(t, "Kaufbrief", rec.Label)
	assert.Equal(t, folder.Children[0].ID, rec.NodeID)
	assert.Equal(t, header, rec.Snapshot.Header)
	assert.Equal(t, 3, rec.Snapshot.Row.Number)
	assert.Equal(t, "U 1", folder.Children[0].ProcessTitle)
}

func TestReconstructRecordIDFallsBackToFirstValue(t *testing.T) {
	tmpl := testTemplate()
	tmpl.Metadata.FirstField.Identifier = false
	r, _ := newReconstructor(t, tmpl)

	res, err := r.Reconstruct([]models.Row{indented(2, 1, true, "Kaufbrief", "1450")}, nil)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Kaufbrief", res.Records[0].ID)
	assert.NotEqual(t, "Kaufbrief", res.Records[0].NodeID)
}

func TestReconstructWarnsOnDuplicateIdentifiers(t *testing.T) {
	r, _ := newReconstructor(t, testTemplate())
	rows := []models.Row{
		indented(2, 1, false, "U 1"),
		indented(3, 1, false, "U 1"),
	}

	res, err := r.Reconstruct(rows, nil)
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "row 3")
}

func TestNewReconstructorRequiresFolderType(t *testing.T) {
	m := archive.NewMemory(archive.DefaultSchema(), []string{"file"})
	require.NoError(t, m.CreateDatabase("crown"))

	_, err := NewReconstructor(m, testTemplate(), nil)
	assert.True(t, errors.Is(err, ErrNoFolderType))
}

func TestNewReconstructorFileFallsBackToFolder(t *testing.T) {
	tmpl := testTemplate()
	tmpl.NodeTypes = []string{"folder"}
	r, _ := newReconstructor(t, tmpl)

	res, err := r.Reconstruct([]models.Row{indented(2, 1, true, "U 1")}, nil)
	require.NoError(t, err)
	assert.Equal(t, FolderType, res.Root.Children[0].Type.Name)
}

func TestReconstructWithoutDatabase(t *testing.T) {
	m := archive.NewMemory(archive.DefaultSchema(), []string{"folder"})
	r, err := NewReconstructor(m, testTemplate(), nil)
	require.NoError(t, err)

	_, err = r.Reconstruct(nil, nil)
	assert.True(t, errors.Is(err, ErrNoRoot))
}
