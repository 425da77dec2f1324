package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
)

func snapshot(values ...string) models.Snapshot {
	return models.Snapshot{
		Header: models.Header{"Signatur": 2, "Jahr": 3},
		Row:    models.NewRow(4, values, nil),
	}
}

func TestGenerate(t *testing.T) {
	recipe := []string{"first", "'-'", "second"}
	snap := snapshot("A1", "B2")

	g := Generator{Separator: "_"}
	assert.Equal(t, "A1_-_B2", g.Generate(recipe, snap))
}

// Titles are cut at the head: the first LengthLimit runes are kept.
func TestGenerateTruncatesHead(t *testing.T) {
	recipe := []string{"first", "'-'", "second"}
	snap := snapshot("A1", "B2")

	g := Generator{Separator: "_", LengthLimit: 5}
	assert.Equal(t, "A1_-_", g.Generate(recipe, snap))

	g.LengthLimit = 7
	assert.Equal(t, "A1_-_B2", g.Generate(recipe, snap))
}

func TestGenerateColumnsAndEmptyTokens(t *testing.T) {
	snap := snapshot("Kaufbrief", "", "U 1", "1450")

	tests := []struct {
		recipe   []string
		expected string
	}{
		{[]string{"'Crown'", "Signatur", "Jahr"}, "Crown_U 1_1450"},
		{[]string{"second", "first"}, "U 1_Kaufbrief"},
		{[]string{"Missing", "first"}, "Kaufbrief"},
		{[]string{"''", "first"}, "Kaufbrief"},
		{[]string{"'a/b'", "C"}, "a_b_U 1"},
		{nil, ""},
	}
	g := Generator{Separator: "_"}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, g.Generate(tt.recipe, snap), "%v", tt.recipe)
	}
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "Müll", Truncate("Müller", 4))
	assert.Equal(t, "Müller", Truncate("Müller", 0))
	assert.Equal(t, "Müller", Truncate("Müller", 10))
}

func TestColumnRefs(t *testing.T) {
	refs := ColumnRefs([]string{"first", "'-'", "Signatur", "second", "", "C"})
	assert.Equal(t, []string{"Signatur", "C"}, refs)
}
