package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/archive"
)

func sampleTree(t *testing.T) *archive.Node {
	t.Helper()
	a := archive.NewMemory(archive.DefaultSchema(), []string{"folder", "file"})
	require.NoError(t, a.CreateDatabase("Bestand"))
	types := a.ConfiguredNodeTypes()

	series := a.AddChildToSelected()
	series.Label = "Urkunden"
	series.Type = &types[0]
	series.Field(archive.IdentityStatement, "unitid").Value = "U"

	doc := a.AddChildToSelected()
	doc.Label = "Kaufbrief"
	doc.Type = &types[1]
	doc.ProcessTitle = doc.ID
	doc.Field(archive.Context, "origination").Value = "Rat"

	a.SetSelected(a.RootElement())
	other := a.AddChildToSelected()
	other.Label = "Akten"
	return a.RootElement()
}

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	root := sampleTree(t)

	require.NoError(t, s.Save(ctx, "Bestand", root))

	got, err := s.Load(ctx, "Bestand")
	require.NoError(t, err)

	assert.Equal(t, root.ID, got.ID)
	assert.Equal(t, "Bestand", got.Label)
	require.Len(t, got.Children, 2)
	assert.Equal(t, "Urkunden", got.Children[0].Label)
	assert.Equal(t, "Akten", got.Children[1].Label)

	series := got.Children[0]
	assert.Equal(t, "folder", series.Type.Name)
	assert.Equal(t, "U", series.Field(archive.IdentityStatement, "unitid").Value)
	assert.Same(t, got, series.Parent)

	require.Len(t, series.Children, 1)
	doc := series.Children[0]
	assert.Equal(t, "file", doc.Type.Name)
	assert.Equal(t, doc.ID, doc.ProcessTitle)
	assert.Equal(t, 2, doc.Depth)
	assert.Equal(t, "Rat", doc.Field(archive.Context, "origination").Value)
	assert.Len(t, doc.Areas[archive.Context], 5)
	assert.Empty(t, doc.Field(archive.Context, "bioghist").Value)

	assert.Nil(t, got.Children[1].Type)
}

func TestSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	root := sampleTree(t)
	require.NoError(t, s.Save(ctx, "Bestand", root))

	root.Children = root.Children[:1]
	require.NoError(t, s.Save(ctx, "Bestand", root))

	got, err := s.Load(ctx, "Bestand")
	require.NoError(t, err)
	assert.Len(t, got.Children, 1)

	names, err := s.Trees(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bestand"}, names)
}

func TestLoadMissing(t *testing.T) {
	s, _ := openStore(t)
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTreeNotFound)
}

func TestOpenLocked(t *testing.T) {
	_, path := openStore(t)
	_, err := Open(context.Background(), path)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestCloseReleasesLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(context.Background(), path)
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}
