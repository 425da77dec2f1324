package images

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// MaxDepth bounds the directory walk below the image root.
const MaxDepth = 10

// Index maps directory names to their paths. It is read-only after
// BuildIndex returns and may be shared between goroutines.
type Index struct {
	dirs map[string]string
	// Duplicates lists directory names seen more than once; the path found
	// last in walk order is kept.
	Duplicates []string
}

// BuildIndex walks root up to MaxDepth levels and indexes every directory by
// its base name. A missing root yields an empty index.
func BuildIndex(root string) (*Index, error) {
	idx := &Index{dirs: make(map[string]string)}
	if root == "" {
		return idx, nil
	}
	root = filepath.Clean(root)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if depth(root, path) > MaxDepth {
			return filepath.SkipDir
		}
		name := d.Name()
		if _, ok := idx.dirs[name]; ok {
			idx.Duplicates = append(idx.Duplicates, name)
		}
		idx.dirs[name] = path
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Lookup returns the directory indexed under name.
func (i *Index) Lookup(name string) (string, bool) {
	if i == nil || name == "" {
		return "", false
	}
	p, ok := i.dirs[name]
	return p, ok
}

// Len returns the number of indexed directories.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.dirs)
}

func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
