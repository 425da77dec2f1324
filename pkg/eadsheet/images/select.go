package images

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/config"
	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
)

// Rules controls which files of a folder are selected.
type Rules struct {
	EditedSuffix string
	Excluded     string
	Extensions   []string
}

// RulesFrom converts template image rules.
func RulesFrom(r config.ImageRules) Rules {
	return Rules{EditedSuffix: r.EditedSuffix, Excluded: r.Excluded, Extensions: r.Extensions}
}

// Accept reports whether a file name passes the format filter.
func (r Rules) Accept(name string) bool {
	if r.Excluded != "" && strings.Contains(name, r.Excluded) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range r.Extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// Dedup drops files for which a preferred alternative exists in names. The
// order of the remaining names is preserved.
func (r Rules) Dedup(names []string) []string {
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[strings.ToLower(n)] = true
	}

	kept := make([]string, 0, len(names))
	for _, name := range names {
		ext := strings.ToLower(filepath.Ext(name))
		stem := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		edited := r.EditedSuffix != "" && strings.Contains(name, r.EditedSuffix)

		if !edited && r.EditedSuffix != "" && (ext == ".jpg" || ext == ".tif") &&
			present[stem+strings.ToLower(r.EditedSuffix)+".tif"] {
			continue
		}
		if ext == ".jpg" && present[stem+".tif"] {
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

// Select lists the files of dir that pass the filter and the dedup rules.
func Select(dir string, rules Rules) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && rules.Accept(e.Name()) {
			names = append(names, e.Name())
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, name := range rules.Dedup(names) {
		files = append(files, filepath.Join(abs, name))
	}
	return files, nil
}

// Resolve builds the manifest of a record from the directory index. A record
// without an image folder gets an empty manifest.
func Resolve(idx *Index, recordID string, rules Rules) (models.Manifest, error) {
	m := models.Manifest{RecordID: recordID}
	dir, ok := idx.Lookup(recordID)
	if !ok {
		return m, nil
	}
	files, err := Select(dir, rules)
	if err != nil {
		return m, err
	}
	m.Dir = dir
	m.Files = files
	return m, nil
}
