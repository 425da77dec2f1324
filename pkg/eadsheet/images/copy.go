package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/eadsheet-go/pkg/eadsheet/models"
)

// MediaDir returns <importFolder>/<title>/images/<title>_media.
func MediaDir(importFolder, title string) string {
	return filepath.Join(importFolder, title, "images", title+"_media")
}

// Copy copies every manifest file into dest, creating it first. It returns
// the destination paths of the files copied before the first failure.
func Copy(m models.Manifest, dest string) ([]string, error) {
	if len(m.Files) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("create image directory: %w", err)
	}

	copied := make([]string, 0, len(m.Files))
	for _, src := range m.Files {
		dst := filepath.Join(dest, filepath.Base(src))
		if err := copyFile(src, dst); err != nil {
			return copied, fmt.Errorf("copy %s: %w", filepath.Base(src), err)
		}
		copied = append(copied, dst)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
