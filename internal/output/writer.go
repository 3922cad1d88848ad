package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write creates the planned files under baseDir, making module folders as
// needed. Each file is written to a temp file in its target directory and
// renamed into place, so a failed run never leaves a half-written module.
func Write(baseDir string, files []File) error {
	for _, f := range files {
		dir := filepath.Join(baseDir, f.Dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
		if err := writeAtomic(filepath.Join(dir, f.Name), []byte(f.Content)); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path(), err)
		}
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".storegen-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
