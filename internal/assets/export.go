package assets

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

// Export writes the placeholder art and the embedded shapes document into
// dir under their manifest file names. Existing files are kept unless
// overwrite is set. It returns the paths written.
func Export(dir string, overwrite bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create asset directory: %w", err)
	}

	var written []string
	for _, e := range Manifest() {
		path := filepath.Join(dir, e.File)
		if !overwrite {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}

		var err error
		if e.Kind == KindJSON {
			err = os.WriteFile(path, embeddedShapes, 0o644)
		} else {
			err = encodePlaceholder(path, e)
		}
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func encodePlaceholder(path string, e Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if err := png.Encode(f, Placeholder(e)); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}
	return f.Close()
}
