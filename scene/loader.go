package scene

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileLoader checks that the files a renderer fetches for each object are
// present under a client directory: svg/<name>.svg for extruded shapes and
// models/<name>.* for static meshes. Procedural objects need no files.
type FileLoader struct {
	root string
}

// NewFileLoader creates an instance of a FileLoader rooted at dir.
func NewFileLoader(dir string) *FileLoader {
	l := new(FileLoader)
	l.root = dir
	return l
}

// Load reports an error when the descriptor's asset is missing.
func (l *FileLoader) Load(ctx context.Context, d Descriptor) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch d.Kind {
	case ExtrudedShape:
		assetPath := filepath.Join(l.root, "svg", d.Name+".svg")
		if _, err := os.Stat(assetPath); err != nil {
			return err
		}
	case StaticMesh:
		matches, err := filepath.Glob(filepath.Join(l.root, "models", d.Name+".*"))
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no model for %s under %s", d.Name, filepath.Join(l.root, "models"))
		}
	}
	return nil
}
