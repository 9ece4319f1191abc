package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir serves entries from files in a directory, one file per entry,
// using the pack producer's on-disk layout: "<name>.bin".
type Dir struct {
	root string
}

// NewDir returns a Dir rooted at the given directory.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// ReadEntry implements Store.
func (d *Dir) ReadEntry(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !ValidName(name) {
		return nil, fmt.Errorf("entry %q: %w", name, ErrInvalidName)
	}

	data, err := os.ReadFile(filepath.Join(d.root, name+FileExt))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("entry %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("entry %q: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("entry %q: %w", name, ErrEmpty)
	}
	return data, nil
}
