package manifest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"modlist-builder/core/modlist"
)

// Reader loads launcher manifests from disk.
type Reader struct {
	cfg Config
}

// NewReader creates a new manifest reader.
func NewReader(cfg Config) *Reader {
	return &Reader{cfg: cfg}
}

// Path returns the manifest location the reader uses for family.
func (r *Reader) Path(family modlist.Family) (string, error) {
	return r.cfg.PathFor(family)
}

// Load reads the family's manifest and indexes it by workshop id.
func (r *Reader) Load(ctx context.Context, family modlist.Family) (map[uint64]modlist.InstalledItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := r.cfg.PathFor(family)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &modlist.DirectoryNotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open Steam.json: %w", err)
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}
