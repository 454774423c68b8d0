// Package file implements the local filesystem source the converter reads
// password exports from.
package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultExport is the input path used when the caller does not supply one:
// a pwSafe tab-separated dump in the current working directory.
const DefaultExport = "pwsafe.txt"

// Local is a data source that opens an export file from the local disk.
type Local struct{ path string }

// NewLocal returns a Local source bound to path. An empty path falls back to
// DefaultExport resolved against the current working directory.
func NewLocal(path string) *Local {
	if path == "" {
		path = DefaultExport
	}
	return &Local{path: path}
}

// Path returns the resolved input path, made absolute when possible so that
// error messages and logs name an unambiguous file.
func (l *Local) Path() string {
	if abs, err := filepath.Abs(l.path); err == nil {
		return abs
	}
	return l.path
}

// Open opens the export for reading. A context that is already canceled is
// honored before the filesystem is touched. Filesystem errors are wrapped
// with the path while keeping errors.Is(err, os.ErrNotExist) working for
// callers that want to distinguish a missing export from a broken one.
func (l *Local) Open(ctx context.Context) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open export %s: %w", l.path, err)
	}
	return f, nil
}
