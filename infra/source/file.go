package source

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// FileSource reads a table from the local file system on every call to
// Rows. The path may carry a file:// prefix.
type FileSource struct {
	path   string
	format Format
}

// NewFileSource returns a source for the given path or file URL.
func NewFileSource(location string) *FileSource {
	p := strings.TrimPrefix(location, "file://")
	return &FileSource{path: p, format: DetectFormat(p)}
}

// Rows opens and decodes the file.
func (s *FileSource) Rows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()
	rows, err := Decode(s.format, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return rows, nil
}
