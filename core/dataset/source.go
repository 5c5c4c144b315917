package dataset

import "context"

// Source yields the raw cells of a tabular resource, header row first.
type Source interface {
	Rows(ctx context.Context) ([][]string, error)
}

// StaticSource serves rows held in memory.
type StaticSource [][]string

// Rows returns the held rows.
func (s StaticSource) Rows(context.Context) ([][]string, error) { return s, nil }
