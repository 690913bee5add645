package store

import (
	"context"

	"github.com/bytedance/sonic"
)

var (
	encoder = sonic.ConfigFastest
	decoder = sonic.Config{UseNumber: true}.Froze()
)

// Row is one record snapshot. Fields holds the record dictionary without the id key.
type Row struct {
	Kind     string         `json:"kind"`
	ID       int64          `json:"id"`
	Snapshot uint64         `json:"snapshot"`
	Fields   map[string]any `json:"fields"`
}

// Sink receives record snapshots.
type Sink interface {
	Put(ctx context.Context, row Row) error
	Close() error
}

// Source reads record snapshots back.
type Source interface {
	List(ctx context.Context, kind string) ([]Row, error)
}
