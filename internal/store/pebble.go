package store

import (
	"bytes"
	"context"
	"encoding/binary"
	"sync"

	"github.com/cockroachdb/pebble"

	"xroad/internal/errors"
	"xroad/pkg/exception"
)

// PebbleSink keeps snapshots in a local pebble database.
//
// keys: r:<kind>:<8-byte big-endian id>
type PebbleSink struct {
	mu     sync.RWMutex
	db     *pebble.DB
	closed bool
}

// OpenPebble opens (or creates) the database under dir. A nil opts uses pebble defaults.
func OpenPebble(dir string, opts *pebble.Options) (*PebbleSink, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", dir)
	}
	return &PebbleSink{db: db}, nil
}

func kindPrefix(kind string) []byte {
	return append(append([]byte("r:"), kind...), ':')
}

func rowKey(kind string, id int64) []byte {
	key := kindPrefix(kind)
	return binary.BigEndian.AppendUint64(key, uint64(id))
}

func upperBound(prefix []byte) []byte {
	end := bytes.Clone(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

// Put writes row, replacing any earlier snapshot of the same record.
func (s *PebbleSink) Put(ctx context.Context, row Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encoder.Marshal(row)
	if err != nil {
		return errors.Wrapf(err, "marshal row %s/%d", row.Kind, row.ID)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return exception.ErrStoreClosed
	}
	if err := s.db.Set(rowKey(row.Kind, row.ID), data, pebble.Sync); err != nil {
		return errors.Wrapf(err, "save row %s/%d", row.Kind, row.ID)
	}
	return nil
}

// Get reads one snapshot.
func (s *PebbleSink) Get(kind string, id int64) (Row, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return Row{}, false, exception.ErrStoreClosed
	}

	val, closer, err := s.db.Get(rowKey(kind, id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return Row{}, false, nil
		}
		return Row{}, false, errors.Wrapf(err, "get row %s/%d", kind, id)
	}
	defer closer.Close()

	var row Row
	if err := decoder.Unmarshal(val, &row); err != nil {
		return Row{}, false, errors.Wrapf(err, "decode row %s/%d", kind, id)
	}
	return row, true, nil
}

// List returns every snapshot of kind in id order.
func (s *PebbleSink) List(ctx context.Context, kind string) ([]Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, exception.ErrStoreClosed
	}

	prefix := kindPrefix(kind)
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: upperBound(prefix),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "list rows %s", kind)
	}
	defer iter.Close()

	var rows []Row
	for iter.First(); iter.Valid(); iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var row Row
		if err := decoder.Unmarshal(iter.Value(), &row); err != nil {
			return nil, errors.Wrapf(err, "decode row under %s", kind)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Delete removes one snapshot. Missing rows are not an error.
func (s *PebbleSink) Delete(kind string, id int64) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return exception.ErrStoreClosed
	}
	if err := s.db.Delete(rowKey(kind, id), pebble.Sync); err != nil {
		return errors.Wrapf(err, "delete row %s/%d", kind, id)
	}
	return nil
}

func (s *PebbleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
