package store

import (
	"context"
	"maps"

	"github.com/yanun0323/logs"

	"xroad/internal/errors"
	"xroad/internal/node"
	"xroad/internal/obs"
	"xroad/internal/object"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

// Report summarizes one dump run.
type Report struct {
	Snapshot uint64
	Counts   map[schema.RecordKind]int
	Total    int
}

// Dumper snapshots every printable record held by a cache into a sink.
type Dumper struct {
	f     *object.Factory
	cache node.Cache
	seq   *obs.SnapshotSeq
}

// NewDumper binds a dumper to f and cache. A nil seq uses a time seeded sequence.
func NewDumper(f *object.Factory, cache node.Cache, seq *obs.SnapshotSeq) *Dumper {
	if seq == nil {
		seq = obs.NewSnapshotSeq(0)
	}
	return &Dumper{f: f, cache: cache, seq: seq}
}

// Dump writes one Row per printable record, kind by kind in id order. Every row of a run
// carries the same snapshot number.
func (d *Dumper) Dump(ctx context.Context, sink Sink) (Report, error) {
	report := Report{
		Snapshot: d.seq.Next(),
		Counts:   make(map[schema.RecordKind]int),
	}

	for _, kind := range d.f.Registry().PrintableKinds() {
		var putErr error
		err := d.f.Each(d.cache, kind, func(rec *object.Record) bool {
			row, err := toRow(rec, report.Snapshot)
			if err != nil {
				putErr = err
				return false
			}
			if err := sink.Put(ctx, row); err != nil {
				putErr = err
				return false
			}
			report.Counts[kind]++
			report.Total++
			return true
		})
		if err == nil {
			err = putErr
		}
		if err != nil {
			return report, errors.Wrapf(err, "dump %s", kind)
		}
	}

	logs.Infof("dumped %d records over %d kinds, snapshot %d", report.Total, len(report.Counts), report.Snapshot)
	return report, nil
}

func toRow(rec *object.Record, snapshot uint64) (Row, error) {
	dict, err := rec.ToDict()
	if err != nil {
		return Row{}, err
	}
	id, err := rec.ID()
	if err != nil {
		return Row{}, err
	}
	fields := maps.Clone(dict)
	delete(fields, object.DictID)
	return Row{Kind: rec.Kind().String(), ID: id, Snapshot: snapshot, Fields: fields}, nil
}

// Restore recreates the records of kinds from src. Rows of kinds that are not creatable
// are skipped. On error the records restored so far are destroyed.
func Restore(ctx context.Context, f *object.Factory, src Source, kinds ...schema.RecordKind) ([]*object.Owned, error) {
	var restored []*object.Owned
	release := func() {
		for _, rec := range restored {
			_ = rec.Destroy()
		}
	}

	skipped := 0
	for _, kind := range kinds {
		s, ok := f.Registry().Schema(kind)
		if !ok {
			release()
			return nil, errors.Wrapf(exception.ErrUnknownRecordKind, "restore %s", kind)
		}

		rows, err := src.List(ctx, s.Name)
		if err != nil {
			release()
			return nil, errors.Wrapf(err, "restore %s", s.Name)
		}
		if !s.Creatable {
			skipped += len(rows)
			continue
		}

		for _, row := range rows {
			rec, err := f.CreateAt(kind, row.ID)
			if err != nil {
				release()
				return nil, errors.Wrapf(err, "restore %s/%d", s.Name, row.ID)
			}
			restored = append(restored, rec)
			if err := object.Patch(rec.Record, row.Fields); err != nil {
				release()
				return nil, errors.Wrapf(err, "restore %s/%d", s.Name, row.ID)
			}
		}
	}

	logs.Infof("restored %d records, skipped %d", len(restored), skipped)
	return restored, nil
}
