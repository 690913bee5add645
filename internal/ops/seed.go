package ops

import (
	"github.com/yanun0323/logs"

	"xroad/internal/errors"
	"xroad/internal/object"
)

// Seed creates the configured records and patches their fields. On error the records
// created so far are destroyed.
func Seed(f *object.Factory, specs []RecordSpec) ([]*object.Owned, error) {
	created := make([]*object.Owned, 0, len(specs))
	release := func() {
		for _, rec := range created {
			_ = rec.Destroy()
		}
	}

	for i, spec := range specs {
		rec, err := f.CreateAt(spec.Kind, spec.ID)
		if err != nil {
			release()
			return nil, errors.Wrapf(err, "seed record %d", i)
		}
		created = append(created, rec)

		if err := object.Patch(rec.Record, spec.Fields); err != nil {
			release()
			return nil, errors.Wrapf(err, "seed record %d", i)
		}
	}

	logs.Infof("seeded %d records", len(created))
	return created, nil
}
