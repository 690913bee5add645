package object

import (
	"github.com/yanun0323/logs"

	"xroad/internal/errors"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

// Walk visits rec and the records reachable through its reference fields, breadth first,
// up to depth hops. A broken reference is logged and skipped. Each record is visited once.
// visit returning false stops the walk.
func Walk(rec *Record, depth int, visit func(rec *Record, level int) bool) error {
	type item struct {
		rec   *Record
		level int
	}

	seen := make(map[schema.ObjectRef]struct{})
	root, err := rec.Ref()
	if err != nil {
		return errors.Wrap(err, "walk")
	}
	seen[root] = struct{}{}

	queue := []item{{rec: rec}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if !visit(cur.rec, cur.level) {
			return nil
		}
		if cur.level >= depth {
			continue
		}

		for _, spec := range cur.rec.Schema().RefFields() {
			target, ok, err := cur.rec.Resolve(spec.Name)
			if err != nil {
				if errors.Is(err, exception.ErrBrokenRef) {
					logs.Errorf("walk %s, err: %+v", cur.rec.Schema().Name, err)
					continue
				}
				return errors.Wrapf(err, "walk %s.%s", cur.rec.Schema().Name, spec.Name)
			}
			if !ok {
				continue
			}

			ref, err := target.Ref()
			if err != nil {
				return errors.Wrap(err, "walk")
			}
			if _, ok := seen[ref]; ok {
				continue
			}
			seen[ref] = struct{}{}
			queue = append(queue, item{rec: target, level: cur.level + 1})
		}
	}
	return nil
}
