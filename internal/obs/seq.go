package obs

import (
	"sync/atomic"
	"time"
)

// SnapshotSeq hands out monotonically increasing snapshot numbers for dumps.
type SnapshotSeq struct {
	next uint64
}

// NewSnapshotSeq returns a sequence seeded with the given value. A zero seed uses the
// current time so numbers stay increasing across restarts.
func NewSnapshotSeq(seed uint64) *SnapshotSeq {
	if seed == 0 {
		seed = uint64(time.Now().UTC().UnixNano())
	}
	return &SnapshotSeq{next: seed}
}

// Next returns the next snapshot number.
func (s *SnapshotSeq) Next() uint64 {
	if s == nil {
		return 0
	}
	return atomic.AddUint64(&s.next, 1)
}
