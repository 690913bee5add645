package obs

import (
	"sync/atomic"
	"time"
)

// Op is a runtime primitive counted by Metrics.
type Op uint8

const (
	_op_beg Op = iota
	OpCreate
	OpDestroy
	OpClone
	OpCopy
	OpLookup
	OpPrint
	OpIsSet
	OpGet
	OpSet
	OpReset
	OpDeref
	_op_end
)

var opNames = [...]string{
	OpCreate:  "create",
	OpDestroy: "destroy",
	OpClone:   "clone",
	OpCopy:    "copy",
	OpLookup:  "lookup",
	OpPrint:   "print",
	OpIsSet:   "is_set",
	OpGet:     "get",
	OpSet:     "set",
	OpReset:   "reset",
	OpDeref:   "deref",
	_op_end:   "",
}

func (o Op) IsAvailable() bool {
	return o > _op_beg && o < _op_end
}

func (o Op) String() string {
	if !o.IsAvailable() {
		return "unknown"
	}
	return opNames[o]
}

// Metrics collects lightweight counters and latency stats of runtime round trips.
type Metrics struct {
	opCounts    [_op_end]uint64
	opErrors    [_op_end]uint64
	brokenRefs  uint64
	nullHandles uint64

	callLatency LatencyStats
}

// LatencyStats aggregates duration samples in nanoseconds.
type LatencyStats struct {
	count uint64
	sum   uint64
	min   uint64
	max   uint64
}

// LatencySnapshot is a point-in-time view of latency stats.
type LatencySnapshot struct {
	Count uint64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

// Snapshot captures the current metrics values.
type Snapshot struct {
	OpCounts    map[Op]uint64
	OpErrors    map[Op]uint64
	BrokenRefs  uint64
	NullHandles uint64
	CallLatency LatencySnapshot
}

// NewMetrics allocates a metrics container.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// ObserveCall counts one runtime call and its latency.
func (m *Metrics) ObserveCall(op Op, d time.Duration, failed bool) {
	if m == nil || !op.IsAvailable() {
		return
	}
	atomic.AddUint64(&m.opCounts[op], 1)
	if failed {
		atomic.AddUint64(&m.opErrors[op], 1)
	}
	m.callLatency.Observe(d)
}

// IncBrokenRef records a dereference of a missing target.
func (m *Metrics) IncBrokenRef() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.brokenRefs, 1)
}

// IncNullHandle records a call on an unbound or destroyed handle.
func (m *Metrics) IncNullHandle() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.nullHandles, 1)
}

// Snapshot returns a copy of the current metrics values.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	opCounts := make(map[Op]uint64)
	opErrors := make(map[Op]uint64)
	for op := _op_beg + 1; op < _op_end; op++ {
		if v := atomic.LoadUint64(&m.opCounts[op]); v > 0 {
			opCounts[op] = v
		}
		if v := atomic.LoadUint64(&m.opErrors[op]); v > 0 {
			opErrors[op] = v
		}
	}
	return Snapshot{
		OpCounts:    opCounts,
		OpErrors:    opErrors,
		BrokenRefs:  atomic.LoadUint64(&m.brokenRefs),
		NullHandles: atomic.LoadUint64(&m.nullHandles),
		CallLatency: m.callLatency.Snapshot(),
	}
}

// Observe records a duration sample.
func (l *LatencyStats) Observe(d time.Duration) {
	if d < 0 {
		return
	}
	nanos := uint64(d)
	atomic.AddUint64(&l.count, 1)
	atomic.AddUint64(&l.sum, nanos)

	for {
		min := atomic.LoadUint64(&l.min)
		if min != 0 && nanos >= min {
			break
		}
		if atomic.CompareAndSwapUint64(&l.min, min, nanos) {
			break
		}
	}

	for {
		max := atomic.LoadUint64(&l.max)
		if nanos <= max {
			break
		}
		if atomic.CompareAndSwapUint64(&l.max, max, nanos) {
			break
		}
	}
}

// Snapshot returns the aggregated latency stats.
func (l *LatencyStats) Snapshot() LatencySnapshot {
	count := atomic.LoadUint64(&l.count)
	if count == 0 {
		return LatencySnapshot{}
	}
	sum := atomic.LoadUint64(&l.sum)
	min := atomic.LoadUint64(&l.min)
	max := atomic.LoadUint64(&l.max)
	return LatencySnapshot{
		Count: count,
		Min:   time.Duration(min),
		Max:   time.Duration(max),
		Avg:   time.Duration(sum / count),
	}
}
