package obs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xroad/internal/node/memnode"
	"xroad/internal/object"
	"xroad/internal/schema"
)

func TestInstrument(t *testing.T) {
	m := NewMetrics()
	rt := Instrument(memnode.New(schema.Default()), m)
	f := object.NewFactory(rt, schema.Default())

	order, err := f.Create(schema.KindOrder)
	require.NoError(t, err)
	instr, err := f.Create(schema.KindInstr)
	require.NoError(t, err)

	require.NoError(t, order.Set("qty", int64(5)))
	_, err = order.Get("qty")
	require.NoError(t, err)
	require.NoError(t, order.SetReference("instr", instr))
	require.NoError(t, instr.Destroy())

	_, _, err = order.Resolve("instr")
	require.Error(t, err)
	_, err = instr.Get("alias")
	require.Error(t, err)

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.OpCounts[OpCreate])
	assert.Equal(t, uint64(2), snap.OpCounts[OpSet])
	assert.Equal(t, uint64(1), snap.OpCounts[OpDestroy])
	assert.Equal(t, uint64(1), snap.OpCounts[OpDeref])
	assert.Equal(t, uint64(1), snap.OpErrors[OpDeref])
	assert.Equal(t, uint64(1), snap.BrokenRefs)
	assert.NotZero(t, snap.CallLatency.Count)
}

func TestLatencyStats(t *testing.T) {
	var l LatencyStats
	l.Observe(3 * time.Millisecond)
	l.Observe(time.Millisecond)
	l.Observe(-time.Second)

	snap := l.Snapshot()
	assert.Equal(t, uint64(2), snap.Count)
	assert.Equal(t, time.Millisecond, snap.Min)
	assert.Equal(t, 3*time.Millisecond, snap.Max)
	assert.Equal(t, 2*time.Millisecond, snap.Avg)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveCall(OpGet, time.Millisecond, false)
	m.IncBrokenRef()
	assert.Equal(t, Snapshot{}, m.Snapshot())
	assert.Equal(t, "get", OpGet.String())
	assert.Equal(t, "unknown", Op(0).String())
}

func TestSnapshotSeq(t *testing.T) {
	s := NewSnapshotSeq(41)
	assert.Equal(t, uint64(42), s.Next())
	assert.Equal(t, uint64(43), s.Next())

	var nilSeq *SnapshotSeq
	assert.Zero(t, nilSeq.Next())
	assert.NotZero(t, NewSnapshotSeq(0).Next())
}
