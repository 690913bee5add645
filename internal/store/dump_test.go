package store

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xroad/internal/model/enum"
	"xroad/internal/node/memnode"
	"xroad/internal/obs"
	"xroad/internal/object"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

type failSink struct {
	after int
	puts  int
}

func (s *failSink) Put(context.Context, Row) error {
	if s.puts >= s.after {
		return exception.ErrInternal
	}
	s.puts++
	return nil
}

func (s *failSink) Close() error { return nil }

func seedRecords(t *testing.T) (*object.Factory, *memnode.Node) {
	t.Helper()
	n := memnode.New(schema.Default())
	f := object.NewFactory(n, schema.Default())

	group, err := f.CreateAt(schema.KindInstrGroup, 3)
	require.NoError(t, err)
	require.NoError(t, group.Set("name", "futures"))

	instr, err := f.CreateAt(schema.KindInstr, 10)
	require.NoError(t, err)
	require.NoError(t, instr.Set("alias", "ESZ24"))
	require.NoError(t, instr.Set("exch", enum.ExchangeCME))
	require.NoError(t, instr.Set("lot_size", int64(50)))
	require.NoError(t, instr.Set("tick_size", 0.25))
	require.NoError(t, instr.Set("maturity", uint32(20241220)))
	require.NoError(t, instr.SetReference("group", group))

	// printable but not creatable
	p, err := n.Create(schema.KindTrade)
	require.NoError(t, err)
	trade, err := f.Dispatch(p)
	require.NoError(t, err)
	require.NoError(t, trade.SetReference("instr", instr))

	// transient records are never dumped
	_, err = n.Create(schema.KindAccepted)
	require.NoError(t, err)
	return f, n
}

func TestDump(t *testing.T) {
	f, n := seedRecords(t)
	sink := openMem(t)
	ctx := t.Context()

	d := NewDumper(f, n, obs.NewSnapshotSeq(100))
	report, err := d.Dump(ctx, sink)
	require.NoError(t, err)
	assert.Equal(t, uint64(101), report.Snapshot)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Counts[schema.KindInstr])
	assert.Equal(t, 1, report.Counts[schema.KindTrade])
	assert.Zero(t, report.Counts[schema.KindAccepted])

	row, ok, err := sink.Get("instr", 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(101), row.Snapshot)
	assert.NotContains(t, row.Fields, object.DictID)
	assert.Equal(t, "ESZ24", row.Fields["alias"])
	assert.Equal(t, "cme", row.Fields["exch"])
	assert.Equal(t, "(instr_group,3)", row.Fields["group"])

	rows, err := sink.List(ctx, "accepted")
	require.NoError(t, err)
	assert.Empty(t, rows)

	report, err = d.Dump(ctx, sink)
	require.NoError(t, err)
	assert.Equal(t, uint64(102), report.Snapshot)
}

func TestDumpNonFiniteDouble(t *testing.T) {
	n := memnode.New(schema.Default())
	f := object.NewFactory(n, schema.Default())
	order, err := f.Create(schema.KindOrder)
	require.NoError(t, err)
	require.NoError(t, order.Set("price", math.NaN()))
	require.NoError(t, order.Set("stop_price", math.Inf(-1)))

	sink := openMem(t)
	ctx := t.Context()
	report, err := NewDumper(f, n, nil).Dump(ctx, sink)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)

	row, ok, err := sink.Get("order", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "NaN", row.Fields["price"])
	assert.Equal(t, "-Inf", row.Fields["stop_price"])

	fresh := object.NewFactory(memnode.New(schema.Default()), schema.Default())
	restored, err := Restore(ctx, fresh, sink, schema.KindOrder)
	require.NoError(t, err)
	require.Len(t, restored, 1)
	price, err := restored[0].Get("price")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(price.Value().(float64)))
	stop, err := restored[0].Get("stop_price")
	require.NoError(t, err)
	assert.Equal(t, math.Inf(-1), stop.Value())
}

func TestDumpSinkError(t *testing.T) {
	f, n := seedRecords(t)
	report, err := NewDumper(f, n, nil).Dump(t.Context(), &failSink{after: 1})
	assert.ErrorIs(t, err, exception.ErrInternal)
	assert.Equal(t, 1, report.Total)
}

func TestRestore(t *testing.T) {
	f, n := seedRecords(t)
	sink := openMem(t)
	ctx := t.Context()

	_, err := NewDumper(f, n, nil).Dump(ctx, sink)
	require.NoError(t, err)

	fresh := object.NewFactory(memnode.New(schema.Default()), schema.Default())
	restored, err := Restore(ctx, fresh, sink, schema.KindInstr, schema.KindInstrGroup, schema.KindTrade)
	require.NoError(t, err)
	require.Len(t, restored, 2)

	want, ok, err := f.Lookup(schema.ObjectRef{Kind: schema.KindInstr, ID: 10})
	require.NoError(t, err)
	require.True(t, ok)
	got, ok, err := fresh.Lookup(schema.ObjectRef{Kind: schema.KindInstr, ID: 10})
	require.NoError(t, err)
	require.True(t, ok)

	wantDict, err := want.ToDict()
	require.NoError(t, err)
	gotDict, err := got.ToDict()
	require.NoError(t, err)
	assert.Equal(t, wantDict, gotDict)

	group, ok, err := got.Resolve("group")
	require.NoError(t, err)
	require.True(t, ok)
	name, err := group.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "futures", name.Value())

	_, err = Restore(ctx, fresh, sink, 0)
	assert.ErrorIs(t, err, exception.ErrUnknownRecordKind)
}
