package object

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xroad/internal/schema"
	"xroad/pkg/exception"
)

func TestResolveUnset(t *testing.T) {
	f, _ := newFactory(t)
	order, err := f.Create(schema.KindOrder)
	require.NoError(t, err)
	defer order.Destroy()

	target, ok, err := order.Resolve("instr")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, target)
}

func TestResolveLive(t *testing.T) {
	f, _ := newFactory(t)
	order, err := f.Create(schema.KindOrder)
	require.NoError(t, err)
	defer order.Destroy()
	instr, err := f.Create(schema.KindInstr)
	require.NoError(t, err)
	defer instr.Destroy()
	require.NoError(t, instr.Set("alias", "ESZ24"))

	require.NoError(t, order.SetReference("instr", instr))

	target, ok, err := order.Resolve("instr")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, OwnershipBorrowed, target.Ownership())
	assert.Equal(t, schema.KindInstr, target.Kind())
	alias, err := InstrAlias.Get(target)
	require.NoError(t, err)
	assert.Equal(t, "ESZ24", alias.Value())

	ref, err := OrderInstr.Get(order.Record)
	require.NoError(t, err)
	assert.Equal(t, "(instr,1)", ref.Value().String())
}

func TestResolveBroken(t *testing.T) {
	f, _ := newFactory(t)
	order, err := f.Create(schema.KindOrder)
	require.NoError(t, err)
	defer order.Destroy()
	instr, err := f.Create(schema.KindInstr)
	require.NoError(t, err)

	require.NoError(t, order.SetReference("instr", instr.Record))
	require.NoError(t, instr.Destroy())

	target, ok, err := order.Resolve("instr")
	assert.Nil(t, target)
	assert.False(t, ok)
	require.ErrorIs(t, err, exception.ErrBrokenRef)

	var broken *BrokenRefError
	require.True(t, errors.As(err, &broken))
	assert.Equal(t, "instr", broken.Field)
	assert.Equal(t, schema.ObjectRef{Kind: schema.KindOrder, ID: 1}, broken.Holder)
	assert.Equal(t, schema.ObjectRef{Kind: schema.KindInstr, ID: 1}, broken.Target)
	assert.Equal(t, "broken reference (order,1).instr -> (instr,1)", broken.Error())
}

func TestSetReferenceLazy(t *testing.T) {
	f, _ := newFactory(t)
	trade, err := f.Runtime().Create(schema.KindTrade)
	require.NoError(t, err)
	rec, err := f.Dispatch(trade)
	require.NoError(t, err)

	ref, err := schema.ParseRef("(order, 1)")
	require.NoError(t, err)
	require.NoError(t, rec.SetReference("order", ref))

	_, _, err = rec.Resolve("order")
	assert.ErrorIs(t, err, exception.ErrBrokenRef)

	order, err := f.Create(schema.KindOrder)
	require.NoError(t, err)
	defer order.Destroy()

	target, ok, err := rec.Resolve("order")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, order.Ptr(), target.Ptr())

	require.NoError(t, rec.SetReference("order", nil))
	_, ok, err = rec.Resolve("order")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetReferenceErrors(t *testing.T) {
	f, _ := newFactory(t)
	order, err := f.Create(schema.KindOrder)
	require.NoError(t, err)
	defer order.Destroy()
	account, err := f.Create(schema.KindAccount)
	require.NoError(t, err)
	defer account.Destroy()

	assert.ErrorIs(t, order.SetReference("instr", account), exception.ErrTypeMismatch)
	assert.ErrorIs(t, order.SetReference("instr", schema.ObjectRef{Kind: schema.KindAccount, ID: 1}), exception.ErrTypeMismatch)
	assert.ErrorIs(t, order.SetReference("instr", "(instr,1)"), exception.ErrTypeMismatch)
	assert.ErrorIs(t, order.SetReference("qty", account), exception.ErrTypeMismatch)
	assert.ErrorIs(t, order.SetReference("bogus", account), exception.ErrUnknownField)
	_, _, err = order.Resolve("qty")
	assert.ErrorIs(t, err, exception.ErrTypeMismatch)

	gone, err := f.Create(schema.KindInstr)
	require.NoError(t, err)
	require.NoError(t, gone.Destroy())
	assert.ErrorIs(t, order.SetReference("instr", gone), exception.ErrNullHandle)

	var nilRecord *Record
	assert.ErrorIs(t, order.SetReference("instr", nilRecord), exception.ErrNullHandle)

	// a reference field open to any kind still needs a registered kind
	req, err := f.Create(schema.KindSnapshotRequest)
	require.NoError(t, err)
	defer req.Destroy()
	assert.ErrorIs(t, req.SetReference("target", schema.ObjectRef{Kind: 200, ID: 1}), exception.ErrTypeMismatch)
	assert.ErrorIs(t, req.SetReference("target", schema.ObjectRef{ID: 1}), exception.ErrTypeMismatch)
	assert.ErrorIs(t, req.Set("target", schema.ObjectRef{Kind: 200, ID: 1}), exception.ErrTypeMismatch)
	isSet, err := req.IsSet("target")
	require.NoError(t, err)
	assert.False(t, isSet)
}

func TestSetReferenceAnyKind(t *testing.T) {
	f, _ := newFactory(t)
	req, err := f.Create(schema.KindSnapshotRequest)
	require.NoError(t, err)
	defer req.Destroy()
	fix, err := f.Runtime().Create(schema.KindFixSession)
	require.NoError(t, err)

	require.NoError(t, req.SetReference("target", fix))
	target, ok, err := req.Resolve("target")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, schema.KindFixSession, target.Kind())
}
