package object

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xroad/internal/model/enum"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

func TestWalk(t *testing.T) {
	f, n := newFactory(t)

	group, err := f.Create(schema.KindInstrGroup)
	require.NoError(t, err)
	instr, err := f.Create(schema.KindInstr)
	require.NoError(t, err)
	account, err := f.Create(schema.KindAccount)
	require.NoError(t, err)
	require.NoError(t, instr.SetReference("group", group))
	require.NoError(t, instr.SetReference("underlying", instr))

	p, err := n.Create(schema.KindPosition)
	require.NoError(t, err)
	position, err := f.Dispatch(p)
	require.NoError(t, err)
	require.NoError(t, position.SetReference("instr", instr))
	require.NoError(t, position.SetReference("account", account))

	var visited []string
	require.NoError(t, Walk(position, 2, func(rec *Record, level int) bool {
		visited = append(visited, rec.Schema().Name)
		return true
	}))
	assert.Equal(t, []string{"position", "account", "instr", "instr_group"}, visited)

	visited = visited[:0]
	require.NoError(t, Walk(position, 1, func(rec *Record, level int) bool {
		visited = append(visited, rec.Schema().Name)
		return true
	}))
	assert.Equal(t, []string{"position", "account", "instr"}, visited)

	// broken references are skipped
	require.NoError(t, account.Destroy())
	visited = visited[:0]
	require.NoError(t, Walk(position, 1, func(rec *Record, level int) bool {
		visited = append(visited, rec.Schema().Name)
		return true
	}))
	assert.Equal(t, []string{"position", "instr"}, visited)

	visited = visited[:0]
	require.NoError(t, Walk(position, 5, func(rec *Record, level int) bool {
		visited = append(visited, rec.Schema().Name)
		return false
	}))
	assert.Equal(t, []string{"position"}, visited)
}

func TestPatch(t *testing.T) {
	f, _ := newFactory(t)
	order, err := f.Create(schema.KindOrder)
	require.NoError(t, err)
	defer order.Destroy()
	require.NoError(t, order.Set("text", "old"))

	err = Patch(order.Record, map[string]any{
		"clord_id":  "C-1",
		"qty":       json.Number("25"),
		"price":     json.Number("101.25"),
		"side":      "sell",
		"tif":       json.Number("51"),
		"flags":     float64(3),
		"instr":     "(instr, 4)",
		"text":      nil,
		"expire_ts": "1700000000",
	})
	require.NoError(t, err)

	dict, err := order.ToDict()
	require.NoError(t, err)
	assert.Equal(t, "C-1", dict["clord_id"])
	assert.Equal(t, int64(25), dict["qty"])
	assert.Equal(t, 101.25, dict["price"])
	assert.Equal(t, "sell", dict["side"])
	assert.Equal(t, enum.TifIOC.String(), dict["tif"])
	assert.Equal(t, uint32(3), dict["flags"])
	assert.Equal(t, "(instr,4)", dict["instr"])
	assert.Equal(t, uint64(1700000000), dict["expire_ts"])
	assert.NotContains(t, dict, "text")
}

func TestPatchBinary(t *testing.T) {
	f, n := newFactory(t)
	p, err := n.Create(schema.KindBook)
	require.NoError(t, err)
	book, err := f.Dispatch(p)
	require.NoError(t, err)

	require.NoError(t, Patch(book, map[string]any{"bids": "de ad\nbe ef"}))
	v, err := book.Get("bids")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, v.Value())
}

func TestPatchErrors(t *testing.T) {
	f, _ := newFactory(t)
	order, err := f.Create(schema.KindOrder)
	require.NoError(t, err)
	defer order.Destroy()

	testCases := []struct {
		desc   string
		fields map[string]any
		err    error
	}{
		{"unknown field", map[string]any{"bogus": 1}, exception.ErrUnknownField},
		{"fractional qty", map[string]any{"qty": json.Number("1.5")}, exception.ErrTypeMismatch},
		{"negative unsigned", map[string]any{"flags": json.Number("-1")}, exception.ErrTypeMismatch},
		{"unknown enum name", map[string]any{"side": "up"}, exception.ErrUnknownEnumValue},
		{"unknown enum code", map[string]any{"side": json.Number("7")}, exception.ErrUnknownEnumValue},
		{"bad ref", map[string]any{"instr": "instr,4"}, exception.ErrParse},
		{"ref of wrong kind", map[string]any{"instr": "(order,4)"}, exception.ErrTypeMismatch},
		{"too large", map[string]any{"clord_id": string(make([]byte, schema.SizeClordID+1))}, exception.ErrFieldValueTooLarge},
		{"bool for double", map[string]any{"price": true}, exception.ErrTypeMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.ErrorIs(t, Patch(order.Record, tc.fields), tc.err)
		})
	}
}
