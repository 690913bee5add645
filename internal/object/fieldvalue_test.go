package object

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xroad/internal/model/enum"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

func TestDecodeFieldValue(t *testing.T) {
	testCases := []struct {
		desc     string
		typ      enum.FieldType
		blob     []byte
		expected any
	}{
		{"string", enum.FieldTypeString, []byte("hello"), "hello"},
		{"string with nul", enum.FieldTypeString, []byte("hi\x00junk"), "hi"},
		{"int8", enum.FieldTypeInteger, []byte{0xff}, int64(-1)},
		{"int16", enum.FieldTypeInteger, []byte{0x00, 0x80}, int64(-32768)},
		{"int32", enum.FieldTypeInteger, []byte{0x01, 0x00, 0x00, 0x00}, int64(1)},
		{"int64", enum.FieldTypeInteger, []byte{0x02, 0, 0, 0, 0, 0, 0, 0}, int64(2)},
		{"float32", enum.FieldTypeDouble, []byte{0x00, 0x00, 0xc0, 0x3f}, float64(1.5)},
		{"float64", enum.FieldTypeDouble, []byte{0, 0, 0, 0, 0, 0, 0xf8, 0x3f}, float64(1.5)},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := DecodeFieldValue(tc.typ, tc.blob)
			if err != nil {
				t.Fatalf("decode %s, err: %+v", tc.desc, err)
			}
			if got != tc.expected {
				t.Fatalf("decode %s mismatch! should be %v but got %v", tc.desc, tc.expected, got)
			}
		})
	}

	_, err := DecodeFieldValue(enum.FieldTypeInteger, []byte{1, 2, 3})
	assert.ErrorIs(t, err, exception.ErrParse)
	_, err = DecodeFieldValue(enum.FieldTypeDouble, []byte{1})
	assert.ErrorIs(t, err, exception.ErrParse)
	_, err = DecodeFieldValue(enum.FieldType(9), nil)
	assert.ErrorIs(t, err, exception.ErrUnknownEnumValue)
}

func TestTypedValue(t *testing.T) {
	f, _ := newFactory(t)
	field, err := f.Create(schema.KindField)
	require.NoError(t, err)
	defer field.Destroy()

	v, err := TypedValue(field.Record)
	require.NoError(t, err)
	assert.False(t, v.IsSet())

	for _, value := range []any{"running", int64(-42), 3.75} {
		require.NoError(t, SetTypedValue(field.Record, value))
		v, err = TypedValue(field.Record)
		require.NoError(t, err)
		assert.Equal(t, value, v.Value())
	}

	require.NoError(t, SetTypedValue(field.Record, 7))
	v, err = TypedValue(field.Record)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Value())

	assert.ErrorIs(t, SetTypedValue(field.Record, true), exception.ErrTypeMismatch)

	// a rejected value leaves both type and value untouched
	err = SetTypedValue(field.Record, strings.Repeat("x", 200))
	assert.ErrorIs(t, err, exception.ErrFieldValueTooLarge)
	typ, err := field.Get("type")
	require.NoError(t, err)
	assert.Equal(t, enum.FieldTypeInteger, typ.Value())
	v, err = TypedValue(field.Record)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Value())

	param, err := f.Create(schema.KindStrategyParam)
	require.NoError(t, err)
	defer param.Destroy()
	require.NoError(t, SetTypedValue(param.Record, "fast"))
	v, err = TypedValue(param.Record)
	require.NoError(t, err)
	assert.Equal(t, "fast", v.Value())
}

func TestFindByString(t *testing.T) {
	f, n := newFactory(t)
	for _, alias := range []string{"ESZ24", "NQZ24", "CLF25"} {
		instr, err := f.Create(schema.KindInstr)
		require.NoError(t, err)
		require.NoError(t, instr.Set("alias", alias))
	}

	rec, ok, err := f.FindByString(n, schema.KindInstr, "alias", "NQZ24")
	require.NoError(t, err)
	require.True(t, ok)
	id, _ := rec.ID()
	assert.Equal(t, int64(2), id)

	_, ok, err = f.FindByString(n, schema.KindInstr, "alias", "ZZZ")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = f.FindByString(n, schema.KindInstr, "lot_size", "1")
	assert.ErrorIs(t, err, exception.ErrTypeMismatch)
	_, _, err = f.FindByString(n, schema.KindInstr, "bogus", "1")
	assert.ErrorIs(t, err, exception.ErrUnknownField)
}
