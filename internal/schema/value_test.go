package schema

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xroad/internal/model/enum"
	"xroad/pkg/exception"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	testCases := []struct {
		desc  string
		spec  FieldSpec
		value any
	}{
		{"int8 min", I8("v"), int8(math.MinInt8)},
		{"int8 max", I8("v"), int8(math.MaxInt8)},
		{"int16 min", I16("v"), int16(math.MinInt16)},
		{"int32 max", I32("v"), int32(math.MaxInt32)},
		{"int64 min", I64("v"), int64(math.MinInt64)},
		{"int64 max", I64("v"), int64(math.MaxInt64)},
		{"uint8 max", U8("v"), uint8(math.MaxUint8)},
		{"uint16 max", U16("v"), uint16(math.MaxUint16)},
		{"uint32 max", U32("v"), uint32(math.MaxUint32)},
		{"uint64 max", U64("v"), uint64(math.MaxUint64)},
		{"double", F64("v"), 1.25},
		{"double negative zero", F64("v"), math.Copysign(0, -1)},
		{"string at max size", Str("v", 5), "ESZ24"},
		{"empty string", Str("v", 5), ""},
		{"binary at max size", Bin("v", 3), []byte{1, 2, 3}},
		{"enum", En("v", "side"), enum.SideSell},
		{"ref", Ref("v", KindOrder), ObjectRef{Kind: KindOrder, ID: 42}},
		{"any ref", Ref("v", 0), ObjectRef{Kind: KindTrade, ID: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			stored, err := Encode(tc.spec, tc.value)
			require.NoError(t, err)

			got, err := Decode(tc.spec, stored)
			require.NoError(t, err)
			assert.Equal(t, tc.value, got)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	testCases := []struct {
		desc  string
		spec  FieldSpec
		value any
		err   error
	}{
		{"string over max size", Str("v", 5), "ESZ245", exception.ErrFieldValueTooLarge},
		{"binary over max size", Bin("v", 2), []byte{1, 2, 3}, exception.ErrFieldValueTooLarge},
		{"string for int", I32("v"), "1", exception.ErrTypeMismatch},
		{"wrong width", I32("v"), int64(1), exception.ErrTypeMismatch},
		{"int overflow", I8("v"), 128, exception.ErrTypeMismatch},
		{"int underflow", U16("v"), -1, exception.ErrTypeMismatch},
		{"unsigned overflow", U8("v"), 256, exception.ErrTypeMismatch},
		{"bytes for string", Str("v", 5), []byte("a"), exception.ErrTypeMismatch},
		{"nil", F64("v"), nil, exception.ErrTypeMismatch},
		{"unknown enum name", En("v", "side"), "sideways", exception.ErrUnknownEnumValue},
		{"unknown enum code", En("v", "tif"), enum.Tif(7), exception.ErrUnknownEnumValue},
		{"other enum type", En("v", "side"), enum.TifDay, exception.ErrTypeMismatch},
		{"ref of wrong kind", Ref("v", KindOrder), ObjectRef{Kind: KindInstr, ID: 1}, exception.ErrTypeMismatch},
		{"string for ref", Ref("v", KindOrder), "(order,1)", exception.ErrTypeMismatch},
		{"unregistered kind for any ref", Ref("v", 0), ObjectRef{Kind: 200, ID: 1}, exception.ErrTypeMismatch},
		{"zero kind for any ref", Ref("v", 0), ObjectRef{ID: 1}, exception.ErrTypeMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := Encode(tc.spec, tc.value)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestEncodeAcceptsInt(t *testing.T) {
	stored, err := Encode(I16("v"), 300)
	require.NoError(t, err)
	got, err := Decode(I16("v"), stored)
	require.NoError(t, err)
	assert.Equal(t, int16(300), got)

	stored, err = Encode(U32("v"), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), stored)
}

func TestEncodeEnumByName(t *testing.T) {
	stored, err := Encode(En("v", "exchange"), "cme")
	require.NoError(t, err)
	assert.Equal(t, enum.ExchangeCME.Code(), stored)
}

func TestEncodeCopiesBinary(t *testing.T) {
	b := []byte{1, 2}
	stored, err := Encode(Bin("v", 8), b)
	require.NoError(t, err)
	b[0] = 9
	assert.Equal(t, []byte{1, 2}, stored)
}

func TestDecodeUnknownEnumCode(t *testing.T) {
	_, err := Decode(En("v", "side"), int64(1))
	assert.ErrorIs(t, err, exception.ErrUnknownEnumValue)
}

func TestStringLimitsFromTable(t *testing.T) {
	s := Default().MustSchema(KindInstr)
	spec, _ := s.Field("alias")

	_, err := Encode(spec, strings.Repeat("x", SizeAlias))
	require.NoError(t, err)
	_, err = Encode(spec, strings.Repeat("x", SizeAlias+1))
	assert.ErrorIs(t, err, exception.ErrFieldValueTooLarge)
}
