package store

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xroad/pkg/conn"
	"xroad/pkg/exception"
)

func TestRecordRowModel(t *testing.T) {
	m, err := toModel(Row{Kind: "order", ID: 9, Snapshot: 4, Fields: map[string]any{"qty": 10, "side": "buy"}})
	require.NoError(t, err)
	assert.Equal(t, "xroad_records", m.TableName())
	assert.Equal(t, "order", m.Kind)
	assert.Equal(t, int64(9), m.ID)
	assert.False(t, m.UpdatedAt.IsZero())
	assert.JSONEq(t, `{"qty":10,"side":"buy"}`, string(m.Fields))

	row, err := fromModel(m)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), row.Snapshot)
	assert.Equal(t, json.Number("10"), row.Fields["qty"])
	assert.Equal(t, "buy", row.Fields["side"])

	empty, err := toModel(Row{Kind: "order", ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(empty.Fields))

	_, err = fromModel(recordRow{Kind: "order", ID: 1, Fields: []byte("{")})
	assert.Error(t, err)
}

func TestPostgresSink(t *testing.T) {
	dsn := os.Getenv("XROAD_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("XROAD_TEST_PG_DSN not set")
	}
	ctx := t.Context()

	s, err := OpenPostgres(ctx, conn.FromDSN(dsn))
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, Row{Kind: "pg_test", ID: 1, Snapshot: 1, Fields: map[string]any{"name": "a"}}))
	require.NoError(t, s.Put(ctx, Row{Kind: "pg_test", ID: 1, Snapshot: 2, Fields: map[string]any{"name": "b"}}))

	rows, err := s.List(ctx, "pg_test")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint64(2), rows[0].Snapshot)
	assert.Equal(t, "b", rows[0].Fields["name"])

	require.NoError(t, s.pg.DB(ctx).Where("kind = ?", "pg_test").Delete(&recordRow{}).Error)
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Put(ctx, Row{Kind: "pg_test", ID: 2}), exception.ErrStoreClosed)
}
