package ops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xroad/internal/node/memnode"
	"xroad/internal/object"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

const sampleConfig = `{
	"node": {"name": "md1"},
	"store": {"kind": "pebble", "dir": "/tmp/xroad"},
	"records": [
		{"kind": "instr_group", "fields": {"name": "futures"}},
		{"kind": "instr", "id": 10, "fields": {
			"alias": "ESZ24",
			"exch": "cme",
			"lot_size": 50,
			"tick_size": 0.25,
			"maturity": 20241220,
			"group": "(instr_group,1)"
		}},
		{"kind": "variable", "fields": {"name": "mode", "value": "live"}}
	],
	"features": {"instrument": false}
}`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig), schema.Default())
	require.NoError(t, err)

	assert.Equal(t, "md1", cfg.NodeName)
	assert.Equal(t, StoreSpec{Kind: StorePebble, Dir: "/tmp/xroad"}, cfg.Store)
	assert.False(t, cfg.Features.Instrument)
	assert.False(t, cfg.Features.Dump)
	require.Len(t, cfg.Records, 3)
	assert.Equal(t, schema.KindInstr, cfg.Records[1].Kind)
	assert.Equal(t, int64(10), cfg.Records[1].ID)
	assert.Equal(t, "node=md1 store=pebble records=3 instrument=false dump=false", cfg.String())
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		desc string
		data string
	}{
		{"bad json", `{`},
		{"unknown kind", `{"records": [{"kind": "bogus"}]}`},
		{"not creatable", `{"records": [{"kind": "trade"}]}`},
		{"unknown field", `{"records": [{"kind": "instr", "fields": {"nope": 1}}]}`},
		{"negative id", `{"records": [{"kind": "instr", "id": -1}]}`},
		{"unknown store", `{"store": {"kind": "redis"}}`},
		{"postgres without dsn", `{"store": {"kind": "postgres"}}`},
		{"long node name", `{"node": {"name": "abcdefghijklmnopq"}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), schema.Default())
			assert.ErrorIs(t, err, exception.ErrInvalidConfig)
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`{"store": {"kind": "Pebble"}}`), schema.Default())
	require.NoError(t, err)
	assert.Equal(t, "xroad", cfg.NodeName)
	assert.Equal(t, "data/records", cfg.Store.Dir)
	assert.True(t, cfg.Features.Instrument)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := Load(path, schema.Default())
	require.NoError(t, err)
	assert.Len(t, cfg.Records, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"), schema.Default())
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("XROAD_STORE=postgres\nXROAD_PG_DSN=host=db user=x\n"), 0o644))
	t.Setenv("XROAD_STORE", "")
	t.Setenv("XROAD_PG_DSN", "")
	t.Setenv("XROAD_STORE_DIR", "")
	t.Setenv("XROAD_CONFIG", "")
	t.Setenv("XROAD_PROFILE_ADDR", "http://localhost:4040")
	os.Unsetenv("XROAD_STORE")
	os.Unsetenv("XROAD_PG_DSN")

	env := LoadEnv(envPath)
	assert.Equal(t, "postgres", env.Store)
	assert.Equal(t, "host=db user=x", env.PgDSN)
	assert.Equal(t, "config.json", env.ConfigPath)

	cfg, err := Parse([]byte(sampleConfig), schema.Default())
	require.NoError(t, err)
	require.NoError(t, cfg.Override(env))
	assert.Equal(t, StorePostgres, cfg.Store.Kind)
	assert.Equal(t, "host=db user=x", cfg.Store.DSN)
	assert.Equal(t, "http://localhost:4040", cfg.ProfileAddr)

	assert.ErrorIs(t, cfg.Override(Env{Store: "redis"}), exception.ErrInvalidConfig)
}

func TestSeed(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig), schema.Default())
	require.NoError(t, err)

	n := memnode.New(schema.Default())
	f := object.NewFactory(n, schema.Default())
	records, err := Seed(f, cfg.Records)
	require.NoError(t, err)
	require.Len(t, records, 3)

	instr, ok, err := f.Lookup(schema.ObjectRef{Kind: schema.KindInstr, ID: 10})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, n.Count(schema.KindInstr))

	dict, err := instr.ToDict()
	require.NoError(t, err)
	assert.Equal(t, "ESZ24", dict["alias"])
	assert.Equal(t, "cme", dict["exch"])
	assert.Equal(t, int64(50), dict["lot_size"])
	assert.Equal(t, 0.25, dict["tick_size"])
	assert.Equal(t, uint32(20241220), dict["maturity"])

	group, ok, err := instr.Resolve("group")
	require.NoError(t, err)
	require.True(t, ok)
	name, err := group.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "futures", name.Value())

	for _, rec := range records {
		require.NoError(t, rec.Destroy())
	}
	assert.Equal(t, 0, n.Count(schema.KindInstr))
}

func TestSeedRollback(t *testing.T) {
	n := memnode.New(schema.Default())
	f := object.NewFactory(n, schema.Default())

	_, err := Seed(f, []RecordSpec{
		{Kind: schema.KindVariable, Fields: map[string]any{"name": "a"}},
		{Kind: schema.KindInstr, Fields: map[string]any{"exch": "nowhere"}},
	})
	assert.ErrorIs(t, err, exception.ErrUnknownEnumValue)
	assert.Equal(t, 0, n.Count(schema.KindVariable))
	assert.Equal(t, 0, n.Count(schema.KindInstr))
}
