package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xroad/internal/ops"
	"xroad/pkg/exception"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunDumpAndRestore(t *testing.T) {
	dir := t.TempDir()
	storeDir := filepath.Join(dir, "records")
	path := writeConfig(t, dir, `{
		"node": {"name": "ctl"},
		"store": {"kind": "pebble", "dir": "`+storeDir+`"},
		"records": [
			{"kind": "instr_group", "id": 2, "fields": {"name": "futures"}},
			{"kind": "instr", "id": 10, "fields": {"alias": "ESZ24", "exch": "cme", "group": "(instr_group,2)"}}
		],
		"features": {"dump": true}
	}`)

	var out bytes.Buffer
	require.NoError(t, run(t.Context(), &out, ops.Env{}, options{ConfigPath: path}))
	assert.Contains(t, out.String(), `instr {`)
	assert.Contains(t, out.String(), `"alias":"ESZ24"`)
	assert.Contains(t, out.String(), `"group":"(instr_group,2)"`)

	path = writeConfig(t, dir, `{"store": {"kind": "pebble", "dir": "`+storeDir+`"}}`)
	out.Reset()
	require.NoError(t, run(t.Context(), &out, ops.Env{}, options{ConfigPath: path, Restore: true, Kind: "instr"}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"id":10`)
	assert.Contains(t, lines[0], `"exch":"cme"`)
}

func TestRunDefaultsWithoutConfig(t *testing.T) {
	var out bytes.Buffer
	err := run(t.Context(), &out, ops.Env{}, options{ConfigPath: filepath.Join(t.TempDir(), "missing.json")})
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.json")

	err := run(t.Context(), &bytes.Buffer{}, ops.Env{}, options{ConfigPath: missing, Dump: true})
	assert.ErrorIs(t, err, exception.ErrInvalidConfig)

	err = run(t.Context(), &bytes.Buffer{}, ops.Env{}, options{ConfigPath: missing, Restore: true})
	assert.ErrorIs(t, err, exception.ErrInvalidConfig)

	err = run(t.Context(), &bytes.Buffer{}, ops.Env{}, options{ConfigPath: missing, Kind: "bogus"})
	assert.ErrorIs(t, err, exception.ErrUnknownRecordKind)

	err = run(t.Context(), &bytes.Buffer{}, ops.Env{Store: "redis"}, options{ConfigPath: missing})
	assert.ErrorIs(t, err, exception.ErrInvalidConfig)
}
