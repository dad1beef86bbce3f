package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

const entombedLayout = `{
  "tableau": [
    [{"suit":"h","val":"A"},{"suit":"c","val":9,"hidden":true},{"suit":"c","val":8,"hidden":true},{"suit":"d","val":4,"hidden":true},{"suit":"s","val":"K","hidden":true}],
    [{"suit":"s","val":"A"},{"suit":"h","val":9,"hidden":true},{"suit":"h","val":8,"hidden":true},{"suit":"h","val":4,"hidden":true},{"suit":"d","val":"K","hidden":true}],
    []
  ]
}`

func writeLayout(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_FileJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-file", writeLayout(t, entombedLayout), "-json"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	var r report
	require.NoError(t, json.Unmarshal(out.Bytes(), &r))
	assert.Equal(t, "klondike", r.VariantID)
	assert.True(t, r.LikelyInsolvable)
	require.Len(t, r.Rules, 1)
	assert.Equal(t, "entombed-aces", r.Rules[0].RuleID)
	assert.Equal(t, []string{"c0r0", "c1r0"}, r.Rules[0].Evidence)
	assert.Equal(t, 10, r.Nodes)
	assert.Contains(t, errOut.String(), "evaluated")
}

func TestRun_SeedReport(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-variant", "freecell", "-seed", "7", "-v"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "FREECELL")
	assert.Contains(t, out.String(), "freecell deal #7")
	assert.Contains(t, errOut.String(), "layout loaded")
}

func TestRun_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.Equal(t, 0, run([]string{"-seed", "3", "-json"}, &a, &bytes.Buffer{}))
	require.Equal(t, 0, run([]string{"-seed", "3", "-json"}, &b, &bytes.Buffer{}))
	assert.Equal(t, a.String(), b.String())
}

func TestRun_Errors(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 1, run([]string{"-variant", "spider"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "unknown variant")

	errOut.Reset()
	assert.Equal(t, 1, run([]string{"-file", filepath.Join(t.TempDir(), "missing.json")}, &out, &errOut))
	assert.Contains(t, errOut.String(), "cannot load layout")

	errOut.Reset()
	bad := writeLayout(t, `{"tableau":[[{"suit":"x","val":1}]]}`)
	assert.Equal(t, 1, run([]string{"-file", bad}, &out, &errOut))

	assert.Equal(t, 2, run([]string{"-nope"}, &out, &errOut))
}

func TestLayoutTable_Empty(t *testing.T) {
	s, err := layoutTable(nil)
	require.NoError(t, err)
	assert.Equal(t, "(empty tableau)", s)
}
