package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig writes a dictionary-only config with a private overlay file.
func testConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "engine: dictionary\nstore: " + filepath.Join(dir, "overlay.json") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func runCLI(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), append([]string{"-config", cfg}, args...), &out)
	return out.String(), err
}

func TestRunSuggest(t *testing.T) {
	cfg := testConfig(t)
	out, err := runCLI(t, cfg, "suggest", "-existing", "soon", "まもなく", "名古屋行き")
	require.NoError(t, err)
	assert.Contains(t, out, "soon_1")
	assert.Contains(t, out, "nagoya_bound")
	assert.Contains(t, out, "読み: なごやいき")

	out, err = runCLI(t, cfg, "reading", "名古屋")
	require.NoError(t, err)
	assert.Equal(t, "なごや\n", out)
}

func TestRunDict(t *testing.T) {
	cfg := testConfig(t)

	_, err := runCLI(t, cfg, "dict", "add", "-surface", "新幹線", "-reading", "しんかんせん", "-romaji", "shinkansen", "-type", "列車種別", "-short", "shinkansen")
	require.NoError(t, err)

	out, err := runCLI(t, cfg, "dict", "list", "-type", "TrainType", "-q", "shinkan")
	require.NoError(t, err)
	assert.Contains(t, out, "* 新幹線")

	out, err = runCLI(t, cfg, "dict", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "custom:  1")

	exported := filepath.Join(t.TempDir(), "export.json")
	_, err = runCLI(t, cfg, "dict", "export", exported)
	require.NoError(t, err)

	_, err = runCLI(t, cfg, "dict", "remove", "名古屋")
	assert.Error(t, err, "built-in entries cannot be removed")

	_, err = runCLI(t, cfg, "dict", "reset")
	require.NoError(t, err)
	out, err = runCLI(t, cfg, "suggest", "新幹線")
	require.NoError(t, err)
	assert.NotContains(t, out, "shinkansen\t")

	out, err = runCLI(t, cfg, "dict", "import", exported)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 entries")
}

func TestRunErrors(t *testing.T) {
	cfg := testConfig(t)
	_, err := runCLI(t, cfg)
	assert.Error(t, err)
	_, err = runCLI(t, cfg, "frobnicate")
	assert.ErrorContains(t, err, "frobnicate")
	_, err = runCLI(t, cfg, "dict", "add", "-surface", "x", "-type", "謎")
	assert.Error(t, err)
}
