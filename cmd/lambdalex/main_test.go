package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lambdalex/internal/diagfmt"
	"lambdalex/internal/version"
)

// execute запускает свежее дерево команд в изолированном окружении.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	work := filepath.Join(dir, "work")
	require.NoError(t, os.MkdirAll(work, 0o755))
	t.Chdir(work)
	return work
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestTokenizeFilePretty(t *testing.T) {
	work := isolate(t)
	write(t, filepath.Join(work, "id.lam"), "id = λ x x # identity\n")

	out, _, err := execute(t, "tokenize", "--color", "off", "--ui", "off", "id.lam")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "identifier")
	assert.Contains(t, lines[2], `"lambda"`)
	assert.Contains(t, lines[2], "at 1:6-1:7")
}

func TestTokenizeLexicalError(t *testing.T) {
	work := isolate(t)
	write(t, filepath.Join(work, "bad.lam"), "a ! b")

	out, errOut, err := execute(t, "tokenize", "--color", "off", "--no-cache", "bad.lam")
	require.ErrorIs(t, err, errLexical)
	assert.Contains(t, out, "identifier")
	assert.Contains(t, errOut, "LEX1003")
	assert.Contains(t, errOut, `Expected operator continuation, found " ".`)
	assert.NotContains(t, errOut, "Error:")
}

func TestTokenizeShortDiagnostics(t *testing.T) {
	work := isolate(t)
	write(t, filepath.Join(work, "bad.lam"), "a ! b")

	_, errOut, err := execute(t, "tokenize", "--no-cache", "--path-mode", "relative", "--diagnostics", "short", "bad.lam")
	require.ErrorIs(t, err, errLexical)
	assert.Equal(t, "error LEX1003 bad.lam:1:4 Expected operator continuation, found \" \".\n", errOut)
}

func TestTokenizeDirJSON(t *testing.T) {
	work := isolate(t)
	write(t, filepath.Join(work, "src", "a.lam"), "1 + 2")
	write(t, filepath.Join(work, "src", "nested", "b.lam"), `"s" ; x`)

	out, _, err := execute(t, "tokenize", "--format", "json", "--jobs", "2", "src")
	require.NoError(t, err)

	var files []diagfmt.FileTokensOutput
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	require.Len(t, files, 2)
	assert.True(t, strings.HasSuffix(files[0].File, "a.lam"), files[0].File)
	require.Len(t, files[0].Tokens, 3)
	assert.Equal(t, "number", files[0].Tokens[0].Kind)
	assert.Equal(t, 1.0, files[0].Tokens[0].Value)
	require.Len(t, files[1].Tokens, 3)
	assert.Equal(t, "s", files[1].Tokens[0].Value)

	// второй прогон читает кэш и даёт тот же вывод
	again, _, err := execute(t, "tokenize", "--format", "json", "src")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestTokenizeMsgpack(t *testing.T) {
	work := isolate(t)
	write(t, filepath.Join(work, "m.lam"), "if a then b else c")

	out, _, err := execute(t, "tokenize", "--format", "msgpack", "m.lam")
	require.NoError(t, err)
	decoded, err := diagfmt.DecodeTokensMsgpack(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, decoded.Tokens, 6)
	assert.Equal(t, "keyword", decoded.Tokens[0].Kind)
}

func TestManifestSetsDefaults(t *testing.T) {
	work := isolate(t)
	write(t, filepath.Join(work, "lambdalex.toml"), "[tokenize]\nformat = \"json\"\ncache = false\n")
	write(t, filepath.Join(work, "x.lam"), "x")

	out, _, err := execute(t, "tokenize", "x.lam")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), out)

	// явный флаг сильнее файла
	out, _, err = execute(t, "tokenize", "--format", "pretty", "x.lam")
	require.NoError(t, err)
	assert.Contains(t, out, "identifier")

	_, err = os.Stat(filepath.Join(os.Getenv("XDG_CACHE_HOME"), "lambdalex", "tokens"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestManifestRejectsUnknownKeys(t *testing.T) {
	work := isolate(t)
	cfg := filepath.Join(work, "custom.toml")
	write(t, cfg, "[tokenize]\nspeed = 3\n")
	write(t, filepath.Join(work, "x.lam"), "x")

	_, _, err := execute(t, "tokenize", "--config", cfg, "x.lam")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tokenize.speed")
}

func TestInvalidFlagValues(t *testing.T) {
	work := isolate(t)
	write(t, filepath.Join(work, "x.lam"), "x")

	_, _, err := execute(t, "tokenize", "--format", "yaml", "x.lam")
	assert.ErrorContains(t, err, "format")
	_, _, err = execute(t, "tokenize", "--ui", "maybe", "x.lam")
	assert.ErrorContains(t, err, "--ui")
	_, _, err = execute(t, "tokenize", "--trace-level", "verbose", "x.lam")
	assert.ErrorContains(t, err, "trace level")
	_, _, err = execute(t, "tokenize", "--diagnostics", "xml", "x.lam")
	assert.ErrorContains(t, err, "diagnostics format")
}

func TestTraceToFile(t *testing.T) {
	work := isolate(t)
	write(t, filepath.Join(work, "x.lam"), "x y")
	tracePath := filepath.Join(work, "trace.ndjson")

	_, _, err := execute(t, "tokenize", "--trace", tracePath, "--trace-level", "detail", "x.lam")
	require.NoError(t, err)

	data, err := os.ReadFile(tracePath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var ev map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &ev), line)
	}
	assert.Contains(t, string(data), `"name":"tokenize"`)
	assert.Contains(t, string(data), `"name":"scan"`)
}

func TestTimingsSummary(t *testing.T) {
	work := isolate(t)
	write(t, filepath.Join(work, "x.lam"), "x")

	_, errOut, err := execute(t, "tokenize", "--timings", "--no-cache", "x.lam")
	require.NoError(t, err)
	assert.Contains(t, errOut, "load")
	assert.Contains(t, errOut, "scan")
}

func TestClean(t *testing.T) {
	work := isolate(t)
	write(t, filepath.Join(work, "x.lam"), "x")
	_, _, err := execute(t, "tokenize", "x.lam")
	require.NoError(t, err)

	cacheDir := filepath.Join(os.Getenv("XDG_CACHE_HOME"), "lambdalex", "tokens")
	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	out, _, err := execute(t, "clean")
	require.NoError(t, err)
	assert.Contains(t, out, cacheDir)
	entries, err = os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVersionJSON(t *testing.T) {
	out, _, err := execute(t, "version", "--format", "json", "--full")
	require.NoError(t, err)

	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "lambdalex", info.Tool)
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)

	out, _, err = execute(t, "version", "--color", "off")
	require.NoError(t, err)
	assert.Equal(t, "lambdalex "+info.Version+"\n", out)

	_, _, err = execute(t, "version", "--format", "xml")
	assert.Error(t, err)
}

func TestWantProgressUI(t *testing.T) {
	tty := func() bool { return true }
	noTTY := func() bool { return false }
	cases := []struct {
		flag, format string
		tty          func() bool
		want         bool
	}{
		{"", "pretty", tty, true},
		{"AUTO", "pretty", noTTY, false},
		{"auto", "json", tty, false},
		{" on ", "msgpack", noTTY, true},
		{"off", "pretty", tty, false},
	}
	for _, tc := range cases {
		got, err := wantProgressUI(tc.flag, tc.format, tc.tty)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%q/%s", tc.flag, tc.format)
	}
	_, err := wantProgressUI("sometimes", "pretty", tty)
	assert.Error(t, err)
}

func TestProfilingFlags(t *testing.T) {
	work := isolate(t)
	write(t, filepath.Join(work, "x.lam"), "x")
	cpu := filepath.Join(work, "cpu.pprof")
	mem := filepath.Join(work, "mem.pprof")

	_, _, err := execute(t, "tokenize", "--cpuprofile", cpu, "--memprofile", mem, "x.lam")
	require.NoError(t, err)
	assert.FileExists(t, cpu)
	assert.FileExists(t, mem)
}
