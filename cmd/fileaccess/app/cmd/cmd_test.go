package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/jmgilman/fileaccess/errors"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func TestVersion(t *testing.T) {
	r := run(t, "", "version")
	assert.Equal(t, 0, r.code)
	assert.Equal(t, "fileaccess dev\n", r.stdout)
}

func TestReadMissing(t *testing.T) {
	dir := t.TempDir()
	r := run(t, "", "--base-dir", dir, "read", "missing.txt")

	assert.Equal(t, 1, r.code)
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "NotFound: "), lines[0])
	assert.Equal(t, "Continuing the program...", lines[1])
	assert.Contains(t, r.stderr, "NotFound: missing.txt was not found")
}

func TestReadMissing_JSON(t *testing.T) {
	dir := t.TempDir()
	r := run(t, "", "--base-dir", dir, "--quiet", "--json", "read", "missing.txt")

	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stdout)

	var resp ferrors.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(r.stderr), &resp))
	assert.Equal(t, "NotFound", resp.Kind)
	assert.Equal(t, "missing.txt was not found", resp.Message)
	assert.Equal(t, "missing.txt", resp.Context["path"])
}

func TestWriteAppendRead(t *testing.T) {
	dir := t.TempDir()

	r := run(t, "", "--base-dir", dir, "write", "out.txt", "Line", "1")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "File closed\nContinuing the program...\n", r.stdout)

	r = run(t, "", "--base-dir", dir, "-q", "append", "out.txt", "New entry")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Empty(t, r.stdout)

	r = run(t, "line from stdin\n", "--base-dir", dir, "-q", "append", "--stdin", "out.txt")
	require.Equal(t, 0, r.code, r.stderr)

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Line 1\nNew entry\nline from stdin\n", string(data))

	r = run(t, "", "--base-dir", dir, "read", "out.txt")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "Line 1\nNew entry\nline from stdin\nFile closed\nContinuing the program...\n", r.stdout)
}

func TestWriteEscapingPath(t *testing.T) {
	dir := t.TempDir()
	r := run(t, "", "--base-dir", dir, "write", "../outside.txt", "x")

	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "InvalidRequest")
	_, err := os.Stat(filepath.Join(filepath.Dir(dir), "outside.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestSeedAndFormats(t *testing.T) {
	dir := t.TempDir()

	r := run(t, "", "--base-dir", dir, "seed")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "* seeding demo files into "+dir)
	assert.Contains(t, r.stdout, "seeded 4 demo files")

	r = run(t, "", "--base-dir", dir, "-q", "lines", "--stop", "swear word", "demo_files/data.txt")
	require.Equal(t, 0, r.code, r.stderr)
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "swear word")

	r = run(t, "", "--base-dir", dir, "-q", "csv", "demo_files/data.tsv")
	require.Equal(t, 0, r.code, r.stderr)
	assert.True(t, strings.HasPrefix(r.stdout, "[Name Age City]\n"), r.stdout)

	r = run(t, "", "--base-dir", dir, "csv", "demo_files/data_with_error.csv")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stdout, "MalformedContent: ")
	assert.Contains(t, r.stdout, "File closed\nContinuing the program...\n")
	assert.Contains(t, r.stderr, "demo_files/data_with_error.csv contains malformed content")
}

func TestCSVWriteRows(t *testing.T) {
	dir := t.TempDir()
	r := run(t, "", "--base-dir", dir, "-q", "csv", "people.csv", "--row", "Name,Age", "--row", "Alice,24")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "[Name Age]\n[Alice 24]\n", r.stdout)

	data, err := os.ReadFile(filepath.Join(dir, "people.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Name,Age\nAlice,24\n", string(data))
}

func TestJSONAndYAMLSample(t *testing.T) {
	dir := t.TempDir()

	r := run(t, "", "--base-dir", dir, "-q", "json", "--sample", "new_data.json")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, `"city": "Springfield"`)

	r = run(t, "", "--base-dir", dir, "-q", "yaml", "--sample", "people.yaml")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "name: Alice")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))
	r = run(t, "", "--base-dir", dir, "-q", "json", "broken.json")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "MalformedContent")
}

func TestMemoryBackend(t *testing.T) {
	r := run(t, "", "--backend", "memory", "read", "anything.txt")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "NotFound")
}

func TestUnknownBackend(t *testing.T) {
	r := run(t, "", "--backend", "tape", "read", "x.txt")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "InvalidRequest")
	assert.Empty(t, r.stdout)
}

func TestArgsValidation(t *testing.T) {
	r := run(t, "", "read")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "accepts 1 arg")
}
