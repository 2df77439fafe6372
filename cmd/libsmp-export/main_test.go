package main

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = "../../internal/static/testdata"

func headerTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))

	for _, h := range []string{"buffer.h", "context.h", "serial-protocol.h"} {
		data, err := os.ReadFile(filepath.Join(fixtures, "src", h))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(root, "src", h), data, 0o644))
	}

	return root
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-root", "/tmp/libsmp", "-defaults", "out.zip"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/libsmp", opts.root)
	assert.True(t, opts.defaults)
	assert.Equal(t, "out.zip", opts.output)

	_, err = parseFlags([]string{"a.zip", "b.zip"})
	require.Error(t, err)
}

func TestRun_HeaderOnly(t *testing.T) {
	root := headerTree(t)
	out := filepath.Join(t.TempDir(), "libsmp-static.h")

	require.NoError(t, run([]string{"-root", root, "-header-only", out}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join(fixtures, "libsmp-static.golden.h"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestRun_Archive(t *testing.T) {
	root := headerTree(t)
	out := filepath.Join(t.TempDir(), "libsmp.zip")

	envFile := filepath.Join(t.TempDir(), "export.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SMP_MESSAGE_MAX_VALUES=4\n"), 0o644))

	require.NoError(t, run([]string{"-root", root, "-defaults", "-env", envFile, out}))

	r, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}

	assert.Contains(t, names, "libsmp-config.h")
	assert.Contains(t, names, "libsmp-static.h")
	assert.Contains(t, names, "buffer.h")
}

func TestRun_MissingStructFails(t *testing.T) {
	root := headerTree(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "context.h"), []byte("/* empty */\n"), 0o644))

	out := filepath.Join(t.TempDir(), "libsmp.zip")

	err := run([]string{"-root", root, "-defaults", out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "struct not found in 'src/context.h' for struct 'SmpContext'")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_LayoutFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.h"), []byte("struct Point { int x; int y; };"), 0o644))

	layoutPath := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(layoutPath, []byte(`
static:
  includes: []
  structs:
    - header: a.h
      source: Point
      target: SPoint
  replacements: []
`), 0o644))

	out := filepath.Join(t.TempDir(), "points.h")
	require.NoError(t, run([]string{"-root", root, "-layout", layoutPath, "-header-only", out}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), "typedef struct SPoint SPoint;\nstruct SPoint {\n int x; int y; };\n")
}
