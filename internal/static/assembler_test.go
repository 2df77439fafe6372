package static

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libsmp-export/internal/extract"
	"libsmp-export/internal/rewrite"
)

func pointLineFS() fstest.MapFS {
	return fstest.MapFS{
		"a.h": {Data: []byte("struct Point { int x; int y; };\n")},
		"b.h": {Data: []byte("#include \"a.h\"\nstruct Line { struct Point a; struct Point b; };\n")},
	}
}

func pointLineConfig() Config {
	return Config{
		Specs: []Spec{
			{Header: "a.h", Source: "Point", Target: "SPoint"},
			{Header: "b.h", Source: "Line", Target: "SLine"},
		},
		Replacements: rewrite.NewTable("struct Point", "void"),
		Includes:     DefaultIncludes(),
	}
}

func TestGenerate_EndToEnd(t *testing.T) {
	out, err := Generate(pointLineFS(), pointLineConfig())
	require.NoError(t, err)

	want := "#pragma once\n\n" +
		"#include <stdint.h>\n" +
		"#include \"libsmp.h\"\n\n" +
		"#ifdef __cplusplus\n" +
		"extern \"C\" {\n" +
		"#endif\n\n" +
		"typedef struct SPoint SPoint;\n" +
		"struct SPoint {\n" +
		" int x; int y; };\n" +
		"typedef struct SLine SLine;\n" +
		"struct SLine {\n" +
		" void a; void b; };\n" +
		"#ifdef __cplusplus\n" +
		"}\n" +
		"#endif"
	assert.Equal(t, want, string(out))

	text := string(out)
	assert.Less(t, strings.Index(text, "struct SPoint {"), strings.Index(text, "struct SLine {"))
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := Generate(pointLineFS(), pointLineConfig())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Generate(pointLineFS(), pointLineConfig())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestGenerate_FailFast(t *testing.T) {
	cfg := pointLineConfig()
	cfg.Specs[1].Source = "Lien"

	out, err := Generate(pointLineFS(), cfg)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, extract.ErrStructNotFound)

	var e *extract.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "b.h", e.Header)
	assert.Equal(t, "Lien", e.Struct)
	assert.Contains(t, err.Error(), "SLine")
}

func TestGenerate_FailFastStopsAtFirst(t *testing.T) {
	cfg := pointLineConfig()
	cfg.Specs[0].Header = "missing.h"
	cfg.Specs[1].Source = "Lien"

	_, err := Generate(pointLineFS(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, extract.ErrSourceUnreadable)
	assert.NotErrorIs(t, err, extract.ErrStructNotFound)
}

func TestGenerate_CollectAll(t *testing.T) {
	fsys := pointLineFS()
	fsys["c.h"] = &fstest.MapFile{Data: []byte("struct Open { int a;")}

	cfg := pointLineConfig()
	cfg.CollectAll = true
	cfg.Specs = append(cfg.Specs,
		Spec{Header: "missing.h", Source: "X", Target: "SX"},
		Spec{Header: "b.h", Source: "Lien", Target: "SLien"},
		Spec{Header: "c.h", Source: "Open", Target: "SOpen"},
	)

	out, err := Generate(fsys, cfg)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, extract.ErrSourceUnreadable)
	assert.ErrorIs(t, err, extract.ErrStructNotFound)
	assert.ErrorIs(t, err, extract.ErrUnbalancedBraces)
	assert.Contains(t, err.Error(), "[c.h] Open: [unbalanced_braces]")
}

func TestGenerate_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{name: "empty header", mutate: func(c *Config) { c.Specs[0].Header = "" }, msg: "empty header path"},
		{name: "empty source", mutate: func(c *Config) { c.Specs[0].Source = "" }, msg: "empty source struct name"},
		{name: "empty target", mutate: func(c *Config) { c.Specs[0].Target = "" }, msg: "empty target struct name"},
		{name: "duplicate target", mutate: func(c *Config) { c.Specs[1].Target = "SPoint" }, msg: `target "SPoint" already used`},
		{name: "empty pattern", mutate: func(c *Config) { c.Replacements = append(c.Replacements, rewrite.Rule{}) }, msg: "empty pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := pointLineConfig()
			tt.mutate(&cfg)

			out, err := Generate(pointLineFS(), cfg)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestGenerate_NoSpecs(t *testing.T) {
	out, err := Generate(fstest.MapFS{}, Config{})
	require.NoError(t, err)
	assert.Equal(t, "#pragma once\n\n#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n#ifdef __cplusplus\n}\n#endif", string(out))
}

func TestGenerate_SharedHeaderReadOnce(t *testing.T) {
	fsys := fstest.MapFS{
		"both.h": {Data: []byte("struct A { int a; };\nstruct B { struct A *a; };\n")},
	}
	a := NewAssembler(fsys, Config{
		Specs: []Spec{
			{Header: "both.h", Source: "A", Target: "SA"},
			{Header: "both.h", Source: "B", Target: "SB"},
		},
		Replacements: rewrite.NewTable("struct A", "void"),
	})

	decls, err := a.Declarations()
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, " int a; ", decls[0].Body)
	assert.Equal(t, " void *a; ", decls[1].Body)
	assert.Equal(t, 1, a.loader.Len())
}

func TestIncludeSpec(t *testing.T) {
	assert.Equal(t, "<stdint.h>", includeSpec("<stdint.h>"))
	assert.Equal(t, `"libsmp.h"`, includeSpec(`"libsmp.h"`))
	assert.Equal(t, `"config.h"`, includeSpec("config.h"))
	assert.Equal(t, `"x"`, includeSpec(" x "))
}

func TestGenerate_LibsmpGolden(t *testing.T) {
	want, err := os.ReadFile("testdata/libsmp-static.golden.h")
	require.NoError(t, err)

	got, err := Generate(os.DirFS("testdata"), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
	assert.NotContains(t, string(got), "SmpEventCallbacks")
	assert.NotContains(t, string(got), "SmpBufferFreeFunc")
}
