package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libsmp-export/internal/configgen"
	"libsmp-export/internal/rewrite"
	"libsmp-export/internal/static"
)

func TestValidate_Default(t *testing.T) {
	res := Validate(Default())
	assert.False(t, res.HasErrors(), "%v", res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"layout_is_nil"}, res.Codes())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
		code   string
	}{
		{name: "empty output", mutate: func(l *Layout) { l.Output = "" }, code: "empty_output"},
		{name: "missing static", mutate: func(l *Layout) { l.Static = nil }, code: "static_is_nil"},
		{name: "empty static filename", mutate: func(l *Layout) { l.Static.Filename = "" }, code: "empty_static_filename"},
		{name: "empty header", mutate: func(l *Layout) { l.Static.Structs[0].Header = "" }, code: "empty_header"},
		{name: "empty source", mutate: func(l *Layout) { l.Static.Structs[0].Source = "" }, code: "empty_source"},
		{name: "empty target", mutate: func(l *Layout) { l.Static.Structs[0].Target = "" }, code: "empty_target"},
		{
			name: "duplicate target",
			mutate: func(l *Layout) {
				l.Static.Structs = append(l.Static.Structs, static.Spec{Header: "x.h", Source: "X", Target: "SmpStaticBuffer"})
			},
			code: "duplicate_target",
		},
		{name: "empty pattern", mutate: func(l *Layout) { l.Static.Replacements = append(l.Static.Replacements, rewrite.Rule{}) }, code: "empty_pattern"},
		{name: "empty config filename", mutate: func(l *Layout) { l.ConfigFiles[0].Name = "" }, code: "empty_config_filename"},
		{name: "config name collision", mutate: func(l *Layout) { l.ConfigFiles[0].Name = DefaultStaticFilename }, code: "filename_collision"},
		{name: "duplicate config file", mutate: func(l *Layout) { l.ConfigFiles[0].Name = "libsmp-config.h" }, code: "duplicate_config_file"},
		{
			name: "duplicate param",
			mutate: func(l *Layout) {
				l.ConfigFiles[1].Params = append(l.ConfigFiles[1].Params, configgen.Param{Name: "SMP_MESSAGE_MAX_VALUES"})
			},
			code: "duplicate_param",
		},
		{
			name:   "empty param name",
			mutate: func(l *Layout) { l.ConfigFiles[1].Params[0].Name = "" },
			code:   "empty_param_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Default()
			tt.mutate(l)

			res := Validate(l)
			require.True(t, res.HasErrors())
			assert.Contains(t, res.Codes(), tt.code)
		})
	}
}

func TestValidate_NoStructsWarns(t *testing.T) {
	l := Default()
	l.Static.Structs = []static.Spec{}

	res := Validate(l)
	assert.False(t, res.HasErrors())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "no_structs", res.Warnings[0].Code)
}
