package layout

import (
	"fmt"

	"libsmp-export/internal/common"
	"libsmp-export/internal/configgen"
	"libsmp-export/internal/diagnostic"
	"libsmp-export/internal/static"
)

// Validate checks a layout for structural problems. It does not read any
// file from the project tree.
func Validate(l *Layout) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if l == nil {
		res.AddError("layout_is_nil", "layout is nil", "", "")
		return res
	}

	if l.Output == "" {
		res.AddError("empty_output", "output filename is empty", "", "")
	}

	validateConfigFiles(res, l)
	validateStatic(res, l.Static)

	return res
}

func validateConfigFiles(res *diagnostic.Diagnostics, l *Layout) {
	for i, cf := range l.ConfigFiles {
		if cf.Name == "" {
			res.AddError("empty_config_filename", fmt.Sprintf("config file %d has no name", i), "", "")
			continue
		}

		if l.Static != nil && cf.Name == l.Static.Filename {
			res.AddError("filename_collision",
				fmt.Sprintf("config file %q has the same name as the static header", cf.Name), cf.Name, "")
		}

		for j, p := range cf.Params {
			if p.Name == "" {
				res.AddError("empty_param_name", fmt.Sprintf("parameter %d has no name", j), cf.Name, "")
			}
		}

		for _, dup := range common.Duplicates(cf.Params, func(p configgen.Param) string { return p.Name }) {
			res.AddError("duplicate_param", fmt.Sprintf("duplicate parameter %q", dup), cf.Name, "")
		}
	}

	for _, dup := range common.Duplicates(l.ConfigFiles, func(cf ConfigFile) string { return cf.Name }) {
		res.AddError("duplicate_config_file", fmt.Sprintf("duplicate config file %q", dup), dup, "")
	}
}

func validateStatic(res *diagnostic.Diagnostics, s *Static) {
	if s == nil {
		res.AddError("static_is_nil", "static section is missing", "", "")
		return
	}

	if s.Filename == "" {
		res.AddError("empty_static_filename", "static header filename is empty", "", "")
	}

	if common.IsEmpty(s.Structs) {
		res.AddWarning("no_structs", "no structs configured, static header will be empty", s.Filename, "")
	}

	for i, st := range s.Structs {
		switch {
		case st.Header == "":
			res.AddError("empty_header", fmt.Sprintf("struct %d has no header", i), "", st.Source)
		case st.Source == "":
			res.AddError("empty_source", fmt.Sprintf("struct %d has no source name", i), st.Header, "")
		case st.Target == "":
			res.AddError("empty_target", fmt.Sprintf("struct %d has no target name", i), st.Header, st.Source)
		}
	}

	for _, dup := range common.Duplicates(s.Structs, func(st static.Spec) string { return st.Target }) {
		res.AddError("duplicate_target", fmt.Sprintf("target %q is generated twice", dup), "", dup)
	}

	for i, r := range s.Replacements {
		if r.Pattern == "" {
			res.AddError("empty_pattern", fmt.Sprintf("replacement %d has an empty pattern", i), "", "")
		}
	}
}
