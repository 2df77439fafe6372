package layout

import (
	"libsmp-export/internal/configgen"
	"libsmp-export/internal/rewrite"
	"libsmp-export/internal/static"
)

// Layout is the full description of one export.
type Layout struct {
	// Output is the default archive filename.
	Output string `yaml:"output,omitempty"`
	// IncludedFiles are root-level files archived under their base name.
	IncludedFiles []string `yaml:"included_files,omitempty"`
	// IncludedDirs are archived with their tree, rooted at the dir's base name.
	IncludedDirs []string `yaml:"included_dirs,omitempty"`
	// ExtractedDirs have every file archived at the archive root.
	ExtractedDirs []string `yaml:"extracted_dirs,omitempty"`
	// ExcludedFiles are base names skipped while walking directories.
	ExcludedFiles []string `yaml:"excluded_files,omitempty"`
	// ConfigFiles are generated configuration headers.
	ConfigFiles []ConfigFile `yaml:"config_files,omitempty"`
	// Static describes the generated static struct header.
	Static *Static `yaml:"static,omitempty"`
}

// ConfigFile is a generated header of integer constants.
type ConfigFile struct {
	Name   string            `yaml:"name"`
	Params []configgen.Param `yaml:"params,omitempty"`
}

// Static is the static struct header section.
type Static struct {
	Filename     string        `yaml:"filename,omitempty"`
	Includes     []string      `yaml:"includes,omitempty"`
	Structs      []static.Spec `yaml:"structs,omitempty"`
	Replacements rewrite.Table `yaml:"replacements,omitempty"`
}

// Config converts the section to an assembler configuration.
func (s *Static) Config() static.Config {
	return static.Config{
		Specs:        s.Structs,
		Replacements: s.Replacements,
		Includes:     s.Includes,
	}
}
