package layout

import (
	"libsmp-export/internal/configgen"
	"libsmp-export/internal/static"
)

// Default values of the libsmp Arduino export.
const (
	DefaultOutput         = "libsmp.zip"
	DefaultStaticFilename = "libsmp-static.h"
)

// Default returns the libsmp Arduino library layout.
func Default() *Layout {
	return &Layout{
		Output:        DefaultOutput,
		IncludedFiles: []string{"COPYING", "README.md", "library.properties"},
		IncludedDirs:  []string{"docs"},
		ExtractedDirs: []string{"include", "src"},
		ExcludedFiles: []string{
			".gitignore",
			"libsmp-private-posix.h",
			"serial-device-avr.c",
			"serial-device-posix.c",
			"serial-device-win32.c",
			"libsmp-static.h.in",
		},
		ConfigFiles: []ConfigFile{
			{Name: "config.h"},
			{
				Name: "libsmp-config.h",
				Params: []configgen.Param{
					{
						Name:        "SMP_MESSAGE_MAX_VALUES",
						Default:     8,
						Description: "The maximum number of arguments in a message",
					},
				},
			},
		},
		Static: &Static{
			Filename:     DefaultStaticFilename,
			Includes:     static.DefaultIncludes(),
			Structs:      static.DefaultSpecs(),
			Replacements: static.DefaultReplacements(),
		},
	}
}
