package static

import (
	"fmt"

	"libsmp-export/internal/rewrite"
)

// Spec pairs a struct in a header with the name of its static twin.
type Spec struct {
	// Header is the slash-separated path of the header, relative to the root.
	Header string `yaml:"header"`
	// Source is the name of the struct to copy.
	Source string `yaml:"source"`
	// Target is the name of the generated struct.
	Target string `yaml:"target"`
}

// Config holds everything a generation run depends on.
// Specs are emitted in order; nothing reorders them by dependency.
type Config struct {
	Specs        []Spec
	Replacements rewrite.Table
	// Includes are emitted after the pragma. Bare names are quoted,
	// "<...>" and "\"...\"" forms are used as written.
	Includes []string
	// CollectAll attempts every spec and reports all failures together
	// instead of stopping at the first one.
	CollectAll bool
}

// DefaultIncludes are the includes of the generated libsmp header.
func DefaultIncludes() []string {
	return []string{"<stdint.h>", `"libsmp.h"`}
}

// Validate checks the configuration without touching any header.
func (c Config) Validate() error {
	seen := make(map[string]int, len(c.Specs))

	for i, s := range c.Specs {
		switch {
		case s.Header == "":
			return fmt.Errorf("spec %d: empty header path", i)
		case s.Source == "":
			return fmt.Errorf("spec %d (%s): empty source struct name", i, s.Header)
		case s.Target == "":
			return fmt.Errorf("spec %d (%s): empty target struct name", i, s.Header)
		}

		if j, ok := seen[s.Target]; ok {
			return fmt.Errorf("spec %d: target %q already used by spec %d", i, s.Target, j)
		}

		seen[s.Target] = i
	}

	if err := c.Replacements.Validate(); err != nil {
		return fmt.Errorf("replacements: %w", err)
	}

	return nil
}
