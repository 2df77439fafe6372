package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML layout file from the given path.
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Layout, filling omitted sections from Default.
func Parse(data []byte) (*Layout, error) {
	var l Layout

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	// An empty document decodes as io.EOF and means "all defaults".
	err := dec.Decode(&l)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}

	applyDefaults(&l)

	return &l, nil
}

// applyDefaults fills in default values for omitted sections.
func applyDefaults(l *Layout) {
	def := Default()

	if l.Output == "" {
		l.Output = def.Output
	}

	if l.IncludedFiles == nil {
		l.IncludedFiles = def.IncludedFiles
	}

	if l.IncludedDirs == nil {
		l.IncludedDirs = def.IncludedDirs
	}

	if l.ExtractedDirs == nil {
		l.ExtractedDirs = def.ExtractedDirs
	}

	if l.ExcludedFiles == nil {
		l.ExcludedFiles = def.ExcludedFiles
	}

	if l.ConfigFiles == nil {
		l.ConfigFiles = def.ConfigFiles
	}

	if l.Static == nil {
		l.Static = def.Static
		return
	}

	s := l.Static
	if s.Filename == "" {
		s.Filename = def.Static.Filename
	}

	if s.Includes == nil {
		s.Includes = def.Static.Includes
	}

	if s.Structs == nil {
		s.Structs = def.Static.Structs
	}

	if s.Replacements == nil {
		s.Replacements = def.Static.Replacements
	}
}

// Marshal serializes a Layout to YAML.
func Marshal(l *Layout) ([]byte, error) {
	return yaml.Marshal(l)
}

// WriteFile writes a Layout to the given path.
func WriteFile(l *Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write layout file %s: %w", path, err)
	}

	return nil
}
