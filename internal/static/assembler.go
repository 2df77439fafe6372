package static

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"libsmp-export/internal/diagnostic"
	"libsmp-export/internal/extract"
	"libsmp-export/internal/source"
)

// Diagnostic codes reported in collect-all mode.
const (
	CodeStructNotFound   = "struct_not_found"
	CodeUnbalancedBraces = "unbalanced_braces"
	CodeSourceUnreadable = "source_unreadable"
	CodeExtractFailed    = "extract_failed"
)

// Assembler builds the static header from headers found in a file system.
type Assembler struct {
	config Config
	loader *source.Loader
}

// NewAssembler creates an Assembler reading headers from fsys.
func NewAssembler(fsys fs.FS, config Config) *Assembler {
	return &Assembler{
		config: config,
		loader: source.NewLoader(fsys),
	}
}

// Generate is a shorthand for NewAssembler(fsys, config).Generate().
func Generate(fsys fs.FS, config Config) ([]byte, error) {
	return NewAssembler(fsys, config).Generate()
}

// Declaration is one rewritten struct ready to be emitted.
type Declaration struct {
	Spec Spec
	Body string
}

// Generate extracts, rewrites and emits every configured struct.
// It returns nil output on any failure.
func (a *Assembler) Generate() ([]byte, error) {
	decls, err := a.Declarations()
	if err != nil {
		return nil, err
	}

	return a.Render(decls), nil
}

// Declarations runs extraction and rewriting for every spec, in order.
func (a *Assembler) Declarations() ([]Declaration, error) {
	if err := a.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid static configuration: %w", err)
	}

	decls := make([]Declaration, 0, len(a.config.Specs))
	diags := &diagnostic.Diagnostics{}

	for _, spec := range a.config.Specs {
		decl, err := a.declaration(spec)
		if err != nil {
			if !a.config.CollectAll {
				return nil, fmt.Errorf("generating %s: %w", spec.Target, err)
			}

			diags.AddErr(codeFor(err), err, spec.Header, spec.Source)

			continue
		}

		decls = append(decls, decl)
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("generating static header: %w", diags.Error())
	}

	return decls, nil
}

func (a *Assembler) declaration(spec Spec) (Declaration, error) {
	hdr, err := a.loader.Load(spec.Header)
	if err != nil {
		return Declaration{}, err
	}

	body, err := extract.Struct(hdr.Text, spec.Source)
	if err != nil {
		var e *extract.Error
		if errors.As(err, &e) {
			return Declaration{}, e.WithHeader(hdr.Path)
		}

		return Declaration{}, err
	}

	return Declaration{
		Spec: spec,
		Body: a.config.Replacements.Apply(body),
	}, nil
}

// Render concatenates the boilerplate and the declarations.
func (a *Assembler) Render(decls []Declaration) []byte {
	var sb strings.Builder

	sb.WriteString("#pragma once\n\n")

	if len(a.config.Includes) > 0 {
		for _, inc := range a.config.Includes {
			sb.WriteString("#include " + includeSpec(inc) + "\n")
		}

		sb.WriteString("\n")
	}

	sb.WriteString("#ifdef __cplusplus\n" +
		"extern \"C\" {\n" +
		"#endif\n\n")

	for _, d := range decls {
		name := d.Spec.Target
		sb.WriteString("typedef struct " + name + " " + name + ";\n")
		sb.WriteString("struct " + name + " {\n")
		sb.WriteString(d.Body)
		sb.WriteString("};\n")
	}

	sb.WriteString("#ifdef __cplusplus\n" +
		"}\n" +
		"#endif")

	return []byte(sb.String())
}

func includeSpec(inc string) string {
	inc = strings.TrimSpace(inc)
	if len(inc) >= 2 {
		first, last := inc[0], inc[len(inc)-1]
		if (first == '<' && last == '>') || (first == '"' && last == '"') {
			return inc
		}
	}

	return `"` + inc + `"`
}

func codeFor(err error) string {
	switch extract.KindOf(err) {
	case extract.KindStructNotFound:
		return CodeStructNotFound
	case extract.KindUnbalancedBraces:
		return CodeUnbalancedBraces
	case extract.KindSourceUnreadable:
		return CodeSourceUnreadable
	default:
		return CodeExtractFailed
	}
}
