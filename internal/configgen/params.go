package configgen

import (
	"fmt"
	"strings"
)

// Param is one named integer constant.
type Param struct {
	Name        string `yaml:"name"`
	Default     int    `yaml:"default"`
	Description string `yaml:"description"`
}

// Provider supplies parameter values. ok is false when the provider has no
// value for p and the default should be used.
type Provider interface {
	Lookup(p Param) (value int, ok bool, err error)
}

// Resolve returns the value of every parameter, in order.
func Resolve(params []Param, prov Provider) ([]int, error) {
	values := make([]int, len(params))

	for i, p := range params {
		v, ok, err := prov.Lookup(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p.Name, err)
		}

		if !ok {
			v = p.Default
		}

		values[i] = v
	}

	return values, nil
}

// Generate renders a header defining every parameter.
func Generate(params []Param, prov Provider) ([]byte, error) {
	values, err := Resolve(params, prov)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder

	sb.WriteString("#pragma once\n\n")

	for i, p := range params {
		fmt.Fprintf(&sb, "/* %s */\n", p.Description)
		fmt.Fprintf(&sb, "#define %s %d\n\n", p.Name, values[i])
	}

	return []byte(sb.String()), nil
}
