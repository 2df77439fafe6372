package configgen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults never has a value, so every parameter keeps its default.
type Defaults struct{}

// Lookup implements Provider.
func (Defaults) Lookup(Param) (int, bool, error) {
	return 0, false, nil
}

// Map serves values from a fixed map keyed by parameter name.
type Map map[string]int

// Lookup implements Provider.
func (m Map) Lookup(p Param) (int, bool, error) {
	v, ok := m[p.Name]
	return v, ok, nil
}

// Chain asks each provider in turn and returns the first value found.
type Chain []Provider

// Lookup implements Provider.
func (c Chain) Lookup(p Param) (int, bool, error) {
	for _, prov := range c {
		v, ok, err := prov.Lookup(p)
		if err != nil || ok {
			return v, ok, err
		}
	}

	return 0, false, nil
}

// Env reads values from process environment variables named after the
// parameters, then from dotenv files. The environment takes precedence.
type Env struct {
	lookupEnv func(string) (string, bool)
	file      map[string]string
}

// NewEnv loads the given dotenv files. With no files only the process
// environment is consulted.
func NewEnv(files ...string) (*Env, error) {
	e := &Env{lookupEnv: os.LookupEnv, file: map[string]string{}}
	if len(files) == 0 {
		return e, nil
	}

	vals, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("reading env files: %w", err)
	}

	e.file = vals

	return e, nil
}

// ParseEnv builds an Env from dotenv-formatted text, ignoring the process
// environment.
func ParseEnv(r io.Reader) (*Env, error) {
	vals, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing env: %w", err)
	}

	return &Env{
		lookupEnv: func(string) (string, bool) { return "", false },
		file:      vals,
	}, nil
}

// Lookup implements Provider. A value that is not an integer is an error.
func (e *Env) Lookup(p Param) (int, bool, error) {
	raw, ok := e.lookupEnv(p.Name)
	if !ok {
		raw, ok = e.file[p.Name]
	}

	if !ok {
		return 0, false, nil
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false, fmt.Errorf("%s=%q is not an integer", p.Name, raw)
	}

	return v, true, nil
}

// Prompt asks for each value on out and reads the answer from in.
// An empty or non-integer answer, or end of input, selects the default.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompt creates a Prompt reading answers line by line from in.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewScanner(in), out: out}
}

// Lookup implements Provider. It always reports a value.
func (pr *Prompt) Lookup(p Param) (int, bool, error) {
	fmt.Fprintf(pr.out, "%s [default=%d]  %s\n", p.Name, p.Default, p.Description)
	fmt.Fprint(pr.out, "> ")

	v := p.Default

	if pr.in.Scan() {
		if n, err := strconv.Atoi(strings.TrimSpace(pr.in.Text())); err == nil {
			v = n
		}
	} else if err := pr.in.Err(); err != nil {
		return 0, false, fmt.Errorf("reading answer for %s: %w", p.Name, err)
	}

	fmt.Fprintf(pr.out, "%s = %d\n\n", p.Name, v)

	return v, true, nil
}
