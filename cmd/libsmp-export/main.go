// Package main provides the CLI entrypoint for libsmp-export.
//
// libsmp-export packages the libsmp sources as an Arduino library:
//   - Copies the public headers and portable sources into one flat archive
//   - Generates configuration headers, asking for each value
//   - Generates libsmp-static.h, static twins of the library's opaque structs
//
// Usage:
//
//	libsmp-export [flags] [output.zip]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"libsmp-export/internal/bundle"
	"libsmp-export/internal/configgen"
	"libsmp-export/internal/export"
	"libsmp-export/internal/layout"
)

type options struct {
	root       string
	layoutPath string
	envFile    string
	defaults   bool
	headerOnly bool
	collectAll bool
	dump       bool
	output     string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("libsmp-export", flag.ContinueOnError)
	opts := &options{}

	fs.StringVar(&opts.root, "root", ".", "libsmp project root")
	fs.StringVar(&opts.layoutPath, "layout", "", "YAML layout file (default: built-in libsmp layout)")
	fs.StringVar(&opts.envFile, "env", "", "dotenv file with configuration values")
	fs.BoolVar(&opts.defaults, "defaults", false, "do not prompt, use default configuration values")
	fs.BoolVar(&opts.headerOnly, "header-only", false, "write only the static struct header to the output path")
	fs.BoolVar(&opts.collectAll, "collect-all", false, "report every static struct failure, not only the first")
	fs.BoolVar(&opts.dump, "dump", false, "dump the effective layout and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: libsmp-export [flags] [output]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.output = fs.Arg(0)
	default:
		return nil, fmt.Errorf("expected at most one output file, got %d", fs.NArg())
	}

	return opts, nil
}

func loadLayout(opts *options) (*layout.Layout, error) {
	if opts.layoutPath == "" {
		return layout.Default(), nil
	}

	return layout.LoadFile(opts.layoutPath)
}

func provider(opts *options) (configgen.Provider, error) {
	var files []string
	if opts.envFile != "" {
		files = append(files, opts.envFile)
	}

	env, err := configgen.NewEnv(files...)
	if err != nil {
		return nil, err
	}

	if opts.defaults {
		return configgen.Chain{env, configgen.Defaults{}}, nil
	}

	return configgen.Chain{env, configgen.NewPrompt(os.Stdin, os.Stdout)}, nil
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	l, err := loadLayout(opts)
	if err != nil {
		return err
	}

	if opts.dump {
		spew.Dump(l)
		return nil
	}

	if opts.output == "" {
		opts.output = l.Output
		if opts.headerOnly {
			opts.output = l.Static.Filename
		}
	}

	prov, err := provider(opts)
	if err != nil {
		return err
	}

	exportOpts := export.Options{
		Root:       opts.root,
		Layout:     l,
		Provider:   prov,
		CollectAll: opts.collectAll,
	}

	if opts.headerOnly {
		hdr, err := export.StaticHeader(exportOpts)
		if err != nil {
			return err
		}

		if err := bundle.WriteBytes(opts.output, hdr); err != nil {
			return err
		}

		fmt.Println("Static header generated:", absPath(opts.output))

		return nil
	}

	if err := export.Archive(opts.output, exportOpts); err != nil {
		return err
	}

	fmt.Println("Arduino library generated:", absPath(opts.output))

	return nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}

	return p
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
