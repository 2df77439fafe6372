// Package export builds the libsmp Arduino library archive from a project
// tree and a layout.
package export

import (
	"fmt"
	"log"
	"os"
	"time"

	"libsmp-export/internal/bundle"
	"libsmp-export/internal/configgen"
	"libsmp-export/internal/layout"
	"libsmp-export/internal/static"
)

// Options configures one export run.
type Options struct {
	// Root is the project directory.
	Root string
	// Layout describes the archive. Nil means layout.Default().
	Layout *layout.Layout
	// Provider supplies configuration values. Nil means defaults.
	Provider configgen.Provider
	// Logger receives warnings. Nil means the standard logger.
	Logger *log.Logger
	// Modified is the timestamp of generated entries. Zero means now.
	Modified time.Time
	// CollectAll reports every static struct failure instead of the first.
	CollectAll bool
}

func (o *Options) normalize() error {
	if o.Layout == nil {
		o.Layout = layout.Default()
	}

	if o.Provider == nil {
		o.Provider = configgen.Defaults{}
	}

	if o.Logger == nil {
		o.Logger = log.Default()
	}

	diags := layout.Validate(o.Layout)
	for _, w := range diags.Warnings {
		o.Logger.Printf("layout: %s", w)
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}

	return nil
}

// StaticHeader generates the static struct header of the layout.
func StaticHeader(opts Options) ([]byte, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}

	return staticHeader(opts)
}

func staticHeader(opts Options) ([]byte, error) {
	cfg := opts.Layout.Static.Config()
	cfg.CollectAll = opts.CollectAll

	out, err := static.Generate(os.DirFS(opts.Root), cfg)
	if err != nil {
		return nil, fmt.Errorf("static header %s: %w", opts.Layout.Static.Filename, err)
	}

	return out, nil
}

// Build assembles the manifest of the archive without writing it.
//
// The static header is generated before any configuration value is asked
// for, so a broken header tree fails before prompting.
func Build(opts Options) (*bundle.Manifest, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}

	hdr, err := staticHeader(opts)
	if err != nil {
		return nil, err
	}

	l := opts.Layout

	m, err := bundle.NewCollector(opts.Logger).Collect(bundle.Sources{
		Root:     opts.Root,
		Files:    l.IncludedFiles,
		Dirs:     l.IncludedDirs,
		FlatDirs: l.ExtractedDirs,
		Excluded: l.ExcludedFiles,
	})
	if err != nil {
		return nil, fmt.Errorf("collecting files: %w", err)
	}

	for _, cf := range l.ConfigFiles {
		data, err := configgen.Generate(cf.Params, opts.Provider)
		if err != nil {
			return nil, fmt.Errorf("config file %s: %w", cf.Name, err)
		}

		put(m, opts.Logger, cf.Name, data)
	}

	put(m, opts.Logger, l.Static.Filename, hdr)

	return m, nil
}

func put(m *bundle.Manifest, logger *log.Logger, name string, data []byte) {
	if m.Put(name, data) {
		logger.Printf("%s: project copy replaced by generated file", name)
	}
}

// Archive builds the manifest and writes it to dest. Nothing is written
// when any step fails.
func Archive(dest string, opts Options) error {
	m, err := Build(opts)
	if err != nil {
		return err
	}

	w := &bundle.Writer{Modified: opts.Modified}
	if err := w.WriteFile(dest, m); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}

	return nil
}
