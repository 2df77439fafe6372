package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"slices"
)

// Sources lists the project files to archive.
type Sources struct {
	// Root is the project directory all other paths are relative to.
	Root string
	// Files are archived under their base name.
	Files []string
	// Dirs are archived with their tree under the directory's base name.
	Dirs []string
	// FlatDirs have every file archived under its base name.
	FlatDirs []string
	// Excluded are base names skipped while walking Dirs and FlatDirs.
	Excluded []string
}

// Collector builds a manifest from Sources.
type Collector struct {
	// Logger receives warnings about missing or duplicate files.
	Logger *log.Logger
}

// NewCollector creates a Collector logging to logger, or to the standard
// logger when nil.
func NewCollector(logger *log.Logger) *Collector {
	if logger == nil {
		logger = log.Default()
	}

	return &Collector{Logger: logger}
}

// Collect walks the sources. Missing files and directories are logged and
// skipped; any other file system error aborts.
func (c *Collector) Collect(src Sources) (*Manifest, error) {
	m := NewManifest()

	for _, f := range src.Files {
		full := filepath.Join(src.Root, f)

		info, err := os.Stat(full)
		if err != nil || !info.Mode().IsRegular() {
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("stat %s: %w", full, err)
			}

			c.Logger.Printf("%s: no such file", full)

			continue
		}

		c.add(m, Entry{Name: filepath.Base(full), Path: full})
	}

	for _, d := range src.Dirs {
		if err := c.walk(m, src, d, true); err != nil {
			return nil, err
		}
	}

	for _, d := range src.FlatDirs {
		if err := c.walk(m, src, d, false); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (c *Collector) walk(m *Manifest, src Sources, dir string, keepTree bool) error {
	full := filepath.Clean(filepath.Join(src.Root, dir))

	info, err := os.Stat(full)
	if err != nil || !info.IsDir() {
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", full, err)
		}

		c.Logger.Printf("%s: no such directory", full)

		return nil
	}

	base := filepath.Base(full)

	// WalkDir visits entries in lexical order, which keeps archives stable.
	return filepath.WalkDir(full, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", full, err)
		}

		if !d.Type().IsRegular() || slices.Contains(src.Excluded, d.Name()) {
			return nil
		}

		name := d.Name()

		if keepTree {
			rel, err := filepath.Rel(full, p)
			if err != nil {
				return err
			}

			name = path.Join(base, filepath.ToSlash(rel))
		}

		c.add(m, Entry{Name: name, Path: p})

		return nil
	})
}

func (c *Collector) add(m *Manifest, e Entry) {
	if err := m.Add(e); err != nil {
		c.Logger.Printf("%s: skipped, %v", e.Path, err)
	}
}
