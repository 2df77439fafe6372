// Package source loads C header text for extraction.
//
// Headers are read in full once per Loader and never modified afterwards.
package source

import (
	"io/fs"
	"path"

	"libsmp-export/internal/extract"
)

// Header is the raw text of one header file.
type Header struct {
	// Path is the slash-separated path relative to the loader's root.
	Path string
	Text string
}

// Loader reads headers from a file system and caches them by path.
// A Loader is not safe for concurrent use.
type Loader struct {
	fsys  fs.FS
	cache map[string]*Header
}

// NewLoader creates a Loader reading from fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[string]*Header),
	}
}

// Load returns the header at p, reading it on first use.
// Read failures are reported as an *extract.Error of kind KindSourceUnreadable.
func (l *Loader) Load(p string) (*Header, error) {
	p = path.Clean(p)

	if h, ok := l.cache[p]; ok {
		return h, nil
	}

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, &extract.Error{Kind: extract.KindSourceUnreadable, Header: p, Err: err}
	}

	h := &Header{Path: p, Text: string(data)}
	l.cache[p] = h

	return h, nil
}

// Len returns the number of cached headers.
func (l *Loader) Len() int {
	return len(l.cache)
}
