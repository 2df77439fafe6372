package bundle

import (
	"fmt"
	"slices"
)

// Entry is one file of the archive. Exactly one of Path and Data is used:
// entries with a Path are copied from disk, others are written from Data.
type Entry struct {
	// Name is the slash-separated name inside the archive.
	Name string
	// Path is the source file on disk.
	Path string
	// Data is the content of a generated file.
	Data []byte
}

// Generated reports whether the entry content lives in memory.
func (e Entry) Generated() bool {
	return e.Path == ""
}

// Manifest is the ordered list of archive entries. Names are unique.
type Manifest struct {
	entries []Entry
	index   map[string]int
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{index: make(map[string]int)}
}

// Add appends e. It fails if an entry with the same name exists.
func (m *Manifest) Add(e Entry) error {
	if _, ok := m.index[e.Name]; ok {
		return fmt.Errorf("duplicate archive entry %q", e.Name)
	}

	m.index[e.Name] = len(m.entries)
	m.entries = append(m.entries, e)

	return nil
}

// Put appends a generated file, replacing any entry with the same name.
// It reports whether an entry was replaced.
func (m *Manifest) Put(name string, data []byte) bool {
	i, replaced := m.index[name]
	if replaced {
		m.entries = slices.Delete(m.entries, i, i+1)
		m.reindex()
	}

	m.index[name] = len(m.entries)
	m.entries = append(m.entries, Entry{Name: name, Data: data})

	return replaced
}

// Get returns the entry named name.
func (m *Manifest) Get(name string) (Entry, bool) {
	i, ok := m.index[name]
	if !ok {
		return Entry{}, false
	}

	return m.entries[i], true
}

// Names returns the entry names in archive order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.Name
	}

	return names
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	return len(m.entries)
}

func (m *Manifest) reindex() {
	clear(m.index)

	for i, e := range m.entries {
		m.index[e.Name] = i
	}
}
