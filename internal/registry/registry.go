// Package registry holds the merged service table: a sorted, deduplicated
// collection of service names annotated with the value each name held in
// each version.
package registry

import "sort"

// Entry tracks one distinct service name across all versions. A version
// missing from the entry means the name did not appear in that build.
type Entry struct {
	Name   string
	values map[string]int64
}

// Value returns the entry's value in the given version, if any.
func (e *Entry) Value(version string) (int64, bool) {
	v, ok := e.values[version]
	return v, ok
}

// VersionCount returns how many versions recorded a value for this entry.
func (e *Entry) VersionCount() int { return len(e.values) }

// Registry is an ordered collection of entries, sorted by name with
// byte-wise comparison and no duplicates. It has exactly one mutator
// during ingest and is frozen before any renderer sees it.
type Registry struct {
	entries []*Entry
	frozen  bool
}

// New returns an empty, mutable registry.
func New() *Registry { return &Registry{} }

// FindOrCreate returns the entry for name, inserting a new one at its
// sorted position when absent. Lookup is a binary search; insertion
// shifts the tail so ordered iteration needs no separate sort pass.
func (r *Registry) FindOrCreate(name string) *Entry {
	r.mustMutable()
	i := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].Name >= name
	})
	if i < len(r.entries) && r.entries[i].Name == name {
		return r.entries[i]
	}
	e := &Entry{Name: name, values: make(map[string]int64)}
	r.entries = append(r.entries, nil)
	copy(r.entries[i+1:], r.entries[i:])
	r.entries[i] = e
	return e
}

// SetValue records the entry's value for a version. A name recurring
// within the same version overwrites the earlier value silently.
func (r *Registry) SetValue(e *Entry, version string, value int64) {
	r.mustMutable()
	e.values[version] = value
}

// Find returns the entry for name, or nil when absent. Safe on a frozen
// registry.
func (r *Registry) Find(name string) *Entry {
	i := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].Name >= name
	})
	if i < len(r.entries) && r.entries[i].Name == name {
		return r.entries[i]
	}
	return nil
}

// Freeze marks the registry read-only. Ingest is the only mutator, so a
// mutation after Freeze is a programming error and panics.
func (r *Registry) Freeze() { r.frozen = true }

// Frozen reports whether the registry has been frozen.
func (r *Registry) Frozen() bool { return r.frozen }

// Len returns the number of distinct names.
func (r *Registry) Len() int { return len(r.entries) }

// Entries returns the entries in ascending name order. Callers must not
// modify the returned slice.
func (r *Registry) Entries() []*Entry { return r.entries }

func (r *Registry) mustMutable() {
	if r.frozen {
		panic("registry: mutation after Freeze")
	}
}
