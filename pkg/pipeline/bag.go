package pipeline

import (
	"fmt"

	"github.com/mirageproc/mirage/pkg/domain"
)

// Entry pairs a property with its name inside a bag.
type Entry struct {
	Name     string
	Property *Property
}

// Bag is the ordered collection of a stage's properties. Insertion order is
// semantically significant: a resample pass walks entries strictly in
// declaration order, and a sampler for entry k observes the same-pass value
// of any entry declared before k. The bag is fixed-shape once built.
//
// The bag also carries the stage's per-round gate: a stage starts stale,
// Update marks it fresh, Resolve marks it stale again.
type Bag struct {
	entries []Entry
	fresh   bool
}

// NewBag builds a bag from entries in declaration order.
// Names must be unique within a bag.
func NewBag(entries ...Entry) *Bag {
	return &Bag{entries: entries}
}

// Len returns the number of properties.
func (b *Bag) Len() int {
	return len(b.entries)
}

// Names returns the property names in declaration order.
func (b *Bag) Names() []string {
	names := make([]string, len(b.entries))
	for i, e := range b.entries {
		names[i] = e.Name
	}
	return names
}

// Value returns the current value of a property by name.
func (b *Bag) Value(name string) (any, bool) {
	for _, e := range b.entries {
		if e.Name == name {
			return e.Property.Current(), true
		}
	}
	return nil, false
}

// ResampleAll resamples every property in declaration order. The sampler of
// entry k is handed a view onto entries [0, k) only, so the ordering
// dependency is explicit. The pass aborts on the first failing sampler,
// leaving the bag partially resampled; no rollback is attempted.
func (b *Bag) ResampleAll() error {
	for i, e := range b.entries {
		view := prefixView{entries: b.entries[:i]}
		if err := e.Property.Resample(view); err != nil {
			return fmt.Errorf("resample %q: %w", e.Name, err)
		}
	}
	return nil
}

// Snapshot returns the current values as an ordered record. Legal before
// any resample pass; sampled properties then report nil.
func (b *Bag) Snapshot() domain.Record {
	fields := make([]domain.Field, len(b.entries))
	for i, e := range b.entries {
		fields[i] = domain.Field{Name: e.Name, Value: e.Property.Current()}
	}
	return domain.NewRecord(fields...)
}

// Clone returns an independent copy of the bag. The copy starts stale, so
// its owner resamples on its next update.
func (b *Bag) Clone() *Bag {
	entries := make([]Entry, len(b.entries))
	for i, e := range b.entries {
		entries[i] = Entry{Name: e.Name, Property: e.Property.Clone()}
	}
	return &Bag{entries: entries}
}

func (b *Bag) isFresh() bool { return b.fresh }
func (b *Bag) markFresh()    { b.fresh = true }
func (b *Bag) markStale()    { b.fresh = false }

// prefixView exposes the already-resampled prefix of a bag during a pass.
type prefixView struct {
	entries []Entry
}

func (v prefixView) Value(name string) (any, bool) {
	for _, e := range v.entries {
		if e.Name == name {
			return e.Property.Current(), true
		}
	}
	return nil, false
}
