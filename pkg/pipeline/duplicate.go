package pipeline

import (
	"fmt"

	"github.com/mirageproc/mirage/pkg/domain"
)

// Duplicate threads a frame through N independent structural clones of a
// template stage. Every resample pass rebuilds the replica list from
// scratch: the count resamples first, then the replicas sampler reads the
// same-pass count, clones the template that many times and pre-updates each
// clone, so each replica carries its own independently sampled subtree.
type Duplicate struct {
	bag      *Bag
	template Stage
	count    *Property
}

// NewDuplicate builds a duplicating combinator. The count property may be a
// constant or a sampled integer; it must resolve to a value >= 0. Replicas
// receive the upstream frame, so a root-only template is rejected.
func NewDuplicate(template Stage, count *Property) (*Duplicate, error) {
	if err := checkUpstream(template); err != nil {
		return nil, fmt.Errorf("duplicate: template: %w", err)
	}
	if count == nil {
		return nil, fmt.Errorf("duplicate: count property is required")
	}
	d := &Duplicate{template: template, count: count}
	// count must be declared before replicas: the replicas sampler reads
	// the count resolved moments earlier in the same pass.
	d.bag = NewBag(
		Entry{Name: "count", Property: count},
		Entry{Name: "replicas", Property: Sampled(d.sampleReplicas)},
	)
	return d, nil
}

func (d *Duplicate) sampleReplicas(view View) (any, error) {
	raw, ok := view.Value("count")
	if !ok {
		return nil, fmt.Errorf("count is not visible to the replicas sampler")
	}
	n, ok := asInt(raw)
	if !ok {
		return nil, fmt.Errorf("count resolved to %T, want an integer", raw)
	}
	if n < 0 {
		return nil, fmt.Errorf("count resolved to %d, want >= 0", n)
	}
	replicas := make([]Stage, n)
	for i := range replicas {
		r := d.template.Clone()
		if err := Update(r); err != nil {
			return nil, err
		}
		replicas[i] = r
	}
	return replicas, nil
}

// Name implements Stage.
func (d *Duplicate) Name() string { return "duplicate" }

// Bag implements Stage.
func (d *Duplicate) Bag() *Bag { return d.bag }

// Children returns the current replica list. Replicas arrive pre-updated,
// so traversal finds them fresh; the template itself is only ever touched
// through cloning.
func (d *Duplicate) Children() []Stage {
	if v, ok := d.bag.Value("replicas"); ok {
		if replicas, ok := v.([]Stage); ok {
			return replicas
		}
	}
	return nil
}

// Apply folds the frame through the replicas in list order. An empty (or
// never-sampled) replica list passes the frame through unchanged.
func (d *Duplicate) Apply(frame *domain.Frame, props domain.Record) (*domain.Frame, error) {
	v, _ := props.Get("replicas")
	replicas, _ := v.([]Stage)
	var err error
	for _, r := range replicas {
		frame, err = Resolve(r, frame)
		if err != nil {
			return nil, err
		}
	}
	return frame, nil
}

// Clone implements Stage.
func (d *Duplicate) Clone() Stage {
	clone, _ := NewDuplicate(d.template.Clone(), d.count.Clone())
	return clone
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
