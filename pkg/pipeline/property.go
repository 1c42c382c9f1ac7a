package pipeline

// View is a read-only handle onto the already-resampled portion of a bag.
// It is handed to samplers during a resample pass; a sampler only ever sees
// properties declared before its own in the same bag, already updated for
// the current pass.
type View interface {
	// Value returns the current value of a property, and whether the
	// property is visible through this view.
	Value(name string) (any, bool)
}

// Sampler produces a fresh value for a property. It is invoked once per
// resample pass; errors abort the pass and propagate to the caller of
// Update untouched.
type Sampler func(View) (any, error)

// Property is a single named value slot on a stage: either a constant or a
// sampler that is re-invoked every resample pass. A constant never changes
// after construction.
type Property struct {
	current any
	sample  Sampler
}

// Constant returns a property that always holds v.
func Constant(v any) *Property {
	return &Property{current: v}
}

// Sampled returns a property that re-draws its value from fn on every
// resample pass. Before the first pass its current value is nil.
func Sampled(fn Sampler) *Property {
	return &Property{sample: fn}
}

// IsConstant reports whether the property has no sampler.
func (p *Property) IsConstant() bool {
	return p.sample == nil
}

// Current returns the last resolved value. Side-effect free.
func (p *Property) Current() any {
	return p.current
}

// Resample draws a fresh value if the property has a sampler, reading
// earlier same-pass values through the view. Constants are untouched.
func (p *Property) Resample(view View) error {
	if p.sample == nil {
		return nil
	}
	v, err := p.sample(view)
	if err != nil {
		return err
	}
	p.current = v
	return nil
}

// Clone returns an independent copy of the property. The sampler is shared
// (samplers are stateless draws over injected sources); the current value
// is cloned structurally where it is itself a stage or a list of stages.
func (p *Property) Clone() *Property {
	return &Property{
		current: cloneValue(p.current),
		sample:  p.sample,
	}
}

// cloneValue deep-copies property values that carry stage identity, so a
// cloned property never aliases another stage's subtree.
func cloneValue(v any) any {
	switch val := v.(type) {
	case Stage:
		return val.Clone()
	case []Stage:
		out := make([]Stage, len(val))
		for i, s := range val {
			out[i] = s.Clone()
		}
		return out
	default:
		return v
	}
}
