package pipeline

import (
	"fmt"

	"github.com/mirageproc/mirage/pkg/domain"
)

// Stage is a unit of the generation pipeline. A stage owns a property bag,
// exposes its sub-stages for update traversal, transforms a frame given a
// resolved-property snapshot, and knows how to clone itself with fresh
// identity.
//
// Apply must be pure given the snapshot and the input frame: it must not
// read unresolved mutable state. Combinators own their children; Children
// exists so the lifecycle can traverse the tree without inspecting property
// values at runtime.
type Stage interface {
	// Name identifies the stage in provenance trails and diagnostics.
	Name() string

	// Bag returns the stage's property bag.
	Bag() *Bag

	// Children returns the sub-stages to traverse during an update.
	Children() []Stage

	// Apply transforms a frame using a resolved-property snapshot.
	Apply(frame *domain.Frame, props domain.Record) (*domain.Frame, error)

	// Clone returns an independent structural copy: an owned bag, cloned
	// children, no shared mutable state with the original.
	Clone() Stage
}

// RootOnly marks stages that generate frames and therefore cannot be wired
// where they would consume an upstream frame. Combinator constructors
// reject root-only stages in consuming positions.
type RootOnly interface {
	RootOnly()
}

// checkUpstream validates that s can legally receive an upstream frame.
func checkUpstream(s Stage) error {
	if s == nil {
		return domain.ErrNilStage
	}
	if _, ok := s.(RootOnly); ok {
		return fmt.Errorf("%w: %s", domain.ErrLeafUpstream, s.Name())
	}
	return nil
}
