package pipeline

import (
	"fmt"

	"github.com/mirageproc/mirage/pkg/domain"
)

// Update resamples a stage's properties and recursively updates its
// children. A stage that was already updated this round is skipped, so
// shared subtrees resample exactly once regardless of call topology.
//
// On a sampler failure the tree is left partially resampled; callers should
// treat the round as unusable and not resolve it.
func Update(s Stage) error {
	bag := s.Bag()
	if bag.isFresh() {
		return nil
	}
	if err := bag.ResampleAll(); err != nil {
		return fmt.Errorf("update %s: %w", s.Name(), err)
	}
	for _, child := range s.Children() {
		if err := Update(child); err != nil {
			return err
		}
	}
	bag.markFresh()
	return nil
}

// Resolve snapshots the stage's properties, applies the transformation and
// stamps the snapshot onto the frame's provenance trail. The stage is
// marked stale so the next round's Update resamples it.
//
// Resolving without a prior Update in the same round is legal and uses
// whatever values are currently resolved, which supports one-shot
// deterministic replays.
func Resolve(s Stage, frame *domain.Frame) (*domain.Frame, error) {
	props := s.Bag().Snapshot()
	out, err := s.Apply(frame, props)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", s.Name(), err)
	}
	// Property-less stages (plain sequencing) leave no trace: the trail
	// records resolved parameters, and they have none.
	if props.Len() > 0 {
		out = out.AppendRecord(s.Name(), props)
	}
	s.Bag().markStale()
	return out, nil
}
