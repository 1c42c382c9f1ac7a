package pipeline

import (
	"fmt"

	"github.com/mirageproc/mirage/pkg/domain"
)

// Sequence applies one stage and feeds its output to a second stage.
// Order is fixed left to right.
type Sequence struct {
	bag    *Bag
	first  Stage
	second Stage
}

// NewSequence composes two stages. The second stage receives the first
// stage's output as its upstream, so a root-only stage is rejected in
// second position at construction time.
func NewSequence(first, second Stage) (*Sequence, error) {
	if first == nil {
		return nil, fmt.Errorf("sequence: first: %w", domain.ErrNilStage)
	}
	if err := checkUpstream(second); err != nil {
		return nil, fmt.Errorf("sequence: second: %w", err)
	}
	return &Sequence{bag: NewBag(), first: first, second: second}, nil
}

// Chain folds stages into a left-associative sequence.
func Chain(stages ...Stage) (Stage, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("chain: %w", domain.ErrNilStage)
	}
	root := stages[0]
	for _, s := range stages[1:] {
		seq, err := NewSequence(root, s)
		if err != nil {
			return nil, err
		}
		root = seq
	}
	return root, nil
}

// Name implements Stage.
func (s *Sequence) Name() string { return "sequence" }

// Bag implements Stage.
func (s *Sequence) Bag() *Bag { return s.bag }

// Children implements Stage.
func (s *Sequence) Children() []Stage {
	return []Stage{s.first, s.second}
}

// Apply resolves the first stage, then resolves the second on its output.
func (s *Sequence) Apply(frame *domain.Frame, _ domain.Record) (*domain.Frame, error) {
	out, err := Resolve(s.first, frame)
	if err != nil {
		return nil, err
	}
	return Resolve(s.second, out)
}

// Clone implements Stage.
func (s *Sequence) Clone() Stage {
	// Wiring was validated at construction; cloning cannot re-fail it.
	clone, _ := NewSequence(s.first.Clone(), s.second.Clone())
	return clone
}
