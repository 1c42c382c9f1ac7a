// Package memory provides an in-memory ports.FrameSource, mainly for tests
// and examples.
package memory

import (
	"fmt"

	"github.com/mirageproc/mirage/pkg/domain"
	"github.com/mirageproc/mirage/pkg/ports"
)

// Source cycles through a fixed set of frames, reshuffling the order every
// time the set is exhausted. It implements ports.FrameSource.
type Source struct {
	frames []*domain.Frame
	rng    ports.RandomSource
	queue  []int
}

// NewFromFrames builds a source over the given frames. The backing
// collection must not be empty.
func NewFromFrames(rng ports.RandomSource, frames ...*domain.Frame) (*Source, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("memory source: %w", domain.ErrEmptyDataset)
	}
	if rng == nil {
		return nil, fmt.Errorf("memory source: random source is required")
	}
	return &Source{frames: frames, rng: rng}, nil
}

// Next returns a copy of the next frame in the current shuffled order,
// reshuffling once the order is exhausted.
func (s *Source) Next() (*domain.Frame, error) {
	if len(s.queue) == 0 {
		s.queue = make([]int, len(s.frames))
		for i := range s.queue {
			s.queue[i] = i
		}
		shuffle(s.queue, s.rng)
	}
	idx := s.queue[0]
	s.queue = s.queue[1:]
	return s.frames[idx].Clone(), nil
}

func shuffle(idx []int, rng ports.RandomSource) {
	for i := len(idx) - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		idx[i], idx[j] = idx[j], idx[i]
	}
}
