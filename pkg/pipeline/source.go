package pipeline

import (
	"fmt"

	"github.com/mirageproc/mirage/pkg/domain"
	"github.com/mirageproc/mirage/pkg/ports"
)

// Source is a root-only leaf that draws raw frames from an external
// collaborator. Each resample pass pulls the next frame from the sequence;
// Apply combines it into the input frame.
type Source struct {
	bag *Bag
	src ports.FrameSource
}

// NewSource builds a leaf over a frame source. The source is expected to be
// infinite and randomized; an exhausted or misconfigured source surfaces
// through Next errors during Update.
func NewSource(src ports.FrameSource) (*Source, error) {
	if src == nil {
		return nil, fmt.Errorf("source: frame source is required")
	}
	s := &Source{src: src}
	s.bag = NewBag(
		Entry{Name: "frame", Property: Sampled(func(View) (any, error) {
			f, err := src.Next()
			if err != nil {
				return nil, err
			}
			return f, nil
		})},
	)
	return s, nil
}

// RootOnly marks the stage as frame-generating: combinators reject it in
// any position where it would consume an upstream frame.
func (s *Source) RootOnly() {}

// Name implements Stage.
func (s *Source) Name() string { return "source" }

// Bag implements Stage.
func (s *Source) Bag() *Bag { return s.bag }

// Children implements Stage.
func (s *Source) Children() []Stage { return nil }

// Apply combines the input frame with the frame drawn during the last
// resample pass. With no drawn frame yet, the input passes through.
func (s *Source) Apply(frame *domain.Frame, props domain.Record) (*domain.Frame, error) {
	v, _ := props.Get("frame")
	raw, ok := v.(*domain.Frame)
	if !ok || raw == nil {
		return frame, nil
	}
	return frame.Combine(raw)
}

// Clone implements Stage. The underlying sequence is shared: it is a
// single non-restartable stream, so clones simply draw successive frames
// from it.
func (s *Source) Clone() Stage {
	clone, _ := NewSource(s.src)
	return clone
}
