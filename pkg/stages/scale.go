package stages

import (
	"github.com/mirageproc/mirage/pkg/domain"
	"github.com/mirageproc/mirage/pkg/pipeline"
)

// Scale multiplies every sample of the frame by a factor.
type Scale struct {
	bag    *pipeline.Bag
	factor *pipeline.Property
}

// NewScale builds a scaling stage. A nil factor defaults to a constant one.
func NewScale(factor *pipeline.Property) *Scale {
	if factor == nil {
		factor = pipeline.Constant(1.0)
	}
	s := &Scale{factor: factor}
	s.bag = pipeline.NewBag(pipeline.Entry{Name: "factor", Property: factor})
	return s
}

// Name implements pipeline.Stage.
func (s *Scale) Name() string { return "scale" }

// Bag implements pipeline.Stage.
func (s *Scale) Bag() *pipeline.Bag { return s.bag }

// Children implements pipeline.Stage.
func (s *Scale) Children() []pipeline.Stage { return nil }

// Apply implements pipeline.Stage.
func (s *Scale) Apply(frame *domain.Frame, props domain.Record) (*domain.Frame, error) {
	f, ok := props.Float64("factor")
	if !ok {
		f = 1
	}
	for i := range frame.Pixels {
		frame.Pixels[i] *= f
	}
	return frame, nil
}

// Clone implements pipeline.Stage.
func (s *Scale) Clone() pipeline.Stage {
	return NewScale(s.factor.Clone())
}
