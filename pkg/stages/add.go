package stages

import (
	"github.com/mirageproc/mirage/pkg/domain"
	"github.com/mirageproc/mirage/pkg/pipeline"
)

// Add offsets every sample of the frame by a value.
type Add struct {
	bag   *pipeline.Bag
	value *pipeline.Property
}

// NewAdd builds an offset stage. The value property may be constant or
// sampled; nil defaults to a constant zero.
func NewAdd(value *pipeline.Property) *Add {
	if value == nil {
		value = pipeline.Constant(0.0)
	}
	a := &Add{value: value}
	a.bag = pipeline.NewBag(pipeline.Entry{Name: "value", Property: value})
	return a
}

// Name implements pipeline.Stage.
func (a *Add) Name() string { return "add" }

// Bag implements pipeline.Stage.
func (a *Add) Bag() *pipeline.Bag { return a.bag }

// Children implements pipeline.Stage.
func (a *Add) Children() []pipeline.Stage { return nil }

// Apply implements pipeline.Stage.
func (a *Add) Apply(frame *domain.Frame, props domain.Record) (*domain.Frame, error) {
	v, _ := props.Float64("value")
	for i := range frame.Pixels {
		frame.Pixels[i] += v
	}
	return frame, nil
}

// Clone implements pipeline.Stage.
func (a *Add) Clone() pipeline.Stage {
	return NewAdd(a.value.Clone())
}
