package pipeline

import (
	"fmt"

	"github.com/mirageproc/mirage/pkg/domain"
	"github.com/mirageproc/mirage/pkg/ports"
)

// Probabilistic applies a wrapped stage only when a fresh uniform draw
// falls below a threshold. The draw property exists purely to force a new
// random decision every round.
type Probabilistic struct {
	bag         *Bag
	feature     Stage
	probability *Property
	rng         ports.RandomSource
}

// NewProbabilistic wraps a stage with a probability gate. The probability
// property may be constant or sampled; values outside [0, 1] are accepted
// as given and compared directly, so a negative threshold never applies and
// a threshold above one always applies.
func NewProbabilistic(feature Stage, probability *Property, rng ports.RandomSource) (*Probabilistic, error) {
	if err := checkUpstream(feature); err != nil {
		return nil, fmt.Errorf("probabilistic: feature: %w", err)
	}
	if probability == nil {
		return nil, fmt.Errorf("probabilistic: probability property is required")
	}
	if rng == nil {
		return nil, fmt.Errorf("probabilistic: random source is required")
	}
	p := &Probabilistic{feature: feature, probability: probability, rng: rng}
	p.bag = NewBag(
		Entry{Name: "probability", Property: probability},
		Entry{Name: "draw", Property: Sampled(func(View) (any, error) {
			return rng.Float64(), nil
		})},
	)
	return p, nil
}

// Name implements Stage.
func (p *Probabilistic) Name() string { return "maybe" }

// Bag implements Stage.
func (p *Probabilistic) Bag() *Bag { return p.bag }

// Children implements Stage.
func (p *Probabilistic) Children() []Stage {
	return []Stage{p.feature}
}

// Apply resolves the wrapped stage iff draw < probability. On a skip the
// frame passes through unchanged and the wrapped stage leaves no trace on
// the trail, since it never ran.
func (p *Probabilistic) Apply(frame *domain.Frame, props domain.Record) (*domain.Frame, error) {
	draw, ok := props.Float64("draw")
	if !ok {
		// No draw has been sampled yet (resolve without update): no
		// fresh decision exists, so the gate stays closed.
		return frame, nil
	}
	threshold, _ := props.Float64("probability")
	if draw < threshold {
		return Resolve(p.feature, frame)
	}
	return frame, nil
}

// Clone implements Stage.
func (p *Probabilistic) Clone() Stage {
	clone, _ := NewProbabilistic(p.feature.Clone(), p.probability.Clone(), p.rng)
	return clone
}
