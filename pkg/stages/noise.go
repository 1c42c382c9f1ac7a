package stages

import (
	"math"
	"math/rand/v2"

	"github.com/mirageproc/mirage/pkg/domain"
	"github.com/mirageproc/mirage/pkg/pipeline"
	"github.com/mirageproc/mirage/pkg/ports"
)

// Noise adds zero-mean gaussian noise to every sample.
//
// Apply must be pure given the property snapshot, so the per-pixel
// randomness is derived from a seed property resampled once per round: the
// same snapshot always reproduces the same noise field.
type Noise struct {
	bag   *pipeline.Bag
	sigma *pipeline.Property
	rng   ports.RandomSource
}

// NewNoise builds a gaussian noise stage. The sigma property may be
// constant or sampled; nil defaults to a constant one.
func NewNoise(sigma *pipeline.Property, rng ports.RandomSource) *Noise {
	if sigma == nil {
		sigma = pipeline.Constant(1.0)
	}
	n := &Noise{sigma: sigma, rng: rng}
	n.bag = pipeline.NewBag(
		pipeline.Entry{Name: "sigma", Property: sigma},
		pipeline.Entry{Name: "seed", Property: pipeline.Sampled(func(pipeline.View) (any, error) {
			return rng.Float64(), nil
		})},
	)
	return n
}

// Name implements pipeline.Stage.
func (n *Noise) Name() string { return "noise" }

// Bag implements pipeline.Stage.
func (n *Noise) Bag() *pipeline.Bag { return n.bag }

// Children implements pipeline.Stage.
func (n *Noise) Children() []pipeline.Stage { return nil }

// Apply implements pipeline.Stage.
func (n *Noise) Apply(frame *domain.Frame, props domain.Record) (*domain.Frame, error) {
	sigma, _ := props.Float64("sigma")
	seed, ok := props.Float64("seed")
	if !ok || sigma == 0 {
		return frame, nil
	}
	local := rand.New(rand.NewPCG(math.Float64bits(seed), uint64(len(frame.Pixels))))
	for i := range frame.Pixels {
		frame.Pixels[i] += local.NormFloat64() * sigma
	}
	return frame, nil
}

// Clone implements pipeline.Stage.
func (n *Noise) Clone() pipeline.Stage {
	return NewNoise(n.sigma.Clone(), n.rng)
}
