package pipeline

import (
	"fmt"

	"github.com/mirageproc/mirage/pkg/ports"
)

// Uniform returns a sampler drawing float64 values uniformly from
// [min, max).
func Uniform(rng ports.RandomSource, min, max float64) Sampler {
	return func(View) (any, error) {
		return min + rng.Float64()*(max-min), nil
	}
}

// UniformInt returns a sampler drawing integers uniformly from [min, max].
func UniformInt(rng ports.RandomSource, min, max int) Sampler {
	return func(View) (any, error) {
		if max < min {
			return nil, fmt.Errorf("uniform int: max %d < min %d", max, min)
		}
		return min + int(rng.Float64()*float64(max-min+1)), nil
	}
}

// Choice returns a sampler picking uniformly among the given values.
func Choice(rng ports.RandomSource, values ...any) Sampler {
	return func(View) (any, error) {
		if len(values) == 0 {
			return nil, fmt.Errorf("choice: no values to pick from")
		}
		return values[int(rng.Float64()*float64(len(values)))], nil
	}
}
