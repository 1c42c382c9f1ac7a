package registry

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/mirageproc/mirage/pkg/pipeline"
	"github.com/mirageproc/mirage/pkg/ports"
)

type rangeSpec struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

// PropertyFrom converts a raw definition value into a pipeline property.
//
// Supported forms:
//   - nil: returns nil (callers fall back to their defaults)
//   - a plain number: a constant
//   - {uniform: {min, max}}: a sampled float in [min, max)
//   - {uniform_int: {min, max}}: a sampled integer in [min, max]
//   - {choice: [v1, v2, ...]}: a uniform pick among the values
//
// Sampled forms require a random source.
func PropertyFrom(v any, rng ports.RandomSource) (*pipeline.Property, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case int:
		return pipeline.Constant(val), nil
	case int64:
		return pipeline.Constant(int(val)), nil
	case float64:
		return pipeline.Constant(val), nil
	case map[string]any:
		return sampledProperty(val, rng)
	}
	return nil, fmt.Errorf("unsupported property value %T", v)
}

func sampledProperty(spec map[string]any, rng ports.RandomSource) (*pipeline.Property, error) {
	if rng == nil {
		return nil, fmt.Errorf("sampled property requires a random source")
	}
	if raw, ok := spec["uniform"]; ok {
		var r rangeSpec
		if err := mapstructure.Decode(raw, &r); err != nil {
			return nil, fmt.Errorf("uniform: %w", err)
		}
		return pipeline.Sampled(pipeline.Uniform(rng, r.Min, r.Max)), nil
	}
	if raw, ok := spec["uniform_int"]; ok {
		var r rangeSpec
		if err := mapstructure.Decode(raw, &r); err != nil {
			return nil, fmt.Errorf("uniform_int: %w", err)
		}
		return pipeline.Sampled(pipeline.UniformInt(rng, int(r.Min), int(r.Max))), nil
	}
	if raw, ok := spec["choice"]; ok {
		values, ok := raw.([]any)
		if !ok || len(values) == 0 {
			return nil, fmt.Errorf("choice: want a non-empty list, got %T", raw)
		}
		return pipeline.Sampled(pipeline.Choice(rng, values...)), nil
	}
	return nil, fmt.Errorf("unknown property spec, want uniform, uniform_int or choice")
}
