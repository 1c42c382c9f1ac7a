package registry

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/mirageproc/mirage/pkg/pipeline"
	"github.com/mirageproc/mirage/pkg/stages"
)

func registerBuiltins(r *Registry) {
	r.Register("add", buildAdd)
	r.Register("scale", buildScale)
	r.Register("noise", buildNoise)
}

type addConfig struct {
	Value any `mapstructure:"value"`
}

func buildAdd(args map[string]any, deps Deps) (pipeline.Stage, error) {
	var cfg addConfig
	if err := mapstructure.Decode(args, &cfg); err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	value, err := PropertyFrom(cfg.Value, deps.Random)
	if err != nil {
		return nil, fmt.Errorf("add: value: %w", err)
	}
	return stages.NewAdd(value), nil
}

type scaleConfig struct {
	Factor any `mapstructure:"factor"`
}

func buildScale(args map[string]any, deps Deps) (pipeline.Stage, error) {
	var cfg scaleConfig
	if err := mapstructure.Decode(args, &cfg); err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	factor, err := PropertyFrom(cfg.Factor, deps.Random)
	if err != nil {
		return nil, fmt.Errorf("scale: factor: %w", err)
	}
	return stages.NewScale(factor), nil
}

type noiseConfig struct {
	Sigma any `mapstructure:"sigma"`
}

func buildNoise(args map[string]any, deps Deps) (pipeline.Stage, error) {
	var cfg noiseConfig
	if err := mapstructure.Decode(args, &cfg); err != nil {
		return nil, fmt.Errorf("noise: %w", err)
	}
	if deps.Random == nil {
		return nil, fmt.Errorf("noise: random source is required")
	}
	sigma, err := PropertyFrom(cfg.Sigma, deps.Random)
	if err != nil {
		return nil, fmt.Errorf("noise: sigma: %w", err)
	}
	return stages.NewNoise(sigma, deps.Random), nil
}
