// Package compiler turns YAML pipeline definitions into stage trees.
//
// A definition document names the blank input shape and the pipeline root.
// Combinators are spelled structurally; leaf stages are resolved through
// the registry:
//
//	name: blobs
//	input: {width: 32, height: 32}
//	pipeline:
//	  sequence:
//	    - source: {dir: ./dataset}
//	    - duplicate:
//	        count: {uniform_int: {min: 1, max: 3}}
//	        of: {stage: {name: add, args: {value: {uniform: {min: 0, max: 1}}}}}
//	    - maybe:
//	        probability: 0.7
//	        of: {stage: {name: noise, args: {sigma: 0.1}}}
package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mirageproc/mirage/internal/adapters/file"
	"github.com/mirageproc/mirage/pkg/pipeline"
	"github.com/mirageproc/mirage/pkg/registry"
)

// Document is the top-level shape of a pipeline definition.
type Document struct {
	Name     string    `yaml:"name"`
	Input    InputSpec `yaml:"input"`
	Pipeline NodeSpec  `yaml:"pipeline"`
}

// InputSpec declares the blank frame each round starts from.
type InputSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NodeSpec is one node of the definition tree. Exactly one field must be
// set.
type NodeSpec struct {
	Sequence  []NodeSpec     `yaml:"sequence,omitempty"`
	Maybe     *MaybeSpec     `yaml:"maybe,omitempty"`
	Duplicate *DuplicateSpec `yaml:"duplicate,omitempty"`
	Source    *SourceSpec    `yaml:"source,omitempty"`
	Stage     *StageSpec     `yaml:"stage,omitempty"`
}

// MaybeSpec declares a probabilistic gate around a node.
type MaybeSpec struct {
	Probability any      `yaml:"probability"`
	Of          NodeSpec `yaml:"of"`
}

// DuplicateSpec declares independent replication of a node.
type DuplicateSpec struct {
	Count any      `yaml:"count"`
	Of    NodeSpec `yaml:"of"`
}

// SourceSpec declares a dataset-backed leaf.
type SourceSpec struct {
	Dir string `yaml:"dir"`
}

// StageSpec declares a registered leaf stage with its arguments.
type StageSpec struct {
	Name string         `yaml:"name"`
	Args map[string]any `yaml:"args"`
}

// Result is a compiled pipeline ready to generate.
type Result struct {
	Name   string
	Width  int
	Height int
	Root   pipeline.Stage
}

// Compiler builds stage trees from definitions.
type Compiler struct {
	reg     *registry.Registry
	deps    registry.Deps
	baseDir string
}

// New creates a compiler over a stage registry and its dependencies.
func New(reg *registry.Registry, deps registry.Deps) *Compiler {
	return &Compiler{reg: reg, deps: deps, baseDir: "."}
}

// CompileFile reads and compiles a definition file. Relative dataset paths
// inside the definition resolve against the file's directory.
func (c *Compiler) CompileFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	sub := *c
	sub.baseDir = filepath.Dir(path)
	return sub.Compile(data)
}

// Compile parses and builds a definition document.
func (c *Compiler) Compile(data []byte) (*Result, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse pipeline definition: %w", err)
	}
	root, err := c.build(doc.Pipeline, "pipeline")
	if err != nil {
		return nil, err
	}
	width, height := doc.Input.Width, doc.Input.Height
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Result{Name: doc.Name, Width: width, Height: height, Root: root}, nil
}

func (c *Compiler) build(spec NodeSpec, path string) (pipeline.Stage, error) {
	if err := exactlyOne(spec, path); err != nil {
		return nil, err
	}
	switch {
	case spec.Sequence != nil:
		return c.buildSequence(spec.Sequence, path)
	case spec.Maybe != nil:
		return c.buildMaybe(spec.Maybe, path)
	case spec.Duplicate != nil:
		return c.buildDuplicate(spec.Duplicate, path)
	case spec.Source != nil:
		return c.buildSource(spec.Source, path)
	default:
		return c.buildStage(spec.Stage, path)
	}
}

func (c *Compiler) buildSequence(specs []NodeSpec, path string) (pipeline.Stage, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%s.sequence: needs at least one node", path)
	}
	built := make([]pipeline.Stage, len(specs))
	for i, s := range specs {
		stage, err := c.build(s, fmt.Sprintf("%s.sequence[%d]", path, i))
		if err != nil {
			return nil, err
		}
		built[i] = stage
	}
	root, err := pipeline.Chain(built...)
	if err != nil {
		return nil, fmt.Errorf("%s.sequence: %w", path, err)
	}
	return root, nil
}

func (c *Compiler) buildMaybe(spec *MaybeSpec, path string) (pipeline.Stage, error) {
	inner, err := c.build(spec.Of, path+".maybe.of")
	if err != nil {
		return nil, err
	}
	prob, err := registry.PropertyFrom(spec.Probability, c.deps.Random)
	if err != nil {
		return nil, fmt.Errorf("%s.maybe.probability: %w", path, err)
	}
	if prob == nil {
		return nil, fmt.Errorf("%s.maybe.probability: value is required", path)
	}
	stage, err := pipeline.NewProbabilistic(inner, prob, c.deps.Random)
	if err != nil {
		return nil, fmt.Errorf("%s.maybe: %w", path, err)
	}
	return stage, nil
}

func (c *Compiler) buildDuplicate(spec *DuplicateSpec, path string) (pipeline.Stage, error) {
	inner, err := c.build(spec.Of, path+".duplicate.of")
	if err != nil {
		return nil, err
	}
	count, err := registry.PropertyFrom(spec.Count, c.deps.Random)
	if err != nil {
		return nil, fmt.Errorf("%s.duplicate.count: %w", path, err)
	}
	if count == nil {
		return nil, fmt.Errorf("%s.duplicate.count: value is required", path)
	}
	stage, err := pipeline.NewDuplicate(inner, count)
	if err != nil {
		return nil, fmt.Errorf("%s.duplicate: %w", path, err)
	}
	return stage, nil
}

func (c *Compiler) buildSource(spec *SourceSpec, path string) (pipeline.Stage, error) {
	if spec.Dir == "" {
		return nil, fmt.Errorf("%s.source.dir: value is required", path)
	}
	dir := spec.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.baseDir, dir)
	}
	src, err := file.New(dir, c.deps.Random)
	if err != nil {
		return nil, fmt.Errorf("%s.source: %w", path, err)
	}
	stage, err := pipeline.NewSource(src)
	if err != nil {
		return nil, fmt.Errorf("%s.source: %w", path, err)
	}
	return stage, nil
}

func (c *Compiler) buildStage(spec *StageSpec, path string) (pipeline.Stage, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("%s.stage.name: value is required", path)
	}
	stage, err := c.reg.Build(spec.Name, spec.Args, c.deps)
	if err != nil {
		return nil, fmt.Errorf("%s.stage: %w", path, err)
	}
	return stage, nil
}

func exactlyOne(spec NodeSpec, path string) error {
	n := 0
	if spec.Sequence != nil {
		n++
	}
	if spec.Maybe != nil {
		n++
	}
	if spec.Duplicate != nil {
		n++
	}
	if spec.Source != nil {
		n++
	}
	if spec.Stage != nil {
		n++
	}
	if n != 1 {
		return fmt.Errorf("%s: want exactly one of sequence, maybe, duplicate, source or stage, got %d", path, n)
	}
	return nil
}
