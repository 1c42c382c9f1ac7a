/*
Package mirage is a lazy, composable pipeline engine for procedurally
generating synthetic frames.

A pipeline is a tree of stages, each parameterized by randomly resampled
properties. Every generation round resamples the whole tree top-down, then
threads a blank frame through it bottom-up, accumulating a provenance trail
of each stage's resolved properties on the produced frame.

# Concept

Stages compose through three combinators: Sequence (apply one stage, feed
its output to the next), Probabilistic (apply a wrapped stage only when a
fresh uniform draw falls below a threshold) and Duplicate (thread the frame
through N independent clones of a template, each carrying its own
randomness). Source leaves draw raw frames from external datasets.

# Usage

Build a stage tree and wrap it in a Generator:

	package main

	import (
		"context"
		"log"

		"github.com/mirageproc/mirage"
		"github.com/mirageproc/mirage/pkg/adapters/mathrand"
		"github.com/mirageproc/mirage/pkg/pipeline"
		"github.com/mirageproc/mirage/pkg/stages"
	)

	func main() {
		rng := mathrand.New(42)

		blob := stages.NewAdd(pipeline.Sampled(pipeline.Uniform(rng, 0, 1)))
		root, err := pipeline.NewDuplicate(blob, pipeline.Sampled(pipeline.UniformInt(rng, 1, 4)))
		if err != nil {
			log.Fatal(err)
		}

		gen, err := mirage.New(root, mirage.WithInputShape(32, 32))
		if err != nil {
			log.Fatal(err)
		}

		frame, err := gen.Generate(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("generated %dx%d frame, %d trail entries",
			frame.Width, frame.Height, len(frame.Trail))
	}

Pipelines can also be declared in YAML and compiled at runtime; see the
mirage CLI and the internal compiler package.
*/
package mirage
