/*
Package pipeline implements the lazy, composable generation engine.

A pipeline is a tree of stages. Each stage owns an ordered bag of
properties (constant values or zero-argument samplers) and transforms a
frame in its Apply method. One generation round is two phases:

	pipeline.Update(root)          // resample every property, top down
	out, err := pipeline.Resolve(root, input) // apply every stage, threading the frame

Update is idempotent within a round: a stage reached through several paths
(shared subtrees) resamples exactly once. Resolve snapshots the stage's
properties, applies the transformation, stamps the snapshot onto the
frame's provenance trail and marks the stage stale for the next round.

Stages compose through combinators: Sequence applies one stage after
another, Probabilistic applies a wrapped stage only when a fresh uniform
draw falls below a threshold, and Duplicate threads the frame through N
independent structural clones of a template stage. Source is a root-only
leaf that draws raw frames from an external collaborator.

Property resampling follows a strict ordering contract: within a bag,
properties resample in declaration order, and a sampler may read the
already-updated value of any property declared before it in the same bag.
Duplicate relies on this to size its replica list from the count sampled
moments earlier in the same pass.
*/
package pipeline
