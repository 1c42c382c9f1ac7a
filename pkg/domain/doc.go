// Package domain contains the core value types shared across the engine:
// the Frame artifact, the ordered property Record, provenance trail entries,
// sentinel errors and lifecycle events.
//
// Types here are plain data with no behavior beyond their own invariants.
// They carry no dependencies so that the pipeline core, adapters and hosts
// can all share them freely.
package domain
