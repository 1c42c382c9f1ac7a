package domain

import (
	"context"
	"time"
)

// RoundEvent describes one update-then-resolve round of a generator.
type RoundEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Generator string    `json:"generator"`
	Round     uint64    `json:"round"`

	// Duration is populated on round end and round error events.
	Duration time.Duration `json:"duration,omitempty"`

	// TrailLen is the number of provenance entries on the produced frame.
	// Populated on round end only.
	TrailLen int `json:"trail_len,omitempty"`

	// Err is populated on round error events.
	Err error `json:"-"`
}

// LifecycleHooks defines callbacks for generator observability.
// Nil hooks are skipped.
type LifecycleHooks struct {
	OnRoundStart func(context.Context, *RoundEvent)
	OnRoundEnd   func(context.Context, *RoundEvent)
	OnRoundError func(context.Context, *RoundEvent)
}
