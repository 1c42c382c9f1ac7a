package mirage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mirageproc/mirage/internal/logging"
	"github.com/mirageproc/mirage/pkg/domain"
	"github.com/mirageproc/mirage/pkg/pipeline"
)

// Version is the library version, reported by the CLI.
const Version = "0.3.0"

// Generator is the high-level entry point for the mirage library.
// It wraps a pipeline root and drives the update/resolve rounds, adding
// logging and lifecycle hooks around the core engine.
type Generator struct {
	root   pipeline.Stage
	name   string
	width  int
	height int
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	round  uint64
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithName sets the generator name used in events and logs.
func WithName(name string) Option {
	return func(g *Generator) {
		g.name = name
	}
}

// WithLogger sets a custom structured logger for the generator.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(g *Generator) {
		g.hooks = hooks
	}
}

// WithInputShape sets the shape of the blank frame each round starts from.
// The default is a 1x1 frame.
func WithInputShape(width, height int) Option {
	return func(g *Generator) {
		g.width = width
		g.height = height
	}
}

// New creates a Generator over a pipeline root.
func New(root pipeline.Stage, opts ...Option) (*Generator, error) {
	if root == nil {
		return nil, fmt.Errorf("generator: %w", domain.ErrNilStage)
	}
	g := &Generator{
		root:   root,
		name:   "mirage",
		width:  1,
		height: 1,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Root exposes the pipeline root for inspection (graph export, tests).
func (g *Generator) Root() pipeline.Stage {
	return g.root
}

// Generate runs one full round: resample every property top-down, then
// resolve the pipeline over a fresh blank frame. The returned frame carries
// the provenance trail of every stage it passed through.
//
// Rounds are synchronous and single-threaded; ctx is consulted by batch
// loops between rounds, never mid-round.
func (g *Generator) Generate(ctx context.Context) (*domain.Frame, error) {
	g.round++
	event := &domain.RoundEvent{
		Timestamp: time.Now(),
		Generator: g.name,
		Round:     g.round,
	}
	if g.hooks.OnRoundStart != nil {
		g.hooks.OnRoundStart(ctx, event)
	}

	start := time.Now()
	if err := pipeline.Update(g.root); err != nil {
		return nil, g.fail(ctx, event, start, err)
	}
	frame, err := pipeline.Resolve(g.root, domain.NewFrame(g.width, g.height))
	if err != nil {
		return nil, g.fail(ctx, event, start, err)
	}

	event.Duration = time.Since(start)
	event.TrailLen = len(frame.Trail)
	if g.hooks.OnRoundEnd != nil {
		g.hooks.OnRoundEnd(ctx, event)
	}
	g.logger.Debug("round complete",
		"generator", g.name,
		"round", g.round,
		"trail_len", event.TrailLen,
		"duration", event.Duration,
	)
	return frame, nil
}

// GenerateBatch runs n sequential rounds, honoring ctx cancellation between
// rounds. A failed round aborts the batch; frames generated so far are
// discarded along with it, matching the engine's no-partial-result rule.
func (g *Generator) GenerateBatch(ctx context.Context, n int) ([]*domain.Frame, error) {
	frames := make([]*domain.Frame, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		frame, err := g.Generate(ctx)
		if err != nil {
			return nil, fmt.Errorf("batch round %d: %w", i+1, err)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func (g *Generator) fail(ctx context.Context, event *domain.RoundEvent, start time.Time, err error) error {
	event.Duration = time.Since(start)
	event.Err = err
	if g.hooks.OnRoundError != nil {
		g.hooks.OnRoundError(ctx, event)
	}
	g.logger.Error("round failed", "generator", g.name, "round", g.round, "error", err)
	return err
}
