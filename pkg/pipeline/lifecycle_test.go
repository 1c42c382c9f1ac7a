package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirageproc/mirage/pkg/domain"
	"github.com/mirageproc/mirage/pkg/pipeline"
)

// probe is a minimal stage counting how often its sampler runs.
type probe struct {
	bag     *pipeline.Bag
	samples int
}

func newProbe() *probe {
	p := &probe{}
	p.bag = pipeline.NewBag(
		pipeline.Entry{Name: "tick", Property: pipeline.Sampled(func(pipeline.View) (any, error) {
			p.samples++
			return p.samples, nil
		})},
	)
	return p
}

func (p *probe) Name() string               { return "probe" }
func (p *probe) Bag() *pipeline.Bag         { return p.bag }
func (p *probe) Children() []pipeline.Stage { return nil }

func (p *probe) Apply(frame *domain.Frame, _ domain.Record) (*domain.Frame, error) {
	return frame, nil
}

func (p *probe) Clone() pipeline.Stage { return newProbe() }

func TestUpdate_IdempotentPerRound(t *testing.T) {
	p := newProbe()

	require.NoError(t, pipeline.Update(p))
	require.NoError(t, pipeline.Update(p))
	assert.Equal(t, 1, p.samples, "second update in the same round must be a no-op")

	// Resolve closes the round; the next update resamples again.
	_, err := pipeline.Resolve(p, domain.Scalar(0))
	require.NoError(t, err)
	require.NoError(t, pipeline.Update(p))
	assert.Equal(t, 2, p.samples)
}

func TestUpdate_SharedSubtreeResamplesOnce(t *testing.T) {
	shared := newProbe()
	left, err := pipeline.NewSequence(shared, newProbe())
	require.NoError(t, err)
	right, err := pipeline.NewSequence(shared, newProbe())
	require.NoError(t, err)
	root, err := pipeline.NewSequence(left, right)
	require.NoError(t, err)

	require.NoError(t, pipeline.Update(root))
	assert.Equal(t, 1, shared.samples, "a stage reachable via two paths must resample once")
}

func TestResolve_WithoutUpdateUsesCurrentValues(t *testing.T) {
	p := newProbe()

	// Never updated: the sampled property is still nil.
	out, err := pipeline.Resolve(p, domain.Scalar(0))
	require.NoError(t, err)
	require.Len(t, out.Trail, 1)
	v, ok := out.Trail[0].Props.Get("tick")
	require.True(t, ok)
	assert.Nil(t, v)

	// A replay after one update reuses the same resolved values.
	require.NoError(t, pipeline.Update(p))
	first, err := pipeline.Resolve(p, domain.Scalar(0))
	require.NoError(t, err)
	replay, err := pipeline.Resolve(p, domain.Scalar(0))
	require.NoError(t, err)
	assert.Equal(t, first.Trail[0].Props, replay.Trail[0].Props)
	assert.Equal(t, 1, p.samples)
}

func TestResolve_AppendsSnapshotToTrail(t *testing.T) {
	p := newProbe()
	require.NoError(t, pipeline.Update(p))

	out, err := pipeline.Resolve(p, domain.Scalar(0))
	require.NoError(t, err)
	require.Len(t, out.Trail, 1)
	assert.Equal(t, "probe", out.Trail[0].Stage)

	tick, ok := out.Trail[0].Props.Int("tick")
	require.True(t, ok)
	assert.Equal(t, 1, tick)
}
