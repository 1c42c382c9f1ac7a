package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirageproc/mirage/internal/testutils"
	"github.com/mirageproc/mirage/pkg/domain"
	"github.com/mirageproc/mirage/pkg/pipeline"
	"github.com/mirageproc/mirage/pkg/stages"
)

func TestClone_FreshIdentity(t *testing.T) {
	rng := &testutils.CountingSource{}
	original := stages.NewAdd(pipeline.Sampled(pipeline.Uniform(rng, 0, 1)))
	require.NoError(t, pipeline.Update(original))
	before, _ := original.Bag().Value("value")

	clone := original.Clone()

	// The clone starts stale and resamples independently.
	require.NoError(t, pipeline.Update(clone))
	cloneValue, _ := clone.Bag().Value("value")
	assert.NotEqual(t, before, cloneValue)

	// The original keeps its resolved value untouched.
	after, _ := original.Bag().Value("value")
	assert.Equal(t, before, after)
}

func TestClone_CopiesSubtrees(t *testing.T) {
	rng := &testutils.CountingSource{}
	inner := stages.NewAdd(pipeline.Sampled(pipeline.Uniform(rng, 0, 1)))
	seq, err := pipeline.NewSequence(inner, stages.NewScale(pipeline.Constant(2.0)))
	require.NoError(t, err)

	clone := seq.Clone()
	require.NoError(t, pipeline.Update(clone))
	_, err = pipeline.Resolve(clone, domain.Scalar(0))
	require.NoError(t, err)

	// Resolving the clone must not consume the original's round.
	require.NoError(t, pipeline.Update(seq))
	innerValue, _ := inner.Bag().Value("value")
	assert.NotNil(t, innerValue)

	cloneChildren := clone.Children()
	require.Len(t, cloneChildren, 2)
	assert.NotSame(t, inner, cloneChildren[0], "children must be cloned, not shared")
}
