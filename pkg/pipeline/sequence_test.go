package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirageproc/mirage/pkg/domain"
	"github.com/mirageproc/mirage/pkg/pipeline"
	"github.com/mirageproc/mirage/pkg/stages"
)

func TestSequence_AppliesLeftToRight(t *testing.T) {
	// add 1, then add 2, starting from a scalar 0.
	seq, err := pipeline.NewSequence(
		stages.NewAdd(pipeline.Constant(1.0)),
		stages.NewAdd(pipeline.Constant(2.0)),
	)
	require.NoError(t, err)

	require.NoError(t, pipeline.Update(seq))
	out, err := pipeline.Resolve(seq, domain.Scalar(0))
	require.NoError(t, err)

	assert.Equal(t, 3.0, out.Pixels[0])

	// The provenance trail carries both stages' snapshots in application
	// order. The sequence itself has no properties and leaves no trace.
	require.Len(t, out.Trail, 2)
	v0, _ := out.Trail[0].Props.Float64("value")
	v1, _ := out.Trail[1].Props.Float64("value")
	assert.Equal(t, 1.0, v0)
	assert.Equal(t, 2.0, v1)
}

func TestSequence_AssociativityOfEffect(t *testing.T) {
	build := func(leftAssoc bool) pipeline.Stage {
		a := stages.NewAdd(pipeline.Constant(1.0))
		b := stages.NewScale(pipeline.Constant(3.0))
		c := stages.NewAdd(pipeline.Constant(5.0))
		var root pipeline.Stage
		if leftAssoc {
			ab, err := pipeline.NewSequence(a, b)
			require.NoError(t, err)
			abc, err := pipeline.NewSequence(ab, c)
			require.NoError(t, err)
			root = abc
		} else {
			bc, err := pipeline.NewSequence(b, c)
			require.NoError(t, err)
			abc, err := pipeline.NewSequence(a, bc)
			require.NoError(t, err)
			root = abc
		}
		return root
	}

	left := build(true)
	right := build(false)
	require.NoError(t, pipeline.Update(left))
	require.NoError(t, pipeline.Update(right))

	lo, err := pipeline.Resolve(left, domain.Scalar(0))
	require.NoError(t, err)
	ro, err := pipeline.Resolve(right, domain.Scalar(0))
	require.NoError(t, err)

	assert.Equal(t, lo.Pixels, ro.Pixels)
	assert.Equal(t, lo.Trail, ro.Trail, "grouping must not change the metadata trail")
}

func TestChain(t *testing.T) {
	root, err := pipeline.Chain(
		stages.NewAdd(pipeline.Constant(1.0)),
		stages.NewAdd(pipeline.Constant(2.0)),
		stages.NewAdd(pipeline.Constant(3.0)),
	)
	require.NoError(t, err)

	require.NoError(t, pipeline.Update(root))
	out, err := pipeline.Resolve(root, domain.Scalar(0))
	require.NoError(t, err)
	assert.Equal(t, 6.0, out.Pixels[0])
}

func TestSequence_RejectsNilStages(t *testing.T) {
	_, err := pipeline.NewSequence(nil, stages.NewAdd(nil))
	assert.ErrorIs(t, err, domain.ErrNilStage)

	_, err = pipeline.NewSequence(stages.NewAdd(nil), nil)
	assert.ErrorIs(t, err, domain.ErrNilStage)
}
