package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirageproc/mirage/pkg/adapters/mathrand"
	"github.com/mirageproc/mirage/pkg/pipeline"
)

func TestUniform(t *testing.T) {
	sample := pipeline.Uniform(mathrand.New(1), -2, 2)
	for range 50 {
		v, err := sample(nil)
		require.NoError(t, err)
		f := v.(float64)
		assert.GreaterOrEqual(t, f, -2.0)
		assert.Less(t, f, 2.0)
	}
}

func TestUniformInt(t *testing.T) {
	t.Run("Covers Inclusive Range", func(t *testing.T) {
		sample := pipeline.UniformInt(mathrand.New(1), 1, 3)
		seen := map[int]bool{}
		for range 100 {
			v, err := sample(nil)
			require.NoError(t, err)
			seen[v.(int)] = true
		}
		assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, seen)
	})

	t.Run("Inverted Range Fails", func(t *testing.T) {
		sample := pipeline.UniformInt(mathrand.New(1), 3, 1)
		_, err := sample(nil)
		assert.ErrorContains(t, err, "max 1 < min 3")
	})
}

func TestChoice(t *testing.T) {
	t.Run("Picks Among Values", func(t *testing.T) {
		sample := pipeline.Choice(mathrand.New(1), "a", "b", "c")
		seen := map[any]bool{}
		for range 100 {
			v, err := sample(nil)
			require.NoError(t, err)
			seen[v] = true
		}
		assert.Len(t, seen, 3)
	})

	t.Run("No Values Fails", func(t *testing.T) {
		sample := pipeline.Choice(mathrand.New(1))
		_, err := sample(nil)
		assert.Error(t, err)
	})
}
