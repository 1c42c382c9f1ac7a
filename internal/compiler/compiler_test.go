package compiler_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirageproc/mirage/internal/compiler"
	"github.com/mirageproc/mirage/pkg/adapters/mathrand"
	"github.com/mirageproc/mirage/pkg/domain"
	"github.com/mirageproc/mirage/pkg/pipeline"
	"github.com/mirageproc/mirage/pkg/registry"
)

func newCompiler() *compiler.Compiler {
	return compiler.New(registry.Default(), registry.Deps{Random: mathrand.New(42)})
}

func generate(t *testing.T, res *compiler.Result) *domain.Frame {
	t.Helper()
	require.NoError(t, pipeline.Update(res.Root))
	out, err := pipeline.Resolve(res.Root, domain.NewFrame(res.Width, res.Height))
	require.NoError(t, err)
	return out
}

func TestCompile(t *testing.T) {
	t.Run("Single Stage", func(t *testing.T) {
		res, err := newCompiler().Compile([]byte(`
name: offset
input: {width: 2, height: 2}
pipeline:
  stage: {name: add, args: {value: 3}}
`))
		require.NoError(t, err)
		assert.Equal(t, "offset", res.Name)
		assert.Equal(t, 2, res.Width)
		assert.Equal(t, 2, res.Height)

		out := generate(t, res)
		assert.Equal(t, 3.0, out.Pixels[0])
	})

	t.Run("Sequence Applies In Order", func(t *testing.T) {
		res, err := newCompiler().Compile([]byte(`
pipeline:
  sequence:
    - stage: {name: add, args: {value: 1}}
    - stage: {name: scale, args: {factor: 10}}
`))
		require.NoError(t, err)

		out := generate(t, res)
		assert.Equal(t, 10.0, out.Pixels[0])
	})

	t.Run("Maybe Always Fires At One", func(t *testing.T) {
		res, err := newCompiler().Compile([]byte(`
pipeline:
  maybe:
    probability: 1
    of: {stage: {name: add, args: {value: 5}}}
`))
		require.NoError(t, err)

		out := generate(t, res)
		assert.Equal(t, 5.0, out.Pixels[0])
	})

	t.Run("Duplicate Replicates", func(t *testing.T) {
		res, err := newCompiler().Compile([]byte(`
pipeline:
  duplicate:
    count: 3
    of: {stage: {name: add, args: {value: 2}}}
`))
		require.NoError(t, err)

		out := generate(t, res)
		assert.Equal(t, 6.0, out.Pixels[0])
	})

	t.Run("Defaults To Unit Input", func(t *testing.T) {
		res, err := newCompiler().Compile([]byte(`
pipeline:
  stage: {name: add}
`))
		require.NoError(t, err)
		assert.Equal(t, 1, res.Width)
		assert.Equal(t, 1, res.Height)
	})
}

func TestCompile_SourceDirs(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, filepath.Join(dir, "blobs.json"), 1, 1, [][]float64{{40}})

	cfg := filepath.Join(dir, "pipeline.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
pipeline:
  sequence:
    - source: {dir: .}
    - stage: {name: add, args: {value: 2}}
`), 0o644))

	res, err := newCompiler().CompileFile(cfg)
	require.NoError(t, err)

	out := generate(t, res)
	assert.Equal(t, 42.0, out.Pixels[0])
}

func TestCompile_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "Empty Node",
			yaml: "pipeline: {}",
			want: "want exactly one of",
		},
		{
			name: "Conflicting Node",
			yaml: `
pipeline:
  stage: {name: add}
  source: {dir: ./x}
`,
			want: "want exactly one of",
		},
		{
			name: "Empty Sequence",
			yaml: "pipeline: {sequence: []}",
			want: "needs at least one node",
		},
		{
			name: "Missing Stage Name",
			yaml: "pipeline: {stage: {args: {value: 1}}}",
			want: "stage.name: value is required",
		},
		{
			name: "Unknown Stage",
			yaml: "pipeline: {stage: {name: warp}}",
			want: "stage not registered",
		},
		{
			name: "Missing Probability",
			yaml: `
pipeline:
  maybe:
    of: {stage: {name: add}}
`,
			want: "maybe.probability: value is required",
		},
		{
			name: "Missing Count",
			yaml: `
pipeline:
  duplicate:
    of: {stage: {name: add}}
`,
			want: "duplicate.count: value is required",
		},
		{
			name: "Missing Source Dir",
			yaml: "pipeline: {source: {}}",
			want: "source.dir: value is required",
		},
		{
			name: "Source Below Root",
			yaml: `
pipeline:
  sequence:
    - stage: {name: add}
    - source: {dir: .}
`,
			want: "sequence",
		},
		{
			name: "Bad Property Spec",
			yaml: "pipeline: {stage: {name: add, args: {value: {gaussian: 1}}}}",
			want: "unknown property spec",
		},
		{
			name: "Malformed Document",
			yaml: "pipeline: [",
			want: "parse pipeline definition",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newCompiler().Compile([]byte(tc.yaml))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func writeDataset(t *testing.T, path string, width, height int, frames [][]float64) {
	t.Helper()
	data, err := json.Marshal(map[string]any{
		"width":  width,
		"height": height,
		"frames": frames,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}
