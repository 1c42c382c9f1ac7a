// Package file provides a filesystem-backed ports.FrameSource reading
// frame-stack datasets from a directory.
//
// A dataset is a directory of .json files, each holding a stack of frames
// of one shape:
//
//	{"width": 8, "height": 8, "frames": [[...], [...]]}
//
// Next picks a random file, shuffles its frames, streams them one by one
// and re-picks once the stack is exhausted. The stream is infinite and
// non-restartable; under a seeded random source its order is
// deterministic.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mirageproc/mirage/pkg/domain"
	"github.com/mirageproc/mirage/pkg/ports"
)

type stack struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Frames [][]float64 `json:"frames"`
}

// Source implements ports.FrameSource over a dataset directory.
type Source struct {
	files []string
	rng   ports.RandomSource
	queue []*domain.Frame
}

// New builds a source over the .json files in dir. An empty dataset is a
// configuration error surfaced immediately, not a hang at draw time.
func New(dir string, rng ports.RandomSource) (*Source, error) {
	if rng == nil {
		return nil, fmt.Errorf("file source: random source is required")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("file source: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("file source %s: %w", dir, domain.ErrEmptyDataset)
	}
	return &Source{files: files, rng: rng}, nil
}

// Next returns the next frame of the current stack, loading and shuffling
// a randomly selected file when the stack runs out.
func (s *Source) Next() (*domain.Frame, error) {
	for len(s.queue) == 0 {
		if err := s.loadRandomFile(); err != nil {
			return nil, err
		}
	}
	f := s.queue[0]
	s.queue = s.queue[1:]
	return f, nil
}

func (s *Source) loadRandomFile() error {
	path := s.files[int(s.rng.Float64()*float64(len(s.files)))]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("file source: %w", err)
	}
	var st stack
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("file source %s: %w", path, err)
	}
	if st.Width <= 0 || st.Height <= 0 {
		return fmt.Errorf("file source %s: invalid shape %dx%d", path, st.Width, st.Height)
	}
	if len(st.Frames) == 0 {
		return fmt.Errorf("file source %s: %w", path, domain.ErrEmptyDataset)
	}
	frames := make([]*domain.Frame, 0, len(st.Frames))
	for i, pixels := range st.Frames {
		if len(pixels) != st.Width*st.Height {
			return fmt.Errorf("file source %s: frame %d has %d samples, want %d",
				path, i, len(pixels), st.Width*st.Height)
		}
		f := domain.NewFrame(st.Width, st.Height)
		copy(f.Pixels, pixels)
		frames = append(frames, f)
	}
	for i := len(frames) - 1; i > 0; i-- {
		j := int(s.rng.Float64() * float64(i+1))
		frames[i], frames[j] = frames[j], frames[i]
	}
	s.queue = frames
	return nil
}
