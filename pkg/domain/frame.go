package domain

import "fmt"

// TrailEntry is one step of a frame's provenance trail: the name of the
// stage that transformed the frame and the property snapshot it ran with.
type TrailEntry struct {
	Stage string
	Props Record
}

// Frame is the artifact threaded through a pipeline: a width x height grid
// of float64 samples plus the ordered provenance trail accumulated as the
// frame passes through stages.
type Frame struct {
	Width  int
	Height int
	Pixels []float64

	// Trail records, per round, the resolved-property snapshot of every
	// stage the frame passed through, in application order.
	Trail []TrailEntry
}

// NewFrame returns a zero-filled frame of the given shape.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]float64, width*height),
	}
}

// Scalar returns a 1x1 frame holding a single value.
func Scalar(v float64) *Frame {
	f := NewFrame(1, 1)
	f.Pixels[0] = v
	return f
}

// IsEmpty reports whether the frame carries no pixel data.
func (f *Frame) IsEmpty() bool {
	return len(f.Pixels) == 0
}

// At returns the sample at (x, y).
func (f *Frame) At(x, y int) float64 {
	return f.Pixels[y*f.Width+x]
}

// Set stores a sample at (x, y).
func (f *Frame) Set(x, y int, v float64) {
	f.Pixels[y*f.Width+x] = v
}

// Clone returns a deep copy of the frame, trail included.
func (f *Frame) Clone() *Frame {
	out := &Frame{
		Width:  f.Width,
		Height: f.Height,
		Pixels: make([]float64, len(f.Pixels)),
		Trail:  make([]TrailEntry, len(f.Trail)),
	}
	copy(out.Pixels, f.Pixels)
	copy(out.Trail, f.Trail)
	return out
}

// Combine adds another frame element-wise into this one and returns the
// result. An empty receiver adopts the other frame's shape and data. The
// receiver's trail is preserved; the other frame's trail is discarded (raw
// frames drawn from sources carry no provenance of their own).
// Callers must treat the returned frame as the authoritative result.
func (f *Frame) Combine(other *Frame) (*Frame, error) {
	if other == nil || other.IsEmpty() {
		return f, nil
	}
	if f.IsEmpty() {
		out := other.Clone()
		out.Trail = append([]TrailEntry{}, f.Trail...)
		return out, nil
	}
	if f.Width != other.Width || f.Height != other.Height {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrShapeMismatch, f.Width, f.Height, other.Width, other.Height)
	}
	for i := range f.Pixels {
		f.Pixels[i] += other.Pixels[i]
	}
	return f, nil
}

// AppendRecord appends one provenance entry to the trail and returns the
// frame. Callers must treat the return as authoritative.
func (f *Frame) AppendRecord(stage string, props Record) *Frame {
	f.Trail = append(f.Trail, TrailEntry{Stage: stage, Props: props})
	return f
}
