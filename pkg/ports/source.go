package ports

import "github.com/mirageproc/mirage/pkg/domain"

// FrameSource produces a lazy, infinite sequence of raw frames.
// The sequence is not restartable and its order is randomized by the
// implementation (per selection and per internal reshuffle). Next is not
// safe for concurrent use.
type FrameSource interface {
	Next() (*domain.Frame, error)
}
