package domain

import "errors"

// ErrLeafUpstream is returned at construction time when a source leaf is
// wired into a position where it would receive an upstream frame.
var ErrLeafUpstream = errors.New("leaf stage cannot accept an upstream")

// ErrNilStage is returned when a combinator is constructed with a nil stage.
var ErrNilStage = errors.New("stage must not be nil")

// ErrEmptyDataset is returned when a frame source is constructed over an
// empty backing collection.
var ErrEmptyDataset = errors.New("frame source dataset is empty")

// ErrShapeMismatch is returned when two frames of different shapes are
// combined.
var ErrShapeMismatch = errors.New("frame shapes do not match")
