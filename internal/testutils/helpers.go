// Package testutils provides shared helpers for tests.
package testutils

// SeqSource is a deterministic ports.RandomSource that replays a fixed
// sequence of draws, cycling when exhausted.
type SeqSource struct {
	Draws []float64
	pos   int
}

// Float64 returns the next draw in the sequence.
func (s *SeqSource) Float64() float64 {
	if len(s.Draws) == 0 {
		return 0
	}
	v := s.Draws[s.pos%len(s.Draws)]
	s.pos++
	return v
}

// CountingSource returns strictly increasing draws scaled into [0, 1),
// useful when a test only needs every draw to be distinct.
type CountingSource struct {
	n int
}

// Float64 returns the next distinct draw.
func (c *CountingSource) Float64() float64 {
	c.n++
	return float64(c.n%1000) / 1000
}
