package ports

// RandomSource supplies uniform random draws to stages that need one.
// It is the only distribution the engine itself requires; stages are free
// to build richer samplers on top of it.
type RandomSource interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
}
