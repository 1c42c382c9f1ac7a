// Package stages provides the built-in pixel transformations: Add, Scale
// and Noise. They are small on purpose; their job is to exercise the
// pipeline engine from pipeline definitions, examples and tests. Richer
// rendering stages are expected to live in host applications and plug in
// through the same Stage contract.
package stages
