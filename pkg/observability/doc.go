// Package observability exposes generation metrics through the generator's
// lifecycle hooks. Hosts register the collector on their prometheus
// registry and attach the hooks when building the generator; the engine
// itself stays metrics-free.
package observability
