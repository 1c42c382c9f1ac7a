// Package ports defines the collaborator interfaces consumed by the engine.
// Concrete implementations live in adapter packages; the core depends only
// on these contracts.
package ports
