package config

import "context"

// Loader is the interface for a format-specific seed-file loader.
type Loader interface {
	// Load reads the seed file at path and returns its values as verbatim
	// text, keyed by parameter name.
	Load(ctx context.Context, path string) (*Model, error)
}
