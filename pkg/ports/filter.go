package ports

import "context"

// Filter is a stateful transformer from one trajectory value to another.
// T is the value shape the filter operates on; the layer's canonical choice is message.Adapter.
//
// A Filter starts unconfigured. Update must fail with domain.ErrNotConfigured until
// Configure has succeeded once. Instances are not safe for concurrent use.
type Filter[T any] interface {
	// Type returns the registered type name of the filter.
	Type() string

	// Name returns the instance name. Parameters are looked up under this name.
	Name() string

	// Description returns a human-readable summary for diagnostics.
	Description() string

	// Configure re-derives the filter configuration from params.
	// On failure it returns an error wrapping domain.ErrConfiguration and keeps the previous state.
	Configure(ctx context.Context, params ParamStore) error

	// Update writes the filtered form of in into out. It must not mutate in.
	// On failure the content of out is unspecified.
	Update(in T, out *T) error
}
