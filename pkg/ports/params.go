package ports

import "context"

// ParamStore provides read-only access to filter parameters.
type ParamStore interface {
	// Get returns the value stored under key.
	// A missing key is reported with found == false and a nil error;
	// err is reserved for backend failures.
	Get(ctx context.Context, key string) (value any, found bool, err error)
}
