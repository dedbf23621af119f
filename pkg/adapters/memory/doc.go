// Package memory provides an in-memory parameter store, used by tests and by
// hosts that assemble filter parameters in code.
package memory
