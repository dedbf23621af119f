// Package message bridges the planning pipeline's request/response shapes and
// the single-field request shape that trajectory filters consume.
//
// An Adapter performs no transformation of its own. Every conversion is a deep
// copy, so wrapping a trajectory and unwrapping it again yields an equal value
// that shares no memory with the original.
package message

import (
	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/aretw0/trajfilter/pkg/planning"
)

// Request is the legacy filter request: exactly one trajectory.
type Request struct {
	Trajectory domain.Trajectory `json:"trajectory" yaml:"trajectory"`
}

// Adapter is the value filters are updated with.
type Adapter struct {
	Request Request `json:"request" yaml:"request"`
}

// Wrap copies t into a new Adapter.
func Wrap(t domain.Trajectory) Adapter {
	return Adapter{Request: Request{Trajectory: t.Clone()}}
}

// FromRequest copies the trajectory field of a planning request.
func FromRequest(req planning.Request) Adapter {
	return Wrap(req.Trajectory)
}

// FromResponse copies the trajectory field of a planning response.
func FromResponse(res planning.Response) Adapter {
	return Wrap(res.Trajectory)
}

// Unwrap returns a copy of the wrapped trajectory.
func (a Adapter) Unwrap() domain.Trajectory {
	return a.Request.Trajectory.Clone()
}

// Trajectory gives read access to the wrapped trajectory without copying.
// Callers must not mutate the result.
func (a *Adapter) Trajectory() *domain.Trajectory {
	return &a.Request.Trajectory
}

// WriteTo copies the wrapped trajectory into the response's trajectory field.
// No other field of res is touched.
func (a Adapter) WriteTo(res *planning.Response) {
	res.Trajectory = a.Unwrap()
}
