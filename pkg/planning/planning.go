package planning

import (
	"context"
	"time"

	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/google/uuid"
)

// Request is a motion-planning request.
type Request struct {
	ID         string            `json:"id" yaml:"id"`
	GroupName  string            `json:"group_name,omitempty" yaml:"group_name,omitempty"`
	Trajectory domain.Trajectory `json:"trajectory" yaml:"trajectory"`
}

// NewRequest builds a request for the given group with a fresh correlation ID.
func NewRequest(group string, trajectory domain.Trajectory) Request {
	return Request{
		ID:         uuid.NewString(),
		GroupName:  group,
		Trajectory: trajectory,
	}
}

// Response is the result of planning a Request.
type Response struct {
	RequestID    string            `json:"request_id" yaml:"request_id"`
	GroupName    string            `json:"group_name,omitempty" yaml:"group_name,omitempty"`
	Trajectory   domain.Trajectory `json:"trajectory" yaml:"trajectory"`
	PlanningTime time.Duration     `json:"planning_time" yaml:"planning_time"`
}

// Clone returns a deep copy of the response.
func (r Response) Clone() Response {
	out := r
	out.Trajectory = r.Trajectory.Clone()
	return out
}

// Planner produces a Response for a Request.
type Planner interface {
	Plan(ctx context.Context, req Request) (Response, error)
}

// PlannerFunc adapts an ordinary function to the Planner interface.
type PlannerFunc func(ctx context.Context, req Request) (Response, error)

// Plan calls f(ctx, req).
func (f PlannerFunc) Plan(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}

// Passthrough returns a Planner that answers every request with a copy of its own trajectory.
// It lets a filter chain run over a trajectory that was planned elsewhere.
func Passthrough() Planner {
	return PlannerFunc(func(ctx context.Context, req Request) (Response, error) {
		if err := ctx.Err(); err != nil {
			return Response{}, err
		}
		return Response{
			RequestID:  req.ID,
			GroupName:  req.GroupName,
			Trajectory: req.Trajectory.Clone(),
		}, nil
	})
}
