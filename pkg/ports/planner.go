package ports

import (
	"context"

	"github.com/aretw0/trajfilter/pkg/planning"
)

// PlanningAdapter is the extension point the planning pipeline calls around its planner.
type PlanningAdapter interface {
	// AdaptAndPlan runs planner for req and adapts the response.
	// Planner errors are returned unchanged. When the adaptation itself fails the
	// planner's response is returned untouched with ok == false.
	AdaptAndPlan(ctx context.Context, planner planning.Planner, req planning.Request) (res planning.Response, ok bool, err error)
}
