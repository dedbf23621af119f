package uniformsample

import (
	"fmt"

	"github.com/aretw0/trajfilter/pkg/domain"
	"gonum.org/v1/gonum/interp"
)

func positionsOf(p domain.JointTrajectoryPoint) []float64     { return p.Positions }
func velocitiesOf(p domain.JointTrajectoryPoint) []float64    { return p.Velocities }
func accelerationsOf(p domain.JointTrajectoryPoint) []float64 { return p.Accelerations }

// gather collects one field of the knot points, row per knot.
func gather(points []domain.JointTrajectoryPoint, knots []int, field func(domain.JointTrajectoryPoint) []float64) [][]float64 {
	rows := make([][]float64, len(knots))
	for i, k := range knots {
		rows[i] = field(points[k])
	}
	return rows
}

// complete reports whether every row is populated.
func complete(rows [][]float64) bool {
	for _, r := range rows {
		if len(r) == 0 {
			return false
		}
	}
	return true
}

// fitJoints fits one piecewise-linear curve per joint column.
// interp panics unless xs holds at least two strictly increasing values, so that is checked first.
func fitJoints(xs []float64, rows [][]float64, dof int) ([]interp.PiecewiseLinear, error) {
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: %d interpolation knots, need at least 2", domain.ErrInvalidInput, len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("%w: interpolation knots not strictly increasing at %d", domain.ErrInvalidInput, i)
		}
	}

	curves := make([]interp.PiecewiseLinear, dof)
	for j := range curves {
		ys := make([]float64, len(rows))
		for i, row := range rows {
			ys[i] = row[j]
		}
		if err := curves[j].Fit(xs, ys); err != nil {
			return nil, fmt.Errorf("%w: joint %d: %w", domain.ErrInvalidInput, j, err)
		}
	}
	return curves, nil
}

// predict evaluates every curve at x. It returns nil when there are no curves.
func predict(curves []interp.PiecewiseLinear, x float64) []float64 {
	if curves == nil {
		return nil
	}
	out := make([]float64, len(curves))
	for j := range curves {
		out[j] = curves[j].Predict(x)
	}
	return out
}
