package domain

import (
	"fmt"
	"slices"
	"time"
)

// JointTrajectoryPoint is one joint configuration of a trajectory.
// Velocities and Accelerations are either empty or have the same arity as Positions.
type JointTrajectoryPoint struct {
	Positions     []float64     `json:"positions" yaml:"positions"`
	Velocities    []float64     `json:"velocities,omitempty" yaml:"velocities,omitempty"`
	Accelerations []float64     `json:"accelerations,omitempty" yaml:"accelerations,omitempty"`
	TimeFromStart time.Duration `json:"time_from_start" yaml:"time_from_start"`
}

// Clone returns a deep copy of the point.
func (p JointTrajectoryPoint) Clone() JointTrajectoryPoint {
	return JointTrajectoryPoint{
		Positions:     slices.Clone(p.Positions),
		Velocities:    slices.Clone(p.Velocities),
		Accelerations: slices.Clone(p.Accelerations),
		TimeFromStart: p.TimeFromStart,
	}
}

// Trajectory is a time-parameterized joint trajectory.
// All points share the joint ordering given by JointNames.
type Trajectory struct {
	JointNames []string               `json:"joint_names" yaml:"joint_names"`
	Points     []JointTrajectoryPoint `json:"points" yaml:"points"`
}

// Clone returns a deep copy of the trajectory. The copy shares no memory with t.
func (t Trajectory) Clone() Trajectory {
	out := Trajectory{
		JointNames: slices.Clone(t.JointNames),
	}
	if t.Points != nil {
		out.Points = make([]JointTrajectoryPoint, len(t.Points))
		for i, p := range t.Points {
			out.Points[i] = p.Clone()
		}
	}
	return out
}

// JointIndex maps each joint name to its column in the point sequences.
func (t Trajectory) JointIndex() map[string]int {
	idx := make(map[string]int, len(t.JointNames))
	for i, name := range t.JointNames {
		idx[name] = i
	}
	return idx
}

// Duration returns the time-from-start of the last point, or zero for an empty trajectory.
func (t Trajectory) Duration() time.Duration {
	if len(t.Points) == 0 {
		return 0
	}
	return t.Points[len(t.Points)-1].TimeFromStart
}

// Validate checks the model invariants. Violations wrap ErrInvalidInput.
func (t Trajectory) Validate() error {
	seen := make(map[string]struct{}, len(t.JointNames))
	for _, name := range t.JointNames {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate joint name %q", ErrInvalidInput, name)
		}
		seen[name] = struct{}{}
	}

	dof := len(t.JointNames)
	var prev time.Duration
	for i, p := range t.Points {
		if len(p.Positions) != dof {
			return fmt.Errorf("%w: point %d has %d positions for %d joints", ErrInvalidInput, i, len(p.Positions), dof)
		}
		if n := len(p.Velocities); n != 0 && n != dof {
			return fmt.Errorf("%w: point %d has %d velocities for %d joints", ErrInvalidInput, i, n, dof)
		}
		if n := len(p.Accelerations); n != 0 && n != dof {
			return fmt.Errorf("%w: point %d has %d accelerations for %d joints", ErrInvalidInput, i, n, dof)
		}
		if p.TimeFromStart < 0 {
			return fmt.Errorf("%w: point %d has negative time_from_start %s", ErrInvalidInput, i, p.TimeFromStart)
		}
		if i > 0 && p.TimeFromStart < prev {
			return fmt.Errorf("%w: point %d time_from_start %s is before previous %s", ErrInvalidInput, i, p.TimeFromStart, prev)
		}
		prev = p.TimeFromStart
	}
	return nil
}
