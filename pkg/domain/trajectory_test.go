package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrajectory() Trajectory {
	return Trajectory{
		JointNames: []string{"shoulder", "elbow"},
		Points: []JointTrajectoryPoint{
			{Positions: []float64{0, 0}, Velocities: []float64{0, 0}, TimeFromStart: 0},
			{Positions: []float64{0.5, 1}, Velocities: []float64{1, 2}, TimeFromStart: 500 * time.Millisecond},
			{Positions: []float64{1, 2}, Velocities: []float64{0, 0}, TimeFromStart: time.Second},
		},
	}
}

func TestTrajectory_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Trajectory)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Trajectory) {}},
		{name: "empty points", mutate: func(tr *Trajectory) { tr.Points = nil }},
		{name: "equal times allowed", mutate: func(tr *Trajectory) { tr.Points[1].TimeFromStart = 0 }},
		{
			name:    "position arity mismatch",
			mutate:  func(tr *Trajectory) { tr.Points[1].Positions = []float64{1} },
			wantErr: true,
		},
		{
			name:    "extra joint name",
			mutate:  func(tr *Trajectory) { tr.JointNames = append(tr.JointNames, "wrist") },
			wantErr: true,
		},
		{
			name:    "velocity arity mismatch",
			mutate:  func(tr *Trajectory) { tr.Points[0].Velocities = []float64{1, 2, 3} },
			wantErr: true,
		},
		{
			name:    "acceleration arity mismatch",
			mutate:  func(tr *Trajectory) { tr.Points[2].Accelerations = []float64{1} },
			wantErr: true,
		},
		{
			name:    "decreasing time",
			mutate:  func(tr *Trajectory) { tr.Points[2].TimeFromStart = 100 * time.Millisecond },
			wantErr: true,
		},
		{
			name:    "negative time",
			mutate:  func(tr *Trajectory) { tr.Points[0].TimeFromStart = -time.Millisecond },
			wantErr: true,
		},
		{
			name:    "duplicate joint",
			mutate:  func(tr *Trajectory) { tr.JointNames[1] = "shoulder" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := sampleTrajectory()
			tt.mutate(&tr)
			err := tr.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTrajectory_CloneDoesNotAlias(t *testing.T) {
	orig := sampleTrajectory()
	cp := orig.Clone()
	require.Empty(t, cmp.Diff(orig, cp))

	cp.JointNames[0] = "changed"
	cp.Points[1].Positions[0] = 42
	cp.Points[1].Velocities[1] = 42

	assert.Equal(t, "shoulder", orig.JointNames[0])
	assert.Equal(t, 0.5, orig.Points[1].Positions[0])
	assert.Equal(t, 2.0, orig.Points[1].Velocities[1])
}

func TestTrajectory_JointIndexAndDuration(t *testing.T) {
	tr := sampleTrajectory()
	assert.Equal(t, map[string]int{"shoulder": 0, "elbow": 1}, tr.JointIndex())
	assert.Equal(t, time.Second, tr.Duration())
	assert.Zero(t, Trajectory{}.Duration())
}

func TestParamKey(t *testing.T) {
	assert.Equal(t, "smoother.sample_duration", ParamKey("smoother", "sample_duration"))
	assert.Equal(t, "sample_duration", ParamKey("", "sample_duration"))
}

func TestFilterState_String(t *testing.T) {
	assert.Equal(t, "unconfigured", StateUnconfigured.String())
	assert.Equal(t, "configured", StateConfigured.String())
}
