package uniformsample

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/trajfilter/pkg/adapters/memory"
	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/aretw0/trajfilter/pkg/message"
	"github.com/aretw0/trajfilter/pkg/registry"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ramp() domain.Trajectory {
	// Two joints moving linearly: j1 = t, j2 = -2t over one second.
	return domain.Trajectory{
		JointNames: []string{"j1", "j2"},
		Points: []domain.JointTrajectoryPoint{
			{Positions: []float64{0, 0}, Velocities: []float64{1, -2}, TimeFromStart: 0},
			{Positions: []float64{0.4, -0.8}, Velocities: []float64{1, -2}, TimeFromStart: 400 * time.Millisecond},
			{Positions: []float64{1, -2}, Velocities: []float64{1, -2}, TimeFromStart: time.Second},
		},
	}
}

func configured(t *testing.T, params map[string]any) *Filter {
	t.Helper()
	f := New("smoother")
	require.NoError(t, f.Configure(context.Background(), memory.NewStore(params)))
	return f
}

func assertMonotonic(t *testing.T, tr domain.Trajectory) {
	t.Helper()
	for i := 1; i < len(tr.Points); i++ {
		assert.GreaterOrEqual(t, tr.Points[i].TimeFromStart, tr.Points[i-1].TimeFromStart, "point %d", i)
	}
}

func TestRegistered(t *testing.T) {
	f, err := registry.Default.New(TypeName, "smoother")
	require.NoError(t, err)
	assert.Equal(t, TypeName, f.Type())
	assert.Equal(t, "Trajectory filter 'smoother' of type 'uniform_sample'", f.Description())
}

func TestConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("default", func(t *testing.T) {
		f := configured(t, nil)
		assert.Equal(t, DefaultSampleDuration, f.Config().SampleDuration)
		assert.True(t, f.Configured())
	})

	t.Run("string value", func(t *testing.T) {
		f := configured(t, map[string]any{"smoother.sample_duration": "0.2"})
		assert.Equal(t, 200*time.Millisecond, f.Config().Step())
	})

	for _, bad := range []any{0, -0.1, "fast"} {
		f := New("smoother")
		err := f.Configure(ctx, memory.NewStore(map[string]any{"smoother.sample_duration": bad}))
		assert.ErrorIs(t, err, domain.ErrConfiguration, "value %v", bad)
		assert.False(t, f.Configured())
	}

	t.Run("failure keeps previous configuration", func(t *testing.T) {
		f := configured(t, map[string]any{"smoother.sample_duration": 0.1})
		err := f.Configure(ctx, memory.NewStore(map[string]any{"smoother.sample_duration": -1}))
		assert.ErrorIs(t, err, domain.ErrConfiguration)
		assert.True(t, f.Configured())
		assert.Equal(t, 0.1, f.Config().SampleDuration)
	})

	t.Run("reconfigure uses latest parameters", func(t *testing.T) {
		store := memory.NewStore(map[string]any{"smoother.sample_duration": 0.1})
		f := New("smoother")
		require.NoError(t, f.Configure(ctx, store))
		store.Set("smoother.sample_duration", 0.25)
		require.NoError(t, f.Configure(ctx, store))

		var out message.Adapter
		require.NoError(t, f.Update(message.Wrap(ramp()), &out))
		// 0, 0.25, 0.5, 0.75 then the final point at 1.0.
		assert.Len(t, out.Request.Trajectory.Points, 5)
	})
}

func TestUpdate_NotConfigured(t *testing.T) {
	f := New("smoother")
	var out message.Adapter
	assert.ErrorIs(t, f.Update(message.Wrap(ramp()), &out), domain.ErrNotConfigured)
}

func TestUpdate_InvalidInput(t *testing.T) {
	f := configured(t, nil)
	bad := ramp()
	bad.JointNames = []string{"j1"}

	var out message.Adapter
	assert.ErrorIs(t, f.Update(message.Wrap(bad), &out), domain.ErrInvalidInput)
}

func TestUpdate_Resamples(t *testing.T) {
	f := configured(t, map[string]any{"smoother.sample_duration": 0.1})
	in := message.Wrap(ramp())
	before := in.Unwrap()

	var out message.Adapter
	require.NoError(t, f.Update(in, &out))

	got := out.Request.Trajectory
	require.NoError(t, got.Validate())
	assert.Equal(t, []string{"j1", "j2"}, got.JointNames)
	require.Len(t, got.Points, 11)
	assertMonotonic(t, got)

	for i, p := range got.Points {
		assert.Equal(t, time.Duration(i)*100*time.Millisecond, p.TimeFromStart)
		x := p.TimeFromStart.Seconds()
		assert.InDelta(t, x, p.Positions[0], 1e-9)
		assert.InDelta(t, -2*x, p.Positions[1], 1e-9)
		assert.InDeltaSlice(t, []float64{1, -2}, p.Velocities, 1e-9)
		assert.Empty(t, p.Accelerations)
	}

	// The input is left untouched.
	assert.Empty(t, cmp.Diff(before, in.Request.Trajectory))
}

func TestUpdate_EndsWithLastPoint(t *testing.T) {
	f := configured(t, map[string]any{"smoother.sample_duration": 0.3})
	var out message.Adapter
	require.NoError(t, f.Update(message.Wrap(ramp()), &out))

	pts := out.Request.Trajectory.Points
	require.Len(t, pts, 5) // 0, 0.3, 0.6, 0.9, 1.0
	assert.Empty(t, cmp.Diff(ramp().Points[2], pts[len(pts)-1]))
}

func TestUpdate_DuplicateTimes(t *testing.T) {
	tr := ramp()
	// A repeated time stamp must not break interpolation.
	tr.Points = append(tr.Points[:2:2], domain.JointTrajectoryPoint{
		Positions: []float64{0.5, -1}, TimeFromStart: 400 * time.Millisecond,
	}, tr.Points[2])

	f := configured(t, map[string]any{"smoother.sample_duration": 0.2})
	var out message.Adapter
	require.NoError(t, f.Update(message.Wrap(tr), &out))
	require.NoError(t, out.Request.Trajectory.Validate())
	assertMonotonic(t, out.Request.Trajectory)
	// Velocities are dropped because one knot lacks them.
	assert.Empty(t, out.Request.Trajectory.Points[1].Velocities)
}

func TestResample_Degenerate(t *testing.T) {
	single := domain.Trajectory{
		JointNames: []string{"j"},
		Points:     []domain.JointTrajectoryPoint{{Positions: []float64{3}, TimeFromStart: time.Second}},
	}
	got, err := Resample(single, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(single, got))

	empty, err := Resample(domain.Trajectory{JointNames: []string{"j"}}, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, empty.Points)
}

func TestResample_TooManySamples(t *testing.T) {
	_, err := Resample(ramp(), time.Nanosecond)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_LateTimestamps(t *testing.T) {
	// Beyond 2^53 ns neighbouring durations share a float64 in seconds.
	start := time.Duration(1 << 60)
	tr := domain.Trajectory{
		JointNames: []string{"j"},
		Points: []domain.JointTrajectoryPoint{
			{Positions: []float64{0}, TimeFromStart: start},
			{Positions: []float64{10}, TimeFromStart: start + 10},
		},
	}
	require.NoError(t, tr.Validate())

	f := configured(t, map[string]any{"smoother.sample_duration": 1e-9})
	var out message.Adapter
	require.NotPanics(t, func() {
		require.NoError(t, f.Update(message.Wrap(tr), &out))
	})

	pts := out.Request.Trajectory.Points
	require.Len(t, pts, 11)
	for i, p := range pts {
		assert.Equal(t, start+time.Duration(i), p.TimeFromStart, "point %d", i)
		assert.InDelta(t, float64(i), p.Positions[0], 1e-9, "point %d", i)
	}
}

func TestFitJoints_RejectsUnorderedKnots(t *testing.T) {
	rows := [][]float64{{0}, {1}}

	_, err := fitJoints([]float64{1, 1}, rows, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = fitJoints([]float64{0}, rows[:1], 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	curves, err := fitJoints([]float64{0, 2}, rows, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, curves[0].Predict(1), 1e-12)
}

func TestKnotsOf_MergesEqualOffsets(t *testing.T) {
	pts := ramp().Points
	pts = append(pts[:2:2], domain.JointTrajectoryPoint{Positions: []float64{0, 0}, TimeFromStart: 400 * time.Millisecond}, pts[2])

	idx, xs := knotsOf(pts, 0)
	assert.Equal(t, []int{0, 2, 3}, idx)
	assert.Equal(t, []float64{0, 4e8, 1e9}, xs)
}
