// Package uniformsample implements a filter that resamples a trajectory at a
// fixed time step.
//
// Parameters (under the instance name):
//
//	sample_duration  seconds between output points (default 0.05, must be > 0)
//
// Output points run from the first input time to the last one, one every
// sample_duration, and always end with an exact copy of the last input point.
// Positions are linearly interpolated per joint; velocities and accelerations
// are interpolated only when every input point carries them.
package uniformsample

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/aretw0/trajfilter/pkg/filter"
	"github.com/aretw0/trajfilter/pkg/message"
	"github.com/aretw0/trajfilter/pkg/ports"
	"github.com/aretw0/trajfilter/pkg/registry"
	"gonum.org/v1/gonum/interp"
)

// TypeName is the registered type of the filter.
const TypeName = "uniform_sample"

// DefaultSampleDuration is used when sample_duration is not set.
const DefaultSampleDuration = 0.05

// MaxSamples bounds the number of output points of a single Update.
const MaxSamples = 1_000_000

func init() {
	registry.Register(TypeName, func(name string) registry.Filter {
		return New(name)
	})
}

// Config holds the decoded parameters.
type Config struct {
	SampleDuration float64 `param:"sample_duration"`
}

// Step returns the sample period.
func (c Config) Step() time.Duration {
	return time.Duration(c.SampleDuration * float64(time.Second))
}

// Filter resamples trajectories uniformly in time.
type Filter struct {
	filter.Base
	cfg Config
}

// New creates an unconfigured filter.
func New(name string) *Filter {
	return &Filter{Base: filter.NewBase(TypeName, name)}
}

// Config returns the configuration in effect.
func (f *Filter) Config() Config {
	return f.cfg
}

// Configure reads sample_duration. The previous configuration is kept on failure.
func (f *Filter) Configure(ctx context.Context, params ports.ParamStore) error {
	cfg := Config{SampleDuration: DefaultSampleDuration}
	if err := filter.DecodeParams(ctx, params, f.Name(), &cfg, filter.Param{Key: "sample_duration"}); err != nil {
		return err
	}
	if cfg.SampleDuration <= 0 || cfg.Step() <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v",
			domain.ErrConfiguration, domain.ParamKey(f.Name(), "sample_duration"), cfg.SampleDuration)
	}

	f.cfg = cfg
	f.MarkConfigured()
	f.Logger().Debug("filter configured", "sample_duration", cfg.SampleDuration)
	return nil
}

// Update writes the resampled trajectory into out.
func (f *Filter) Update(in message.Adapter, out *message.Adapter) error {
	src := in.Request.Trajectory
	if err := f.Check(src); err != nil {
		return err
	}

	res, err := Resample(src, f.cfg.Step())
	if err != nil {
		return fmt.Errorf("%s: %w", f.Description(), err)
	}
	*out = message.Adapter{Request: message.Request{Trajectory: res}}
	return nil
}

// Resample returns src sampled every step. src must be valid and step positive.
// Trajectories with fewer than two distinct times are returned as copies.
func Resample(src domain.Trajectory, step time.Duration) (domain.Trajectory, error) {
	if len(src.Points) == 0 {
		return src.Clone(), nil
	}
	first := src.Points[0].TimeFromStart
	knots, xs := knotsOf(src.Points, first)
	if len(knots) < 2 {
		return src.Clone(), nil
	}

	last := src.Points[len(src.Points)-1].TimeFromStart
	if n := int64((last - first) / step); n >= MaxSamples {
		return domain.Trajectory{}, fmt.Errorf("%w: sampling %s every %s yields %d points (max %d)",
			domain.ErrInvalidInput, last-first, step, n, MaxSamples)
	}

	dof := len(src.JointNames)
	positions, err := fitJoints(xs, gather(src.Points, knots, positionsOf), dof)
	if err != nil {
		return domain.Trajectory{}, err
	}
	var velocities, accelerations []interp.PiecewiseLinear
	if rows := gather(src.Points, knots, velocitiesOf); dof > 0 && complete(rows) {
		if velocities, err = fitJoints(xs, rows, dof); err != nil {
			return domain.Trajectory{}, err
		}
	}
	if rows := gather(src.Points, knots, accelerationsOf); dof > 0 && complete(rows) {
		if accelerations, err = fitJoints(xs, rows, dof); err != nil {
			return domain.Trajectory{}, err
		}
	}

	out := domain.Trajectory{JointNames: slices.Clone(src.JointNames)}
	for i := int64(0); ; i++ {
		t := first + time.Duration(i)*step
		if t >= last {
			break
		}
		x := float64(t - first)
		out.Points = append(out.Points, domain.JointTrajectoryPoint{
			Positions:     predict(positions, x),
			Velocities:    predict(velocities, x),
			Accelerations: predict(accelerations, x),
			TimeFromStart: t,
		})
	}
	out.Points = append(out.Points, src.Points[len(src.Points)-1].Clone())
	return out, nil
}

// knotsOf returns the interpolation knots: the index of the last point of every run
// of equal abscissae, and the abscissae themselves as nanoseconds since first.
// Offsets keep precision for late trajectories, and runs are compared as float64
// because that is what the interpolation sees; the result is strictly increasing.
func knotsOf(points []domain.JointTrajectoryPoint, first time.Duration) ([]int, []float64) {
	var (
		idx []int
		xs  []float64
	)
	for i, p := range points {
		x := float64(p.TimeFromStart - first)
		if n := len(xs); n > 0 && x <= xs[n-1] {
			idx[n-1] = i
			continue
		}
		idx = append(idx, i)
		xs = append(xs, x)
	}
	return idx, xs
}
