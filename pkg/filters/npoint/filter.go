// Package npoint implements a filter that reduces a trajectory to a fixed
// number of points.
//
// Parameters (under the instance name):
//
//	sample_count  number of output points (default 2, must be a whole number >= 1)
//
// The first and last input points are always kept, so counts below two are
// raised to two. Intermediate points are picked evenly by index. Inputs that
// already have sample_count points or fewer are copied unchanged.
package npoint

import (
	"context"
	"fmt"
	"math"

	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/aretw0/trajfilter/pkg/filter"
	"github.com/aretw0/trajfilter/pkg/message"
	"github.com/aretw0/trajfilter/pkg/ports"
	"github.com/aretw0/trajfilter/pkg/registry"
	"gonum.org/v1/gonum/floats"
)

// TypeName is the registered type of the filter.
const TypeName = "n_point"

// MinSampleCount is the smallest count that keeps both endpoints.
const MinSampleCount = 2

func init() {
	registry.Register(TypeName, func(name string) registry.Filter {
		return New(name)
	})
}

// Config holds the decoded parameters.
type Config struct {
	SampleCount int `param:"sample_count"`
}

// Filter reduces trajectories to at most SampleCount points.
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

// Configure reads sample_count. The previous configuration is kept on failure.
func (f *Filter) Configure(ctx context.Context, params ports.ParamStore) error {
	cfg := Config{SampleCount: MinSampleCount}
	if err := filter.DecodeParams(ctx, params, f.Name(), &cfg, filter.Param{Key: "sample_count"}); err != nil {
		return err
	}
	key := domain.ParamKey(f.Name(), "sample_count")
	if cfg.SampleCount < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", domain.ErrConfiguration, key, cfg.SampleCount)
	}
	if cfg.SampleCount < MinSampleCount {
		f.Logger().Warn("sample count raised to keep both endpoints", "param", key, "requested", cfg.SampleCount, "used", MinSampleCount)
		cfg.SampleCount = MinSampleCount
	}

	f.cfg = cfg
	f.MarkConfigured()
	f.Logger().Debug("filter configured", "sample_count", cfg.SampleCount)
	return nil
}

// Update writes the reduced trajectory into out.
func (f *Filter) Update(in message.Adapter, out *message.Adapter) error {
	src := in.Request.Trajectory
	if err := f.Check(src); err != nil {
		return err
	}
	*out = message.Wrap(Reduce(src, f.cfg.SampleCount))
	return nil
}

// Reduce returns count points of src evenly spaced by index, including both endpoints.
// count must be at least 2. The result shares no memory with src.
func Reduce(src domain.Trajectory, count int) domain.Trajectory {
	n := len(src.Points)
	if n <= count {
		return src.Clone()
	}

	positions := floats.Span(make([]float64, count), 0, float64(n-1))
	picked := make([]domain.JointTrajectoryPoint, 0, count)
	for _, x := range positions {
		picked = append(picked, src.Points[int(math.Round(x))])
	}

	return domain.Trajectory{JointNames: src.JointNames, Points: picked}.Clone()
}
