// Package shim lets a trajectory filter take part in the planning pipeline.
//
// A Shim satisfies ports.PlanningAdapter: it runs the planner, feeds the planned
// trajectory through its filter and writes the result back into the response.
// A filter failure never corrupts a plan; the planner's response is returned
// untouched and the failure is reported through the ok flag.
package shim

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/trajfilter/internal/logging"
	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/aretw0/trajfilter/pkg/message"
	"github.com/aretw0/trajfilter/pkg/planning"
	"github.com/aretw0/trajfilter/pkg/ports"
)

var _ ports.PlanningAdapter = (*Shim)(nil)

// Shim wraps one filter. It is not safe for concurrent use; see ports.Filter.
type Shim struct {
	filter ports.Filter[message.Adapter]
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	now    func() time.Time
}

// Option defines a functional option for configuring the Shim.
type Option func(*Shim)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shim) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Shim) {
		s.hooks = hooks
	}
}

// New wraps f.
func New(f ports.Filter[message.Adapter], opts ...Option) *Shim {
	s := &Shim{
		filter: f,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	s.logger = s.logger.With("filter", f.Name(), "filter_type", f.Type())

	if ls, ok := f.(interface{ SetLogger(*slog.Logger) }); ok {
		ls.SetLogger(s.logger)
	}
	return s
}

// Filter returns the wrapped filter.
func (s *Shim) Filter() ports.Filter[message.Adapter] {
	return s.filter
}

// Name returns the wrapped filter's instance name.
func (s *Shim) Name() string {
	return s.filter.Name()
}

// Configure configures the wrapped filter from params.
func (s *Shim) Configure(ctx context.Context, params ports.ParamStore) error {
	start := s.now()
	err := s.filter.Configure(ctx, params)

	event := s.event(domain.EventConfigure, start)
	event.Err = err
	if s.hooks.OnConfigure != nil {
		s.hooks.OnConfigure(ctx, event)
	}

	if err != nil {
		s.logger.Warn("filter configuration failed", "err", err)
		return err
	}
	s.logger.Debug("filter configured")
	return nil
}

// AdaptAndPlan runs planner for req and filters the planned trajectory.
//
// Planner errors are returned unchanged. If the filter rejects the trajectory the
// planner's response is returned as is, with ok == false and a nil error.
func (s *Shim) AdaptAndPlan(ctx context.Context, planner planning.Planner, req planning.Request) (planning.Response, bool, error) {
	res, err := planner.Plan(ctx, req)
	if err != nil {
		return res, false, err
	}

	in := message.FromResponse(res)
	var out message.Adapter

	start := s.now()
	err = s.filter.Update(in, &out)

	event := s.event(domain.EventUpdate, start)
	event.RequestID = req.ID
	event.InPoints = len(res.Trajectory.Points)
	event.Err = err
	if err == nil {
		event.OutPoints = len(out.Request.Trajectory.Points)
	}
	if s.hooks.OnUpdate != nil {
		s.hooks.OnUpdate(ctx, event)
	}

	if err != nil {
		s.logFailure(req, err)
		return res, false, nil
	}

	out.WriteTo(&res)
	s.logger.Debug("trajectory filtered", "request_id", req.ID, "in_points", event.InPoints, "out_points", event.OutPoints)
	return res, true, nil
}

func (s *Shim) event(kind domain.EventType, start time.Time) *domain.FilterEvent {
	now := s.now()
	return &domain.FilterEvent{
		EventBase:  domain.EventBase{Timestamp: now, Type: kind},
		FilterName: s.filter.Name(),
		FilterType: s.filter.Type(),
		Duration:   now.Sub(start),
	}
}

// logFailure reports a rejected update. Updating an unconfigured filter is a chain
// assembly defect and is logged at error level.
func (s *Shim) logFailure(req planning.Request, err error) {
	if errors.Is(err, domain.ErrNotConfigured) {
		s.logger.Error("filter updated before configuration, using unfiltered plan", "request_id", req.ID, "err", err)
		return
	}
	s.logger.Warn("filter rejected trajectory, using unfiltered plan", "request_id", req.ID, "err", err)
}
