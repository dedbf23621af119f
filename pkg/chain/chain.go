// Package chain composes adapter shims into an ordered filter chain.
//
// Every shim is configured exactly once per Configure call, in chain order.
// A filter whose configuration fails stays inactive while the others carry on,
// and at plan time a filter that rejects its input is skipped: the trajectory
// it received passes on to the next filter unchanged.
//
// Planning through a chain that was never configured is an assembly defect:
// every filter rejects the plan, which passes through unfiltered with ok == false.
package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/trajfilter/internal/logging"
	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/aretw0/trajfilter/pkg/planning"
	"github.com/aretw0/trajfilter/pkg/ports"
	"github.com/aretw0/trajfilter/pkg/registry"
	"github.com/aretw0/trajfilter/pkg/shim"
)

var _ ports.PlanningAdapter = (*Chain)(nil)

type link struct {
	shim   *shim.Shim
	active bool
	err    error
}

// Chain is an ordered sequence of shims. It is not safe for concurrent use.
type Chain struct {
	links  []*link
	logger *slog.Logger
}

type options struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option defines a functional option for Build.
type Option func(*options)

// WithLogger sets a custom structured logger for the chain and its shims.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks on every shim.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// New creates a chain from already wrapped shims.
func New(logger *slog.Logger, shims ...*shim.Shim) *Chain {
	if logger == nil {
		logger = logging.NewNop()
	}
	c := &Chain{logger: logger}
	for _, s := range shims {
		c.links = append(c.links, &link{shim: s})
	}
	return c
}

// Build instantiates every filter of cfg from reg and wraps it in a shim.
// Unknown filter types fail the whole build.
func Build(reg *registry.Registry, cfg Config, opts ...Option) (*Chain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}

	shims := make([]*shim.Shim, 0, len(cfg.Filters))
	for _, e := range cfg.Filters {
		f, err := reg.New(e.Type, e.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to build chain: %w", err)
		}
		shims = append(shims, shim.New(f, shim.WithLogger(o.logger), shim.WithLifecycleHooks(o.hooks)))
	}
	return New(o.logger, shims...), nil
}

// Configure configures every filter in chain order. Filters that fail stay inactive;
// the failures are joined into the returned error and the remaining filters are still usable.
func (c *Chain) Configure(ctx context.Context, params ports.ParamStore) error {
	var errs []error
	for _, l := range c.links {
		l.err = l.shim.Configure(ctx, params)
		l.active = l.err == nil
		if l.err != nil {
			errs = append(errs, fmt.Errorf("filter %q: %w", l.shim.Name(), l.err))
		}
	}

	c.logger.Info("filter chain configured", "filters", len(c.links), "active", len(c.Active()))
	return errors.Join(errs...)
}

// AdaptAndPlan runs planner once, then applies every active filter in order.
// Filters whose configuration failed are skipped. A filter that was never configured
// still goes through its shim, which rejects the update as ErrNotConfigured and logs it at error level.
// ok is false when at least one filter rejected its input.
func (c *Chain) AdaptAndPlan(ctx context.Context, planner planning.Planner, req planning.Request) (planning.Response, bool, error) {
	res, err := planner.Plan(ctx, req)
	if err != nil {
		return res, false, err
	}

	ok := true
	for _, l := range c.links {
		if l.err != nil {
			continue
		}
		planned := res
		next, applied, err := l.shim.AdaptAndPlan(ctx, planning.PlannerFunc(func(context.Context, planning.Request) (planning.Response, error) {
			return planned, nil
		}), req)
		if err != nil {
			return res, false, err
		}
		if !applied {
			ok = false
		}
		res = next
	}
	return res, ok, nil
}

// Planner returns a Planner that plans with base and then runs the chain.
// Filter failures are not reported; the partially filtered plan is returned.
func (c *Chain) Planner(base planning.Planner) planning.Planner {
	return planning.PlannerFunc(func(ctx context.Context, req planning.Request) (planning.Response, error) {
		res, _, err := c.AdaptAndPlan(ctx, base, req)
		return res, err
	})
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int {
	return len(c.links)
}

// Names returns the filter names in chain order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.links))
	for i, l := range c.links {
		names[i] = l.shim.Name()
	}
	return names
}

// Active returns the names of the filters whose last Configure succeeded, in chain order.
func (c *Chain) Active() []string {
	var names []string
	for _, l := range c.links {
		if l.active {
			names = append(names, l.shim.Name())
		}
	}
	return names
}

// Err returns the last configuration error of the named filter.
func (c *Chain) Err(name string) error {
	for _, l := range c.links {
		if l.shim.Name() == name {
			return l.err
		}
	}
	return nil
}
