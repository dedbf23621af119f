package trajfilter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/trajfilter/internal/logging"
	"github.com/aretw0/trajfilter/pkg/adapters/memory"
	"github.com/aretw0/trajfilter/pkg/chain"
	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/aretw0/trajfilter/pkg/planning"
	"github.com/aretw0/trajfilter/pkg/ports"
	"github.com/aretw0/trajfilter/pkg/registry"

	// Built-in filters register themselves with registry.Default.
	_ "github.com/aretw0/trajfilter/pkg/filters/npoint"
	_ "github.com/aretw0/trajfilter/pkg/filters/uniformsample"
)

// Pipeline is the high-level entry point of the library.
// It owns a filter chain and the parameter store the chain is configured from.
type Pipeline struct {
	chain    *chain.Chain
	registry *registry.Registry
	params   ports.ParamStore
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Pipeline.
type Option func(*Pipeline)

// WithRegistry replaces registry.Default as the source of filter types.
func WithRegistry(reg *registry.Registry) Option {
	return func(p *Pipeline) {
		p.registry = reg
	}
}

// WithParamStore sets the store filters read their parameters from.
// Without it every filter runs on its defaults.
func WithParamStore(store ports.ParamStore) Option {
	return func(p *Pipeline) {
		p.params = store
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Pipeline) {
		p.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New builds a pipeline for cfg. The filters start unconfigured; call Configure before planning.
func New(cfg chain.Config, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	if p.registry == nil {
		p.registry = registry.Default
	}
	if p.params == nil {
		p.params = memory.NewStore(nil)
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}

	c, err := chain.Build(p.registry, cfg,
		chain.WithLogger(p.logger),
		chain.WithLifecycleHooks(p.hooks),
	)
	if err != nil {
		return nil, err
	}
	p.chain = c
	return p, nil
}

// Load builds a pipeline from a chain file.
func Load(path string, opts ...Option) (*Pipeline, error) {
	cfg, err := chain.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Configure configures every filter from the parameter store, in chain order.
// A returned error lists the filters left inactive; the rest of the chain remains usable.
func (p *Pipeline) Configure(ctx context.Context) error {
	return p.chain.Configure(ctx, p.params)
}

// Plan runs planner for req and filters the result through the chain.
// ok is false when an active filter rejected its input; res then holds the best plan available.
func (p *Pipeline) Plan(ctx context.Context, planner planning.Planner, req planning.Request) (planning.Response, bool, error) {
	return p.chain.AdaptAndPlan(ctx, planner, req)
}

// Filter runs the chain over an already planned trajectory.
func (p *Pipeline) Filter(ctx context.Context, t domain.Trajectory) (domain.Trajectory, bool, error) {
	res, ok, err := p.Plan(ctx, planning.Passthrough(), planning.NewRequest("", t))
	if err != nil {
		return domain.Trajectory{}, false, fmt.Errorf("failed to filter trajectory: %w", err)
	}
	return res.Trajectory, ok, nil
}

// Chain returns the underlying filter chain.
func (p *Pipeline) Chain() *chain.Chain {
	return p.chain
}

// Types lists the filter types available to the pipeline.
func (p *Pipeline) Types() []string {
	return p.registry.Types()
}
