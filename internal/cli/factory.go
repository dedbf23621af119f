package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/trajfilter"
	"github.com/aretw0/trajfilter/pkg/adapters/memory"
	"github.com/aretw0/trajfilter/pkg/adapters/redis"
	"github.com/aretw0/trajfilter/pkg/adapters/viper"
	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/aretw0/trajfilter/pkg/observability"
	"github.com/aretw0/trajfilter/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// openParamStore selects the parameter backend from the flags.
// The returned close function is never nil.
func openParamStore(opts FilterOptions) (ports.ParamStore, func() error, error) {
	noop := func() error { return nil }

	switch {
	case opts.ParamsPath != "" && opts.RedisAddr != "":
		return nil, noop, errors.New("--params and --redis-addr are mutually exclusive")
	case opts.ParamsPath != "":
		store, err := viper.Open(opts.ParamsPath)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	case opts.RedisAddr != "":
		var storeOpts []redis.Option
		if opts.RedisPrefix != "" {
			storeOpts = append(storeOpts, redis.WithPrefix(opts.RedisPrefix))
		}
		store := redis.New(opts.RedisAddr, "", 0, storeOpts...)
		return store, store.Close, nil
	default:
		return memory.NewStore(nil), noop, nil
	}
}

// createPipeline initializes a pipeline with standard CLI conventions.
// When reg is not nil, filter metrics are registered with it.
func createPipeline(opts FilterOptions, params ports.ParamStore, logger *slog.Logger, reg prometheus.Registerer) (*trajfilter.Pipeline, error) {
	pipelineOpts := []trajfilter.Option{
		trajfilter.WithLogger(logger),
		trajfilter.WithParamStore(params),
	}

	var hooks domain.LifecycleHooks
	if opts.Debug {
		hooks = createDebugHooks(logger)
	}
	if reg != nil {
		m, err := observability.NewMetrics(reg)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		hooks = hooks.Merge(m.Hooks())
	}
	pipelineOpts = append(pipelineOpts, trajfilter.WithLifecycleHooks(hooks))

	p, err := trajfilter.Load(opts.ChainPath, pipelineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing pipeline: %w", err)
	}
	return p, nil
}

// createDebugHooks logs every filter lifecycle event.
func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnConfigure: func(ctx context.Context, e *domain.FilterEvent) {
			if e.Failed() {
				logger.Debug("Configure (Error)", "filter", e.FilterName, "type", e.FilterType, "err", e.Err)
				return
			}
			logger.Debug("Configure", "filter", e.FilterName, "type", e.FilterType)
		},
		OnUpdate: func(ctx context.Context, e *domain.FilterEvent) {
			if e.Failed() {
				logger.Debug("Update (Error)", "filter", e.FilterName, "request_id", e.RequestID, "err", e.Err)
				return
			}
			logger.Debug("Update", "filter", e.FilterName, "request_id", e.RequestID,
				"in_points", e.InPoints, "out_points", e.OutPoints, "duration", e.Duration)
		},
	}
}
