/*
Package trajfilter reuses trajectory filters (resampling, point reduction) inside a
motion-planning pipeline.

Filters follow a strict configure-then-update lifecycle. An adapter layer bridges
the pipeline's request/response shapes and the single-trajectory value filters
consume, and an ordered chain of filters runs after the planner on every plan.
A failing filter never corrupts a plan: the pipeline falls back to the unfiltered
trajectory.

# Key Features

  - Explicit Lifecycle: A filter rejects updates until Configure succeeds.
  - Lossless Bridge: Trajectories are deep-copied across the adapter, never aliased.
  - Fail-Safe Chains: Misconfigured or failing filters are skipped, not fatal.
  - Pluggable Parameters: Memory, file (viper) and Redis parameter stores.

# Usage

Describe the chain, provide parameters, configure once, then plan:

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/trajfilter"
		"github.com/aretw0/trajfilter/pkg/adapters/memory"
		"github.com/aretw0/trajfilter/pkg/chain"
		"github.com/aretw0/trajfilter/pkg/planning"
	)

	func main() {
		cfg := chain.Config{Filters: []chain.Entry{
			{Name: "smoother", Type: "uniform_sample"},
			{Name: "reducer", Type: "n_point"},
		}}
		params := memory.NewStore(map[string]any{
			"smoother.sample_duration": 0.1,
			"reducer.sample_count":     20,
		})

		p, err := trajfilter.New(cfg, trajfilter.WithParamStore(params))
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		if err := p.Configure(ctx); err != nil {
			log.Printf("some filters are inactive: %v", err)
		}

		res, ok, err := p.Plan(ctx, myPlanner, planning.NewRequest("arm", goal))
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			log.Println("using unfiltered plan")
		}
		_ = res
	}
*/
package trajfilter
