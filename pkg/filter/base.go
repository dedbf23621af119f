package filter

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/trajfilter/internal/logging"
	"github.com/aretw0/trajfilter/pkg/domain"
)

// Base implements the identity and lifecycle part of ports.Filter.
// The identity pair is fixed at construction; only MarkConfigured changes the state.
type Base struct {
	filterType string
	filterName string
	state      domain.FilterState
	logger     *slog.Logger
}

// NewBase creates an unconfigured Base.
func NewBase(filterType, filterName string) Base {
	return Base{
		filterType: filterType,
		filterName: filterName,
		state:      domain.StateUnconfigured,
	}
}

// SetLogger sets the logger a filter reports configuration warnings to.
func (b *Base) SetLogger(logger *slog.Logger) {
	b.logger = logger
}

// Logger returns the filter logger, or a no-op logger when none was set.
func (b *Base) Logger() *slog.Logger {
	if b.logger == nil {
		return logging.NewNop()
	}
	return b.logger
}

// Type returns the filter type.
func (b *Base) Type() string {
	return b.filterType
}

// Name returns the filter instance name.
func (b *Base) Name() string {
	return b.filterName
}

// Description returns "Trajectory filter '<name>' of type '<type>'".
func (b *Base) Description() string {
	return fmt.Sprintf("Trajectory filter '%s' of type '%s'", b.filterName, b.filterType)
}

// State returns the lifecycle state.
func (b *Base) State() domain.FilterState {
	return b.state
}

// Configured reports whether Configure has succeeded at least once.
func (b *Base) Configured() bool {
	return b.state == domain.StateConfigured
}

// MarkConfigured records a successful Configure. It is idempotent.
func (b *Base) MarkConfigured() {
	b.state = domain.StateConfigured
}

// Check rejects an Update that must not run: first an unconfigured filter,
// then an input that violates the trajectory invariants.
func (b *Base) Check(in domain.Trajectory) error {
	if !b.Configured() {
		return fmt.Errorf("%s: %w", b.Description(), domain.ErrNotConfigured)
	}
	if err := in.Validate(); err != nil {
		return fmt.Errorf("%s: %w", b.Description(), err)
	}
	return nil
}
