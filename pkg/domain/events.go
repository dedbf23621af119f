package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventConfigure EventType = "filter_configure"
	EventUpdate    EventType = "filter_update"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// FilterEvent describes one Configure or Update call on a filter.
type FilterEvent struct {
	EventBase
	FilterName string        `json:"filter_name"`
	FilterType string        `json:"filter_type"`
	RequestID  string        `json:"request_id,omitempty"`
	InPoints   int           `json:"in_points,omitempty"`
	OutPoints  int           `json:"out_points,omitempty"`
	Duration   time.Duration `json:"duration"`
	Err        error         `json:"-"`
}

// Failed reports whether the call did not succeed.
func (e *FilterEvent) Failed() bool {
	return e.Err != nil
}

// LifecycleHooks defines callbacks for filter observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnConfigure func(context.Context, *FilterEvent)
	OnUpdate    func(context.Context, *FilterEvent)
}

// Merge returns hooks that invoke h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnConfigure: chainHook(h.OnConfigure, other.OnConfigure),
		OnUpdate:    chainHook(h.OnUpdate, other.OnUpdate),
	}
}

func chainHook(a, b func(context.Context, *FilterEvent)) func(context.Context, *FilterEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *FilterEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
