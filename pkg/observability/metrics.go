package observability

import (
	"context"

	"github.com/aretw0/trajfilter/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

// Metrics holds the Prometheus collectors fed by filter events.
type Metrics struct {
	Configures     *prometheus.CounterVec
	Updates        *prometheus.CounterVec
	UpdateDuration *prometheus.HistogramVec
	PointsOut      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Configures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trajfilter_configure_total",
				Help: "Total number of filter Configure calls",
			},
			[]string{"filter", "type", "result"},
		),
		Updates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trajfilter_update_total",
				Help: "Total number of filter Update calls",
			},
			[]string{"filter", "type", "result"},
		),
		UpdateDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trajfilter_update_duration_seconds",
				Help:    "Duration of filter Update calls",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"filter"},
		),
		PointsOut: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trajfilter_points_out_total",
				Help: "Total number of trajectory points produced by successful updates",
			},
			[]string{"filter"},
		),
	}

	for _, c := range []prometheus.Collector{m.Configures, m.Updates, m.UpdateDuration, m.PointsOut} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record every event.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnConfigure: func(ctx context.Context, e *domain.FilterEvent) {
			m.Configures.WithLabelValues(e.FilterName, e.FilterType, result(e)).Inc()
		},
		OnUpdate: func(ctx context.Context, e *domain.FilterEvent) {
			m.Updates.WithLabelValues(e.FilterName, e.FilterType, result(e)).Inc()
			m.UpdateDuration.WithLabelValues(e.FilterName).Observe(e.Duration.Seconds())
			if !e.Failed() {
				m.PointsOut.WithLabelValues(e.FilterName).Add(float64(e.OutPoints))
			}
		},
	}
}

func result(e *domain.FilterEvent) string {
	if e.Failed() {
		return resultError
	}
	return resultOK
}
