// Package metrics defines the custom Prometheus metrics of the navigation
// service. HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/classhub/navigation-service/internal/core/domain"
	"github.com/classhub/navigation-service/internal/core/ports"
)

const namespace = "navigation"

// Metrics holds the navigation collectors registered on one registry.
type Metrics struct {
	// TitleResolutions counts title lookups.
	// Label:
	//   - match: "dynamic", "static" or "none"
	TitleResolutions *prometheus.CounterVec

	// RouteTableSize reports the number of routes loaded at start-up.
	// Label:
	//   - user_type: "student" or "faculty"
	RouteTableSize *prometheus.GaugeVec
}

// New registers the navigation collectors on reg. A nil reg means the
// global registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		TitleResolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "title_resolutions_total",
				Help:      "Total number of path title resolutions, by match kind.",
			},
			[]string{"match"},
		),
		RouteTableSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "route_table_size",
				Help:      "Number of routes in the loaded navigation table, by owning role.",
			},
			[]string{"user_type"},
		),
	}
}

var _ ports.NavigationMetrics = (*Metrics)(nil)

func (m *Metrics) ObserveResolution(kind ports.MatchKind) {
	m.TitleResolutions.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) SetTableSize(userType domain.UserType, n int) {
	m.RouteTableSize.WithLabelValues(string(userType)).Set(float64(n))
}
