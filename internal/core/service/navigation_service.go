package service

import (
	"github.com/rs/zerolog"

	"github.com/classhub/navigation-service/internal/core/domain"
	"github.com/classhub/navigation-service/internal/core/ports"
)

// NavigationService serves title and menu lookups over an immutable table.
type NavigationService struct {
	routes   []domain.Route
	resolver *TitleResolver
	metrics  ports.NavigationMetrics
	logger   zerolog.Logger
}

// NewNavigationService takes ownership of a copy of routes. metrics may be
// nil.
func NewNavigationService(routes []domain.Route, metrics ports.NavigationMetrics, logger zerolog.Logger) *NavigationService {
	s := &NavigationService{
		routes:   domain.CloneRoutes(routes),
		resolver: NewTitleResolver(routes),
		metrics:  metrics,
		logger:   logger,
	}
	if s.metrics != nil {
		counts := map[domain.UserType]int{domain.UserStudent: 0, domain.UserFaculty: 0}
		for _, r := range s.routes {
			counts[r.UserType]++
		}
		for ut, n := range counts {
			s.metrics.SetTableSize(ut, n)
		}
	}
	s.logger.Info().Int("routes", len(s.routes)).Int("dynamic", len(s.resolver.dynamic)).Msg("navigation table ready")
	return s
}

var _ ports.NavigationService = (*NavigationService)(nil)

func (s *NavigationService) Title(path string) string {
	return s.Resolve(path).Title
}

// Resolve looks up path and records the match kind.
func (s *NavigationService) Resolve(path string) ports.Resolution {
	res := s.resolver.Resolve(path)
	if s.metrics != nil {
		s.metrics.ObserveResolution(res.Kind)
	}
	if res.Kind == ports.MatchNone {
		s.logger.Debug().Str("path", path).Msg("no route for path")
	}
	return res
}

// Routes returns every route owned by userType, in table order.
func (s *NavigationService) Routes(userType domain.UserType) []domain.Route {
	return s.filter(func(r domain.Route) bool { return r.UserType == userType })
}

// Sidebar returns the routes of userType flagged for the sidebar, in table order.
func (s *NavigationService) Sidebar(userType domain.UserType) []domain.Route {
	return s.filter(func(r domain.Route) bool { return r.UserType == userType && r.ShowInSidebar })
}

func (s *NavigationService) All() []domain.Route {
	return domain.CloneRoutes(s.routes)
}

func (s *NavigationService) filter(keep func(domain.Route) bool) []domain.Route {
	out := make([]domain.Route, 0, len(s.routes))
	for _, r := range s.routes {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
