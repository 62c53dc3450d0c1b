package ports

import "github.com/classhub/navigation-service/internal/core/domain"

// MatchKind reports which strategy produced a title.
type MatchKind string

const (
	MatchDynamic MatchKind = "dynamic"
	MatchStatic  MatchKind = "static"
	MatchNone    MatchKind = "none"
)

// Resolution is the outcome of looking up a path.
type Resolution struct {
	Path  string
	Title string
	Kind  MatchKind
	// Route is the matched descriptor; nil when Kind is MatchNone.
	Route *domain.Route
}

// NavigationService answers title and menu queries against the route table.
type NavigationService interface {
	Title(path string) string
	Resolve(path string) Resolution
	Routes(userType domain.UserType) []domain.Route
	Sidebar(userType domain.UserType) []domain.Route
	All() []domain.Route
}

// NavigationMetrics receives an observation for every resolution and the
// per-role size of the table once it is loaded.
type NavigationMetrics interface {
	ObserveResolution(kind MatchKind)
	SetTableSize(userType domain.UserType, n int)
}
