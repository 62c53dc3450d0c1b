package service

import (
	"strings"

	"github.com/classhub/navigation-service/internal/core/domain"
	"github.com/classhub/navigation-service/internal/core/ports"
)

// ResolveTitle returns the display title for path. A dynamic route whose
// static prefix matches wins over any exact match; the first matching entry
// in table order is used for each strategy.
func ResolveTitle(path string, routes []domain.Route) string {
	for _, r := range routes {
		if r.IsDynamic() && matchesPrefix(path, r.StaticPrefix()) {
			return r.Title
		}
	}
	for _, r := range routes {
		if r.Path == path {
			return r.Title
		}
	}
	return domain.PageNotFound
}

// matchesPrefix is a segment-aware prefix test: a prefix that does not end
// in "/" only matches at a segment boundary.
func matchesPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if prefix == "" || strings.HasSuffix(prefix, "/") {
		return true
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

type dynamicEntry struct {
	prefix string
	index  int
}

// TitleResolver is ResolveTitle precompiled for a fixed table.
// It is safe for concurrent use.
type TitleResolver struct {
	routes  []domain.Route
	dynamic []dynamicEntry
	static  map[string]int
}

// NewTitleResolver copies routes and indexes them for lookup.
func NewTitleResolver(routes []domain.Route) *TitleResolver {
	tr := &TitleResolver{
		routes: domain.CloneRoutes(routes),
		static: make(map[string]int, len(routes)),
	}
	for i, r := range tr.routes {
		if r.IsDynamic() {
			tr.dynamic = append(tr.dynamic, dynamicEntry{prefix: r.StaticPrefix(), index: i})
			continue
		}
		if _, seen := tr.static[r.Path]; !seen {
			tr.static[r.Path] = i
		}
	}
	return tr
}

// Resolve looks up path and reports how it matched.
func (tr *TitleResolver) Resolve(path string) ports.Resolution {
	for _, d := range tr.dynamic {
		if matchesPrefix(path, d.prefix) {
			return tr.resolution(path, ports.MatchDynamic, d.index)
		}
	}
	if i, ok := tr.static[path]; ok {
		return tr.resolution(path, ports.MatchStatic, i)
	}
	return ports.Resolution{Path: path, Title: domain.PageNotFound, Kind: ports.MatchNone}
}

// Title is Resolve without the match details.
func (tr *TitleResolver) Title(path string) string {
	return tr.Resolve(path).Title
}

func (tr *TitleResolver) resolution(path string, kind ports.MatchKind, i int) ports.Resolution {
	r := tr.routes[i]
	return ports.Resolution{Path: path, Title: r.Title, Kind: kind, Route: &r}
}
