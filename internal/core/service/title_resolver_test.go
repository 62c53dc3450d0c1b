package service

import (
	"testing"

	"github.com/classhub/navigation-service/internal/core/domain"
	"github.com/classhub/navigation-service/internal/core/ports"
)

func TestResolveTitle_DefaultTable(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/student", "Classes"},
		{"/student/classes/42", "Class"},
		{"/faculty/announcements", "Announcements"},
		{"/faculty/announcements/7", "Announcements"},
		{"/unknown/path", domain.PageNotFound},
		{"/student/classes/42/create-post", "Class"},
		{"/student/discussions/create", "Discussion"},
		{"/faculty/classes", "Classes"},
		{"/faculty/classes/9", "Class Details"},
		{"/faculty/profile", "Profile"},
		{"/student/assignments/3", "Assignment"},
		{"/student/classesX", domain.PageNotFound},
		{"/student/profile/", domain.PageNotFound},
		{"/Student", domain.PageNotFound},
		{"", domain.PageNotFound},
	}
	for _, tc := range cases {
		if got := ResolveTitle(tc.path, domain.DefaultRoutes()); got != tc.want {
			t.Errorf("ResolveTitle(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestResolveTitle_DynamicBeatsExact(t *testing.T) {
	dynamicFirst := []domain.Route{
		{Path: "/a/:id", Title: "Dynamic"},
		{Path: "/a/b", Title: "Static"},
	}
	staticFirst := []domain.Route{
		{Path: "/a/b", Title: "Static"},
		{Path: "/a/:id", Title: "Dynamic"},
	}
	for _, table := range [][]domain.Route{dynamicFirst, staticFirst} {
		if got := ResolveTitle("/a/b", table); got != "Dynamic" {
			t.Errorf("expected dynamic precedence, got %q", got)
		}
		if got := NewTitleResolver(table).Title("/a/b"); got != "Dynamic" {
			t.Errorf("resolver: expected dynamic precedence, got %q", got)
		}
	}
}

func TestResolveTitle_FirstMatchWins(t *testing.T) {
	table := []domain.Route{
		{Path: "/x", Title: "First"},
		{Path: "/x", Title: "Second"},
		{Path: "/d/:a", Title: "DynFirst"},
		{Path: "/d/:b/more", Title: "DynSecond"},
	}
	if got := ResolveTitle("/x", table); got != "First" {
		t.Errorf("expected First, got %q", got)
	}
	if got := ResolveTitle("/d/1/more", table); got != "DynFirst" {
		t.Errorf("expected DynFirst, got %q", got)
	}
	tr := NewTitleResolver(table)
	if got := tr.Title("/x"); got != "First" {
		t.Errorf("resolver: expected First, got %q", got)
	}
	if got := tr.Title("/d/1/more"); got != "DynFirst" {
		t.Errorf("resolver: expected DynFirst, got %q", got)
	}
}

func TestResolveTitle_SegmentAwarePrefix(t *testing.T) {
	table := []domain.Route{{Path: "/files:name", Title: "File"}}
	cases := map[string]string{
		"/files":     "File",
		"/files/a":   "File",
		"/filesX":    domain.PageNotFound,
		"/file":      domain.PageNotFound,
		"/files2/ok": domain.PageNotFound,
	}
	for path, want := range cases {
		if got := ResolveTitle(path, table); got != want {
			t.Errorf("ResolveTitle(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestResolveTitle_EmptyMarkerName(t *testing.T) {
	table := []domain.Route{{Path: "/x/:", Title: "X"}}
	if got := ResolveTitle("/x/anything", table); got != "X" {
		t.Fatalf("expected X, got %q", got)
	}
	if got := ResolveTitle("/x", table); got != domain.PageNotFound {
		t.Fatalf("expected not found, got %q", got)
	}
}

func TestResolveTitle_EmptyTable(t *testing.T) {
	if got := ResolveTitle("/student", nil); got != domain.PageNotFound {
		t.Fatalf("expected not found, got %q", got)
	}
}

func TestResolveTitle_LiteralRoutesResolveToOwnTitle(t *testing.T) {
	for _, r := range domain.DefaultRoutes() {
		if r.IsDynamic() || shadowedByDynamic(r.Path, domain.DefaultRoutes()) {
			continue
		}
		if got := ResolveTitle(r.Path, domain.DefaultRoutes()); got != r.Title {
			t.Errorf("ResolveTitle(%q) = %q, want %q", r.Path, got, r.Title)
		}
	}
}

func shadowedByDynamic(path string, routes []domain.Route) bool {
	for _, r := range routes {
		if r.IsDynamic() && matchesPrefix(path, r.StaticPrefix()) {
			return true
		}
	}
	return false
}

func TestTitleResolver_MatchesResolveTitle(t *testing.T) {
	tr := NewTitleResolver(domain.DefaultRoutes())
	paths := []string{"/", "/nope", "/student/x", "/faculty/forums/create/extra"}
	for _, r := range domain.DefaultRoutes() {
		paths = append(paths, r.Path, r.StaticPrefix()+"1", r.Path+"/", r.Path+"x")
	}
	for _, p := range paths {
		want := ResolveTitle(p, domain.DefaultRoutes())
		if got := tr.Title(p); got != want {
			t.Errorf("TitleResolver.Title(%q) = %q, ResolveTitle = %q", p, got, want)
		}
		if again := tr.Title(p); again != want {
			t.Errorf("second lookup of %q changed result: %q", p, again)
		}
	}
}

func TestTitleResolver_ResolveKinds(t *testing.T) {
	tr := NewTitleResolver(domain.DefaultRoutes())

	res := tr.Resolve("/student/classes/42")
	if res.Kind != ports.MatchDynamic || res.Route == nil || res.Route.Path != "/student/classes/:classId" {
		t.Fatalf("unexpected dynamic resolution: %+v", res)
	}

	res = tr.Resolve("/faculty/announcements")
	if res.Kind != ports.MatchStatic || res.Route == nil || res.Route.Icon != domain.IconMegaphone {
		t.Fatalf("unexpected static resolution: %+v", res)
	}

	res = tr.Resolve("/unknown/path")
	if res.Kind != ports.MatchNone || res.Route != nil || res.Title != domain.PageNotFound {
		t.Fatalf("unexpected miss resolution: %+v", res)
	}
}

func TestTitleResolver_CopiesTable(t *testing.T) {
	table := []domain.Route{{Path: "/a", Title: "A"}}
	tr := NewTitleResolver(table)
	table[0].Title = "mutated"
	if got := tr.Title("/a"); got != "A" {
		t.Fatalf("resolver observed caller mutation: %q", got)
	}
	res := tr.Resolve("/a")
	res.Route.Title = "also mutated"
	if got := tr.Title("/a"); got != "A" {
		t.Fatalf("resolution leaked internal route: %q", got)
	}
}
