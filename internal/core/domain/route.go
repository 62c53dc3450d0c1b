package domain

import (
	"errors"
	"strings"
)

// PageNotFound is the title returned when no route matches a path.
const PageNotFound = "Page Not Found"

// ParamMarker introduces a path parameter in a route pattern.
const ParamMarker = ":"

var ErrInvalidRouteTable = errors.New("invalid route table")
var ErrRouteTableEmpty = errors.New("route table is empty")

// Route describes one client-side navigation entry.
type Route struct {
	Path          string   `json:"path"                    validate:"required,startswith=/"`
	Title         string   `json:"title"                   validate:"required"`
	Icon          Icon     `json:"icon,omitempty"          validate:"omitempty,icon"`
	ShowInSidebar bool     `json:"showInSidebar,omitempty"`
	UserType      UserType `json:"userType"                validate:"required,oneof=student faculty"`
}

// IsDynamic reports whether the route pattern carries a parameter marker.
func (r Route) IsDynamic() bool {
	return strings.Contains(r.Path, ParamMarker)
}

// StaticPrefix returns the part of the pattern before the first parameter
// marker. For literal routes it is the whole path.
func (r Route) StaticPrefix() string {
	prefix, _, _ := strings.Cut(r.Path, ParamMarker)
	return prefix
}
