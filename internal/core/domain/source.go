package domain

import "errors"

// RouteSourceKind selects where the route table is read from at start-up.
type RouteSourceKind string

const (
	SourceEmbedded RouteSourceKind = "embedded"
	SourceFile     RouteSourceKind = "file"
	SourceMongo    RouteSourceKind = "mongo"
	SourceRedis    RouteSourceKind = "redis"
)

var ErrUnknownRouteSource = errors.New("unknown route source")
