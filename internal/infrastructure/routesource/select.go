package routesource

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/classhub/navigation-service/internal/core/domain"
	"github.com/classhub/navigation-service/internal/core/ports"
	mongostore "github.com/classhub/navigation-service/internal/infrastructure/db/mongo"
	redisstore "github.com/classhub/navigation-service/internal/infrastructure/db/redis"
)

// Options carries what each source kind needs. Only the fields for the
// selected kind are read.
type Options struct {
	Kind            domain.RouteSourceKind
	FilePath        string
	MongoDB         *mongo.Database
	MongoCollection string
	Redis           *redis.Client
	RedisKey        string
}

// Select returns the RouteSource for opts.Kind.
func Select(opts Options) (ports.RouteSource, error) {
	switch opts.Kind {
	case domain.SourceEmbedded, "":
		return Embedded{}, nil
	case domain.SourceFile:
		if opts.FilePath == "" {
			return nil, fmt.Errorf("file source: ROUTES_FILE is required")
		}
		return File{Path: opts.FilePath}, nil
	case domain.SourceMongo:
		if opts.MongoDB == nil {
			return nil, fmt.Errorf("mongo source: no database connection")
		}
		return mongostore.NewRouteRepository(opts.MongoDB, opts.MongoCollection), nil
	case domain.SourceRedis:
		if opts.Redis == nil {
			return nil, fmt.Errorf("redis source: no client")
		}
		return redisstore.NewRouteSnapshot(opts.Redis, opts.RedisKey), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRouteSource, opts.Kind)
}
