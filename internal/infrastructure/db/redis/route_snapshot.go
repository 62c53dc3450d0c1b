package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/classhub/navigation-service/internal/core/domain"
)

const defaultRoutesKey = "navigation:routes"

// RouteSnapshot stores the navigation table as one JSON value.
type RouteSnapshot struct {
	client *redis.Client
	key    string
}

// NewRouteSnapshot reads and writes the table under key.
func NewRouteSnapshot(client *redis.Client, key string) *RouteSnapshot {
	if key == "" {
		key = defaultRoutesKey
	}
	return &RouteSnapshot{client: client, key: key}
}

func (s *RouteSnapshot) Name() string { return string(domain.SourceRedis) }

// Load fetches and decodes the snapshot. A missing key is an empty table.
func (s *RouteSnapshot) Load(ctx context.Context) ([]domain.Route, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.key, err)
	}

	var routes []domain.Route
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidRouteTable, s.key, err)
	}
	return routes, nil
}

// Publish overwrites the snapshot with routes.
func (s *RouteSnapshot) Publish(ctx context.Context, routes []domain.Route) error {
	data, err := json.Marshal(routes)
	if err != nil {
		return fmt.Errorf("encode routes: %w", err)
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}
