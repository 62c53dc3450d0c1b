package ports

import (
	"context"

	"github.com/classhub/navigation-service/internal/core/domain"
)

// RouteSource supplies the navigation table. It is read once at start-up.
type RouteSource interface {
	Name() string
	Load(ctx context.Context) ([]domain.Route, error)
}
