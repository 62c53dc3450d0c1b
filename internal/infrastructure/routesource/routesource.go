// Package routesource loads the navigation table once at start-up from the
// configured backing store.
package routesource

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/classhub/navigation-service/internal/core/domain"
	"github.com/classhub/navigation-service/internal/core/ports"
	"github.com/classhub/navigation-service/internal/pkg/validation"
)

// Embedded serves the compiled-in table.
type Embedded struct{}

func (Embedded) Name() string { return string(domain.SourceEmbedded) }

func (Embedded) Load(context.Context) ([]domain.Route, error) {
	return domain.DefaultRoutes(), nil
}

// File reads a JSON array of route records from disk.
type File struct {
	Path string
}

func (f File) Name() string { return string(domain.SourceFile) }

func (f File) Load(context.Context) ([]domain.Route, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read route file: %w", err)
	}
	routes, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("route file %s: %w", f.Path, err)
	}
	return routes, nil
}

// Decode parses the JSON form of a route table.
func Decode(data []byte) ([]domain.Route, error) {
	var routes []domain.Route
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRouteTable, err)
	}
	return routes, nil
}

// Encode renders a route table in the same JSON form Decode accepts.
func Encode(routes []domain.Route) ([]byte, error) {
	return json.MarshalIndent(routes, "", "  ")
}

// Load reads the table from src and validates every record. The caller owns
// the returned slice.
func Load(ctx context.Context, src ports.RouteSource, log zerolog.Logger) ([]domain.Route, error) {
	routes, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load routes from %s: %w", src.Name(), err)
	}
	if err := validation.Routes(validation.New(), routes); err != nil {
		return nil, fmt.Errorf("load routes from %s: %w", src.Name(), err)
	}
	log.Info().Str("source", src.Name()).Int("routes", len(routes)).Msg("route table loaded")
	return routes, nil
}
