package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/classhub/navigation-service/internal/core/domain"
)

const defaultRoutesCollection = "nav_routes"

// RouteRepository reads the navigation table from a MongoDB collection.
// Documents are ordered by their position field.
type RouteRepository struct {
	col *mongo.Collection
}

func NewRouteRepository(db *mongo.Database, collection string) *RouteRepository {
	if collection == "" {
		collection = defaultRoutesCollection
	}
	return &RouteRepository{col: db.Collection(collection)}
}

type mongoRoute struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Position      int                `bson:"position"`
	Path          string             `bson:"path"`
	Title         string             `bson:"title"`
	Icon          string             `bson:"icon,omitempty"`
	ShowInSidebar bool               `bson:"show_in_sidebar"`
	UserType      string             `bson:"user_type"`
}

func (r *RouteRepository) Name() string { return string(domain.SourceMongo) }

// Load returns all routes sorted by position.
func (r *RouteRepository) Load(ctx context.Context) ([]domain.Route, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, findOptions())
	if err != nil {
		return nil, fmt.Errorf("find routes: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoRoute
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode routes: %w", err)
	}

	routes := make([]domain.Route, len(docs))
	for i, d := range docs {
		routes[i] = domain.Route{
			Path:          d.Path,
			Title:         d.Title,
			Icon:          domain.Icon(d.Icon),
			ShowInSidebar: d.ShowInSidebar,
			UserType:      domain.UserType(d.UserType),
		}
	}
	return routes, nil
}

// Seed inserts routes when the collection is empty. It reports whether
// anything was written.
func (r *RouteRepository) Seed(ctx context.Context, routes []domain.Route) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return false, fmt.Errorf("count routes: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	docs := make([]interface{}, len(routes))
	for i, rt := range routes {
		docs[i] = toMongoRoute(i, rt)
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return false, fmt.Errorf("seed routes: %w", err)
	}
	return true, nil
}

// EnsureIndexes creates the ordering index used by Load.
func (r *RouteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "position", Value: 1}},
	})
	return err
}

func findOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
}

func toMongoRoute(position int, rt domain.Route) mongoRoute {
	return mongoRoute{
		Position:      position,
		Path:          rt.Path,
		Title:         rt.Title,
		Icon:          string(rt.Icon),
		ShowInSidebar: rt.ShowInSidebar,
		UserType:      string(rt.UserType),
	}
}
