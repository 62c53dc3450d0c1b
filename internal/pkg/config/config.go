package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Routes RoutesConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

type RoutesConfig struct {
	Source string `env:"ROUTES_SOURCE, default=embedded"`
	File   string `env:"ROUTES_FILE"`
	// Seed writes the compiled-in table to an empty mongo collection or a
	// missing redis key before loading.
	Seed bool `env:"ROUTES_SEED, default=false"`
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI,               default=mongodb://localhost:27017"`
	Database   string `env:"MONGO_DB,                default=classhub"`
	Collection string `env:"MONGO_ROUTES_COLLECTION, default=nav_routes"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR,       default=localhost:6379"`
	DB   int    `env:"REDIS_DB,         default=0"`
	Key  string `env:"REDIS_ROUTES_KEY, default=navigation:routes"`
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through l.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
