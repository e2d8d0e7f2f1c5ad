package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"dexseed/internal/storage/mongo"
	"dexseed/internal/storage/postgres"
)

const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

// Backend picks a storage backend from the connection URL scheme.
func Backend(dbURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(dbURL))
	if err != nil {
		return "", fmt.Errorf("parse db url: %w", err)
	}
	switch strings.ToLower(parsed.Scheme) {
	case "mongodb", "mongodb+srv":
		return BackendMongo, nil
	case "postgres", "postgresql":
		return BackendPostgres, nil
	case "":
		return "", fmt.Errorf("db url has no scheme")
	default:
		return "", fmt.Errorf("unsupported db url scheme: %s", parsed.Scheme)
	}
}

// Open connects to the store named by dbURL. dbName is required for mongo.
func Open(ctx context.Context, dbURL, dbName string) (Store, error) {
	backend, err := Backend(dbURL)
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendMongo:
		store, err := mongo.NewStore(ctx, dbURL, dbName)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		store, err := postgres.NewStore(ctx, dbURL)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close(ctx)
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		return store, nil
	}
}
