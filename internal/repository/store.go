package repository

import (
	"context"
	"fmt"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/mongodb"
	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/pkg/database"
	"strings"
)

// Backend identifies the document store implementation selected by a DATABASE_URL.
type Backend string

const (
	BackendMongo    Backend = "mongodb"
	BackendPostgres Backend = "postgres"
)

// DetectBackend picks a backend from the URL scheme.
func DetectBackend(url string) (Backend, error) {
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return BackendMongo, nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return BackendPostgres, nil
	default:
		return "", fmt.Errorf("unsupported DATABASE_URL scheme")
	}
}

// OpenDocumentStore connects to the store named by url.
// The returned close function releases the underlying connection.
func OpenDocumentStore(ctx context.Context, url, name string) (domain.DocumentStore, func(), error) {
	backend, err := DetectBackend(url)
	if err != nil {
		return nil, nil, err
	}

	switch backend {
	case BackendMongo:
		db, err := database.NewMongoConnection(ctx, url, name)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() { _ = db.Client().Disconnect(context.Background()) }
		return mongodb.NewDocumentStore(db), closeFn, nil
	default:
		pool, err := database.NewPostgresConnection(ctx, url)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connect: %w", err)
		}
		store, err := postgres.NewDocumentStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	}
}
