package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"portfolio-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Collections live in one JSONB table; filters use containment (@>).
const (
	createDocumentsTable = `CREATE TABLE IF NOT EXISTS documents (
		id         UUID PRIMARY KEY,
		collection TEXT NOT NULL,
		data       JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	createCollectionIndex = `CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection)`
)

type documentStore struct {
	db   *pgxpool.Pool
	name string
}

// NewDocumentStore creates the documents table when missing.
func NewDocumentStore(ctx context.Context, db *pgxpool.Pool) (domain.DocumentStore, error) {
	for _, stmt := range []string{createDocumentsTable, createCollectionIndex} {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return nil, fmt.Errorf("prepare documents schema: %w", err)
		}
	}
	return &documentStore{db: db, name: db.Config().ConnConfig.Database}, nil
}

func (s *documentStore) Name() string {
	return s.name
}

func (s *documentStore) CreateDocument(ctx context.Context, collection string, record domain.Document) (string, error) {
	data, err := marshalDocument(record)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	query := `INSERT INTO documents (id, collection, data) VALUES ($1, $2, $3::jsonb)`
	if _, err := s.db.Exec(ctx, query, id, collection, data); err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id, nil
}

func (s *documentStore) GetDocuments(ctx context.Context, collection string, filter domain.Document) ([]domain.Document, error) {
	where, err := marshalDocument(filter)
	if err != nil {
		return nil, err
	}

	query := `SELECT id::text, data::text FROM documents
              WHERE collection = $1 AND data @> $2::jsonb
              ORDER BY created_at, id`
	rows, err := s.db.Query(ctx, query, collection, where)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		var doc domain.Document
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("decode %s document %s: %w", collection, id, err)
		}
		doc[domain.InternalIDField] = id
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}
	return docs, nil
}

func (s *documentStore) CountDocuments(ctx context.Context, collection string, filter domain.Document) (int64, error) {
	where, err := marshalDocument(filter)
	if err != nil {
		return 0, err
	}

	var n int64
	query := `SELECT count(*) FROM documents WHERE collection = $1 AND data @> $2::jsonb`
	if err := s.db.QueryRow(ctx, query, collection, where).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *documentStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan collection name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// marshalDocument encodes doc as JSON text; nil becomes {} which matches every row.
func marshalDocument(doc domain.Document) (string, error) {
	if doc == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(raw), nil
}
