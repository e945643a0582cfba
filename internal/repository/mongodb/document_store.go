package mongodb

import (
	"context"
	"fmt"
	"portfolio-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type documentStore struct {
	db *mongo.Database
}

func NewDocumentStore(db *mongo.Database) domain.DocumentStore {
	return &documentStore{db: db}
}

func (s *documentStore) Name() string {
	return s.db.Name()
}

func (s *documentStore) CreateDocument(ctx context.Context, collection string, record domain.Document) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, toRecord(record))
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return insertedID(res.InsertedID), nil
}

func (s *documentStore) GetDocuments(ctx context.Context, collection string, filter domain.Document) ([]domain.Document, error) {
	cur, err := s.db.Collection(collection).Find(ctx, toFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var rows []bson.M
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}

	docs := make([]domain.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, domain.Document(row))
	}
	return docs, nil
}

func (s *documentStore) CountDocuments(ctx context.Context, collection string, filter domain.Document) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, toFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *documentStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// toRecord passes values through unchanged, so time.Time fields are stored as BSON dates
func toRecord(record domain.Document) bson.M {
	return bson.M(record)
}

// toFilter maps a nil filter to an empty one; the driver rejects nil documents.
func toFilter(filter domain.Document) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return bson.M(filter)
}

func insertedID(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
