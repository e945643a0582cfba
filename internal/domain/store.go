package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Collection names used by the API.
const (
	CollectionProject        = "project"
	CollectionContactMessage = "contactmessage"
)

// InternalIDField is the store-assigned identifier stripped from public responses.
const InternalIDField = "_id"

// ErrStoreUnavailable is returned when no document store was configured or reachable at startup.
var ErrStoreUnavailable = errors.New("document store is not available")

// Document is a schema-flexible record addressed by collection name.
type Document map[string]any

// DocumentStore is the persistence backend shared by all handlers.
type DocumentStore interface {
	// Name returns the database name the store is bound to.
	Name() string
	CreateDocument(ctx context.Context, collection string, record Document) (string, error)
	GetDocuments(ctx context.Context, collection string, filter Document) ([]Document, error)
	CountDocuments(ctx context.Context, collection string, filter Document) (int64, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// ToDocument converts a JSON-tagged struct into a Document.
// Keys follow the json tags so every backend stores the same field names.
func ToDocument(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// DecodeDocument fills dst from doc using the json tags of dst.
func DecodeDocument(doc Document, dst any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}
