// Package store is a document store over GORM: schema-flexible JSON records
// grouped into named collections, each assigned an opaque string identity.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var (
	// ErrNotConfigured is returned when no database handle is attached.
	ErrNotConfigured = errors.New("store: database not configured")
	// ErrNotFound is returned when a document lookup matches nothing.
	ErrNotFound = errors.New("store: document not found")
)

// Document is a decoded record as handed to callers: the stored fields plus
// the public "id" key carrying the store-assigned identity.
type Document = map[string]any

// document is the persisted row shape. One row per record; the record body
// is kept as serialized JSON so collections stay schema-flexible.
type document struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Collection string    `gorm:"index;size:64;not null"`
	Data       []byte    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// Store wraps a GORM handle. The handle may be nil (nothing configured);
// every operation then fails with ErrNotConfigured instead of panicking.
type Store struct {
	db *gorm.DB
}

// New creates a Store around an existing GORM handle. Used by Open and by
// tests that inject an in-memory database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to the database named by databaseURL and migrates the
// documents table. postgres:// and postgresql:// URLs use the Postgres
// driver; anything else is treated as a SQLite path. A non-empty
// databaseName becomes a table prefix so several logical stores can share
// one database.
func Open(databaseURL, databaseName string) (*Store, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	cfg := &gorm.Config{}
	if databaseName != "" {
		cfg.NamingStrategy = schema.NamingStrategy{TablePrefix: databaseName + "_"}
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}

	s := New(db)
	if err := s.Migrate(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// Migrate creates the documents table.
func (s *Store) Migrate(ctx context.Context) error {
	if !s.Available() {
		return ErrNotConfigured
	}
	if err := s.db.WithContext(ctx).AutoMigrate(&document{}); err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	return nil
}

// Available reports whether a database handle is attached.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Close releases the underlying connection pool. Safe on a disconnected store.
func (s *Store) Close() error {
	if !s.Available() {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("store: close: %w", err)
	}
	return sqlDB.Close()
}

// CreateDocument serializes record into the named collection and returns the
// newly assigned identity.
func (s *Store) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	if !s.Available() {
		return "", ErrNotConfigured
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("store: encode record: %w", err)
	}

	doc := document{
		ID:         uuid.NewString(),
		Collection: collection,
		Data:       data,
	}
	if err := s.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return "", fmt.Errorf("store: %w", err)
	}
	return doc.ID, nil
}

// GetDocuments returns every record in the collection whose fields exactly
// match all filter entries. An empty filter returns the whole collection.
// Records come back in insertion order with their public "id" set.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter map[string]any) ([]Document, error) {
	if !s.Available() {
		return nil, ErrNotConfigured
	}

	var rows []document
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := serializeDocument(row)
		if err != nil {
			return nil, err
		}
		if matchesFilter(doc, filter) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// GetDocument returns the single record with the given identity, or
// ErrNotFound when the collection holds no such document.
func (s *Store) GetDocument(ctx context.Context, collection, id string) (Document, error) {
	if !s.Available() {
		return nil, ErrNotConfigured
	}

	var row document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return serializeDocument(row)
}

// CountDocuments returns the number of records in the collection.
func (s *Store) CountDocuments(ctx context.Context, collection string) (int64, error) {
	if !s.Available() {
		return 0, ErrNotConfigured
	}

	var n int64
	err := s.db.WithContext(ctx).
		Model(&document{}).
		Where("collection = ?", collection).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("store: %w", err)
	}
	return n, nil
}

// ListCollections returns up to limit distinct collection names, sorted.
func (s *Store) ListCollections(ctx context.Context, limit int) ([]string, error) {
	if !s.Available() {
		return nil, ErrNotConfigured
	}

	names := make([]string, 0, limit)
	err := s.db.WithContext(ctx).
		Model(&document{}).
		Distinct().
		Order("collection ASC").
		Limit(limit).
		Pluck("collection", &names).Error
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return names, nil
}

// serializeDocument decodes a row and replaces the internal identity column
// with the public "id" field.
func serializeDocument(row document) (Document, error) {
	doc := Document{}
	if err := json.Unmarshal(row.Data, &doc); err != nil {
		return nil, fmt.Errorf("store: decode document %s: %w", row.ID, err)
	}
	doc["id"] = row.ID
	return doc, nil
}

// matchesFilter reports whether doc carries every filter entry with an equal
// value. DeepEqual keeps the comparison safe for list-valued fields.
func matchesFilter(doc Document, filter map[string]any) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
