// Package widgetdb implements WidgetStore using BadgerHold.
// Records are JSON-encoded: the in-process-only renderer and filter fields
// carry a "-" JSON tag and are never persisted.
package widgetdb

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/timshannon/badgerhold/v4"

	"github.com/evertonthomazi/go-google-reviews/internal/common"
	"github.com/evertonthomazi/go-google-reviews/internal/interfaces"
	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// Store implements interfaces.WidgetStore using BadgerHold.
type Store struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewStore creates a new WidgetStore backed by BadgerHold.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create widgetdb path %s: %w", path, err)
	}
	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil
	opts.Encoder = json.Marshal
	opts.Decoder = json.Unmarshal
	db, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open widgetdb at %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("WidgetDB opened")
	return &Store{db: db, logger: logger}, nil
}

// Put stores or updates a widget record.
func (s *Store) Put(_ context.Context, record *models.WidgetRecord) error {
	if record.ID == "" {
		return fmt.Errorf("widget record requires an ID")
	}
	if err := s.db.Upsert(record.ID, record); err != nil {
		return fmt.Errorf("failed to put widget %q: %w", record.ID, err)
	}
	return nil
}

// Get retrieves a widget record by ID.
func (s *Store) Get(_ context.Context, id string) (*models.WidgetRecord, error) {
	var rec models.WidgetRecord
	if err := s.db.Get(id, &rec); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("widget %q not found", id)
		}
		return nil, fmt.Errorf("failed to get widget %q: %w", id, err)
	}
	return &rec, nil
}

// List retrieves all widget records, newest first.
func (s *Store) List(_ context.Context) ([]*models.WidgetRecord, error) {
	var recs []models.WidgetRecord
	if err := s.db.Find(&recs, nil); err != nil {
		return nil, fmt.Errorf("failed to list widgets: %w", err)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].CreatedAt.After(recs[j].CreatedAt) })

	result := make([]*models.WidgetRecord, len(recs))
	for i := range recs {
		result[i] = &recs[i]
	}
	return result, nil
}

// Delete removes a widget record by ID.
func (s *Store) Delete(_ context.Context, id string) error {
	if err := s.db.Delete(id, models.WidgetRecord{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return fmt.Errorf("widget %q not found", id)
		}
		return fmt.Errorf("failed to delete widget %q: %w", id, err)
	}
	return nil
}

// Close releases the underlying store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ensure Store implements WidgetStore
var _ interfaces.WidgetStore = (*Store)(nil)
