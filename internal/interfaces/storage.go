package interfaces

import (
	"context"

	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// WidgetStore persists registered widget configurations
type WidgetStore interface {
	// Put stores or updates a widget record
	Put(ctx context.Context, record *models.WidgetRecord) error

	// Get retrieves a widget record by ID
	Get(ctx context.Context, id string) (*models.WidgetRecord, error)

	// List retrieves all widget records, newest first
	List(ctx context.Context) ([]*models.WidgetRecord, error)

	// Delete removes a widget record by ID
	Delete(ctx context.Context, id string) error

	// Close releases the underlying store
	Close() error
}
