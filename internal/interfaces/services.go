package interfaces

import (
	"context"

	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// WidgetService manages registered widget configurations and renders them
type WidgetService interface {
	// RegisterWidget validates and stores a widget configuration.
	// Invalid configurations fail with models.InvalidParameterError.
	RegisterWidget(ctx context.Context, name string, cfg models.RawWidgetConfig) (*models.WidgetRecord, error)

	// GetWidget retrieves a registered widget by ID
	GetWidget(ctx context.Context, id string) (*models.WidgetRecord, error)

	// ListWidgets retrieves all registered widgets
	ListWidgets(ctx context.Context) ([]*models.WidgetRecord, error)

	// DeleteWidget removes a registered widget
	DeleteWidget(ctx context.Context, id string) error

	// RenderWidget mounts the widget, resolves its review data and runs one
	// render dispatch. Acquisition failures surface as the error-placeholder
	// result, not as an error return.
	RenderWidget(ctx context.Context, id string, page models.PageContext) (*models.RenderResult, error)

	// ResolveWidget mounts the widget and returns the resolved aggregate
	// state. Fails when acquisition ends in the Error state.
	ResolveWidget(ctx context.Context, id string) (*models.ResolvedReviews, error)
}
