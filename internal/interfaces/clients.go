// Package interfaces defines service contracts for the review widget host
package interfaces

import (
	"context"

	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// FeaturableClient provides access to the Featurable widget API
type FeaturableClient interface {
	// GetWidget retrieves the reviews and aggregate figures for a widget.
	// A response with success=false, a transport failure, or a malformed
	// body all return an error.
	GetWidget(ctx context.Context, featurableID string) (*models.FeaturableWidget, error)
}
