package widget

import (
	"context"
	"fmt"

	"github.com/evertonthomazi/go-google-reviews/internal/common"
	"github.com/evertonthomazi/go-google-reviews/internal/interfaces"
	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// Source resolves review data for a canonical configuration, either from the
// configuration itself (supplied mode, no I/O) or from the widget API
// (remote mode, one round trip).
type Source struct {
	client interfaces.FeaturableClient
	logger *common.Logger
}

// NewSource creates a review source over the given API client. The client
// may be nil when only supplied-mode configurations will be resolved.
func NewSource(client interfaces.FeaturableClient, logger *common.Logger) *Source {
	return &Source{client: client, logger: logger}
}

// Resolve produces the aggregate state for cfg. Supplied mode returns
// immediately with the caller-provided order preserved; remote mode costs one
// fetch and overwrites all four fields from the response.
func (s *Source) Resolve(ctx context.Context, cfg *models.WidgetConfig) (*models.ResolvedReviews, error) {
	if cfg.Source == models.SourceSupplied {
		return s.resolveSupplied(cfg), nil
	}
	return s.resolveRemote(ctx, cfg)
}

func (s *Source) resolveSupplied(cfg *models.WidgetConfig) *models.ResolvedReviews {
	return &models.ResolvedReviews{
		Reviews:          cfg.Reviews,
		ProfileURL:       cfg.ProfileURL,
		TotalReviewCount: cfg.TotalReviewCount,
		AverageRating:    cfg.AverageRating,
	}
}

func (s *Source) resolveRemote(ctx context.Context, cfg *models.WidgetConfig) (*models.ResolvedReviews, error) {
	if s.client == nil {
		return nil, fmt.Errorf("no featurable client configured")
	}

	widget, err := s.client.GetWidget(ctx, cfg.FeaturableID)
	if err != nil {
		return nil, fmt.Errorf("fetch widget %q: %w", cfg.FeaturableID, err)
	}

	return &models.ResolvedReviews{
		Reviews:          widget.Reviews,
		ProfileURL:       widget.ProfileURL,
		TotalReviewCount: widget.TotalReviewCount,
		AverageRating:    widget.AverageRating,
	}, nil
}
