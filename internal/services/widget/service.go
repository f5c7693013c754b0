package widget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evertonthomazi/go-google-reviews/internal/common"
	"github.com/evertonthomazi/go-google-reviews/internal/interfaces"
	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// Service implements WidgetService over the widget store and the Featurable
// client. Mounts are per-request: fetched reviews are never cached across
// renders.
type Service struct {
	store  interfaces.WidgetStore
	client interfaces.FeaturableClient
	logger *common.Logger
}

// NewService creates a new widget service
func NewService(store interfaces.WidgetStore, client interfaces.FeaturableClient, logger *common.Logger) *Service {
	return &Service{
		store:  store,
		client: client,
		logger: logger,
	}
}

// RegisterWidget validates and stores a widget configuration.
func (s *Service) RegisterWidget(ctx context.Context, name string, cfg models.RawWidgetConfig) (*models.WidgetRecord, error) {
	// Resolution is run for validation only; the raw configuration is what
	// gets stored and is re-resolved on every render.
	if _, err := ResolveConfig(cfg); err != nil {
		return nil, err
	}

	now := time.Now()
	record := &models.WidgetRecord{
		ID:        uuid.New().String(),
		Name:      name,
		Config:    cfg,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Put(ctx, record); err != nil {
		return nil, fmt.Errorf("store widget: %w", err)
	}

	s.logger.Info().
		Str("widget", record.ID).
		Str("name", name).
		Str("layout", cfg.Layout).
		Msg("Widget registered")

	return record, nil
}

// GetWidget retrieves a registered widget by ID.
func (s *Service) GetWidget(ctx context.Context, id string) (*models.WidgetRecord, error) {
	return s.store.Get(ctx, id)
}

// ListWidgets retrieves all registered widgets.
func (s *Service) ListWidgets(ctx context.Context) ([]*models.WidgetRecord, error) {
	return s.store.List(ctx)
}

// DeleteWidget removes a registered widget.
func (s *Service) DeleteWidget(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("widget", id).Msg("Widget deleted")
	return nil
}

// mount resolves the stored configuration and runs one acquisition to
// completion (or ctx cancellation).
func (s *Service) mount(ctx context.Context, id string) (*Mount, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cfg, err := ResolveConfig(record.Config)
	if err != nil {
		return nil, err
	}

	m := NewMount(cfg, NewSource(s.client, s.logger), s.logger)
	m.Await(ctx)
	return m, nil
}

// RenderWidget mounts the widget and runs one render dispatch.
func (s *Service) RenderWidget(ctx context.Context, id string, page models.PageContext) (*models.RenderResult, error) {
	m, err := s.mount(ctx, id)
	if err != nil {
		return nil, err
	}
	defer m.Teardown()

	return m.Render(page), nil
}

// ResolveWidget mounts the widget and returns the resolved aggregate state.
func (s *Service) ResolveWidget(ctx context.Context, id string) (*models.ResolvedReviews, error) {
	m, err := s.mount(ctx, id)
	if err != nil {
		return nil, err
	}
	defer m.Teardown()

	resolved, ok := m.Resolved()
	if !ok {
		if acqErr := m.Err(); acqErr != nil {
			return nil, acqErr
		}
		return nil, models.ErrAcquisitionFailed
	}
	return resolved, nil
}

// Ensure Service implements WidgetService
var _ interfaces.WidgetService = (*Service)(nil)
