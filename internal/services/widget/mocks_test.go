package widget

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// mockFeaturableClient implements interfaces.FeaturableClient with function
// fields, counting calls.
type mockFeaturableClient struct {
	getWidgetFn func(ctx context.Context, featurableID string) (*models.FeaturableWidget, error)
	calls       atomic.Int64
}

func (m *mockFeaturableClient) GetWidget(ctx context.Context, featurableID string) (*models.FeaturableWidget, error) {
	m.calls.Add(1)
	if m.getWidgetFn != nil {
		return m.getWidgetFn(ctx, featurableID)
	}
	return nil, fmt.Errorf("no widget %q", featurableID)
}

// mockWidgetStore implements interfaces.WidgetStore in memory.
type mockWidgetStore struct {
	records map[string]*models.WidgetRecord
}

func newMockWidgetStore() *mockWidgetStore {
	return &mockWidgetStore{records: make(map[string]*models.WidgetRecord)}
}

func (m *mockWidgetStore) Put(_ context.Context, record *models.WidgetRecord) error {
	m.records[record.ID] = record
	return nil
}

func (m *mockWidgetStore) Get(_ context.Context, id string) (*models.WidgetRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("widget %q not found", id)
	}
	return rec, nil
}

func (m *mockWidgetStore) List(_ context.Context) ([]*models.WidgetRecord, error) {
	out := make([]*models.WidgetRecord, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, nil
}

func (m *mockWidgetStore) Delete(_ context.Context, id string) error {
	if _, ok := m.records[id]; !ok {
		return fmt.Errorf("widget %q not found", id)
	}
	delete(m.records, id)
	return nil
}

func (m *mockWidgetStore) Close() error { return nil }

// --- fixture helpers ---

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func makeReviews(n int) []models.Review {
	reviews := make([]models.Review, n)
	for i := range reviews {
		reviews[i] = models.Review{
			Reviewer: models.Reviewer{
				DisplayName: fmt.Sprintf("Reviewer %d", i+1),
			},
			Comment:    fmt.Sprintf("Review number %d", i+1),
			StarRating: 1 + i%5,
			CreateTime: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, i),
		}
	}
	return reviews
}

func makeFetchedWidget(count int, rating float64) *models.FeaturableWidget {
	return &models.FeaturableWidget{
		Reviews:          makeReviews(3),
		ProfileURL:       "https://maps.google.com/?cid=42",
		TotalReviewCount: intPtr(count),
		AverageRating:    floatPtr(rating),
	}
}
