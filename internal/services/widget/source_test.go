package widget

import (
	"context"
	"errors"
	"testing"

	"github.com/evertonthomazi/go-google-reviews/internal/common"
	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

func TestSource_ResolveSupplied(t *testing.T) {
	reviews := makeReviews(4)
	cfg := &models.WidgetConfig{
		Source:           models.SourceSupplied,
		Reviews:          reviews,
		ProfileURL:       "https://maps.google.com/?cid=7",
		TotalReviewCount: intPtr(4),
		AverageRating:    floatPtr(4.2),
	}

	client := &mockFeaturableClient{}
	src := NewSource(client, common.NewSilentLogger())

	resolved, err := src.Resolve(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(resolved.Reviews) != 4 {
		t.Fatalf("expected 4 reviews, got %d", len(resolved.Reviews))
	}
	// Supplied mode preserves the caller's order.
	for i, rv := range resolved.Reviews {
		if rv.Comment != reviews[i].Comment {
			t.Errorf("review %d reordered: %q", i, rv.Comment)
		}
	}
	if resolved.ProfileURL != cfg.ProfileURL {
		t.Errorf("profile URL not carried over: %q", resolved.ProfileURL)
	}
	if !resolved.HasAggregates() {
		t.Error("expected aggregates present")
	}
	if client.calls.Load() != 0 {
		t.Errorf("supplied mode must not fetch, got %d calls", client.calls.Load())
	}
}

func TestSource_ResolveRemote(t *testing.T) {
	client := &mockFeaturableClient{
		getWidgetFn: func(_ context.Context, featurableID string) (*models.FeaturableWidget, error) {
			if featurableID != "abc123" {
				t.Errorf("unexpected featurable id: %q", featurableID)
			}
			return makeFetchedWidget(27, 4.6), nil
		},
	}
	src := NewSource(client, common.NewSilentLogger())

	cfg := &models.WidgetConfig{Source: models.SourceRemote, FeaturableID: "abc123"}
	resolved, err := src.Resolve(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(resolved.Reviews) != 3 {
		t.Errorf("expected 3 reviews, got %d", len(resolved.Reviews))
	}
	if resolved.TotalReviewCount == nil || *resolved.TotalReviewCount != 27 {
		t.Errorf("totalReviewCount not mapped: %v", resolved.TotalReviewCount)
	}
	if resolved.AverageRating == nil || *resolved.AverageRating != 4.6 {
		t.Errorf("averageRating not mapped: %v", resolved.AverageRating)
	}
	if client.calls.Load() != 1 {
		t.Errorf("expected exactly one fetch, got %d", client.calls.Load())
	}
}

func TestSource_ResolveRemoteFailure(t *testing.T) {
	fetchErr := errors.New("upstream unavailable")
	client := &mockFeaturableClient{
		getWidgetFn: func(context.Context, string) (*models.FeaturableWidget, error) {
			return nil, fetchErr
		},
	}
	src := NewSource(client, common.NewSilentLogger())

	cfg := &models.WidgetConfig{Source: models.SourceRemote, FeaturableID: "abc123"}
	_, err := src.Resolve(context.Background(), cfg)
	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}

func TestSource_ResolveRemoteWithoutClient(t *testing.T) {
	src := NewSource(nil, common.NewSilentLogger())
	cfg := &models.WidgetConfig{Source: models.SourceRemote, FeaturableID: "abc123"}
	if _, err := src.Resolve(context.Background(), cfg); err == nil {
		t.Fatal("expected an error without a client")
	}
}
