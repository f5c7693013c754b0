package widget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evertonthomazi/go-google-reviews/internal/common"
	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

func suppliedConfig(t *testing.T, n int) *models.WidgetConfig {
	t.Helper()
	cfg, err := ResolveConfig(models.RawWidgetConfig{Reviews: makeReviews(n)})
	if err != nil {
		t.Fatalf("ResolveConfig failed: %v", err)
	}
	return cfg
}

func remoteConfig(t *testing.T, featurableID string) *models.WidgetConfig {
	t.Helper()
	cfg, err := ResolveConfig(models.RawWidgetConfig{FeaturableID: featurableID})
	if err != nil {
		t.Fatalf("ResolveConfig failed: %v", err)
	}
	return cfg
}

func TestMount_SuppliedIsReadySynchronously(t *testing.T) {
	client := &mockFeaturableClient{}
	src := NewSource(client, common.NewSilentLogger())

	m := NewMount(suppliedConfig(t, 2), src, common.NewSilentLogger())

	if m.State() != StateReady {
		t.Fatalf("expected Ready, got %s", m.State())
	}
	resolved, ok := m.Resolved()
	if !ok || len(resolved.Reviews) != 2 {
		t.Fatalf("resolved data missing: ok=%v", ok)
	}
	if client.calls.Load() != 0 {
		t.Errorf("supplied mount must not fetch, got %d calls", client.calls.Load())
	}
}

func TestMount_RemoteLoadingToReady(t *testing.T) {
	client := &mockFeaturableClient{
		getWidgetFn: func(context.Context, string) (*models.FeaturableWidget, error) {
			return makeFetchedWidget(12, 4.1), nil
		},
	}
	src := NewSource(client, common.NewSilentLogger())

	m := NewMount(remoteConfig(t, "abc"), src, common.NewSilentLogger())
	if m.State() != StateLoading {
		t.Fatalf("expected Loading before Start, got %s", m.State())
	}

	state := m.Await(context.Background())
	if state != StateReady {
		t.Fatalf("expected Ready, got %s", state)
	}
	resolved, ok := m.Resolved()
	if !ok || resolved.TotalReviewCount == nil || *resolved.TotalReviewCount != 12 {
		t.Fatalf("resolved data missing after Await: ok=%v", ok)
	}
}

func TestMount_RemoteLoadingToError(t *testing.T) {
	client := &mockFeaturableClient{
		getWidgetFn: func(context.Context, string) (*models.FeaturableWidget, error) {
			return nil, errors.New("boom")
		},
	}
	src := NewSource(client, common.NewSilentLogger())

	m := NewMount(remoteConfig(t, "abc"), src, common.NewSilentLogger())
	state := m.Await(context.Background())
	if state != StateError {
		t.Fatalf("expected Error, got %s", state)
	}
	if !errors.Is(m.Err(), models.ErrAcquisitionFailed) {
		t.Fatalf("expected ErrAcquisitionFailed, got %v", m.Err())
	}
	if _, ok := m.Resolved(); ok {
		t.Error("Resolved must not report data in Error state")
	}
}

func TestMount_StartIsIdempotent(t *testing.T) {
	client := &mockFeaturableClient{
		getWidgetFn: func(context.Context, string) (*models.FeaturableWidget, error) {
			return makeFetchedWidget(5, 3.9), nil
		},
	}
	src := NewSource(client, common.NewSilentLogger())

	m := NewMount(remoteConfig(t, "abc"), src, common.NewSilentLogger())
	ctx := context.Background()
	m.Start(ctx)
	m.Start(ctx)
	m.Await(ctx)
	m.Start(ctx)

	// Reconfiguring to the same featurableId keeps the acquisition too.
	m.Reconfigure(remoteConfig(t, "abc"))
	m.Await(ctx)

	if got := client.calls.Load(); got != 1 {
		t.Fatalf("expected exactly one fetch, got %d", got)
	}
}

func TestMount_ReconfigureNewIDRefetches(t *testing.T) {
	client := &mockFeaturableClient{
		getWidgetFn: func(_ context.Context, featurableID string) (*models.FeaturableWidget, error) {
			w := makeFetchedWidget(1, 5)
			w.ProfileURL = "https://maps.google.com/?q=" + featurableID
			return w, nil
		},
	}
	src := NewSource(client, common.NewSilentLogger())

	m := NewMount(remoteConfig(t, "aaa"), src, common.NewSilentLogger())
	ctx := context.Background()
	m.Await(ctx)

	m.Reconfigure(remoteConfig(t, "bbb"))
	if m.State() != StateLoading {
		t.Fatalf("expected Loading after reconfigure, got %s", m.State())
	}
	m.Await(ctx)

	resolved, ok := m.Resolved()
	if !ok {
		t.Fatal("expected resolved data")
	}
	if resolved.ProfileURL != "https://maps.google.com/?q=bbb" {
		t.Errorf("expected data for new id, got %q", resolved.ProfileURL)
	}
	if got := client.calls.Load(); got != 2 {
		t.Errorf("expected two fetches, got %d", got)
	}
}

func TestMount_StaleResponseSuppressed(t *testing.T) {
	release := make(chan struct{})
	client := &mockFeaturableClient{
		getWidgetFn: func(_ context.Context, featurableID string) (*models.FeaturableWidget, error) {
			if featurableID == "aaa" {
				<-release // hold the first fetch until after reconfiguration
			}
			w := makeFetchedWidget(1, 5)
			w.ProfileURL = "https://maps.google.com/?q=" + featurableID
			return w, nil
		},
	}
	src := NewSource(client, common.NewSilentLogger())

	m := NewMount(remoteConfig(t, "aaa"), src, common.NewSilentLogger())
	ctx := context.Background()
	m.Start(ctx)

	m.Reconfigure(remoteConfig(t, "bbb"))
	if state := m.Await(ctx); state != StateReady {
		t.Fatalf("expected Ready for bbb, got %s", state)
	}

	// Let the superseded fetch finish; its result must not overwrite bbb.
	close(release)
	time.Sleep(20 * time.Millisecond)

	resolved, ok := m.Resolved()
	if !ok {
		t.Fatal("expected resolved data")
	}
	if resolved.ProfileURL != "https://maps.google.com/?q=bbb" {
		t.Fatalf("stale aaa result overwrote bbb: %q", resolved.ProfileURL)
	}
}

func TestMount_TeardownDropsInflightResult(t *testing.T) {
	release := make(chan struct{})
	client := &mockFeaturableClient{
		getWidgetFn: func(context.Context, string) (*models.FeaturableWidget, error) {
			<-release
			return makeFetchedWidget(1, 5), nil
		},
	}
	src := NewSource(client, common.NewSilentLogger())

	m := NewMount(remoteConfig(t, "abc"), src, common.NewSilentLogger())
	ctx := context.Background()
	m.Start(ctx)
	m.Teardown()

	close(release)
	time.Sleep(20 * time.Millisecond)

	if _, ok := m.Resolved(); ok {
		t.Error("torn-down mount must not expose resolved data")
	}
	// Teardown also wakes waiters.
	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	m.Await(waitCtx)
	if waitCtx.Err() != nil {
		t.Error("Await blocked past teardown")
	}
}

func TestMount_BadgeWithoutAggregatesIsError(t *testing.T) {
	raw := models.RawWidgetConfig{Reviews: makeReviews(2), Layout: "badge"}
	cfg, err := ResolveConfig(raw)
	if err != nil {
		t.Fatalf("ResolveConfig failed: %v", err)
	}

	src := NewSource(&mockFeaturableClient{}, common.NewSilentLogger())
	m := NewMount(cfg, src, common.NewSilentLogger())

	if m.State() != StateReady {
		t.Fatalf("raw state should be Ready, got %s", m.State())
	}
	if m.EffectiveState() != StateError {
		t.Fatalf("badge without aggregates should present as Error, got %s", m.EffectiveState())
	}

	// With both figures the badge is renderable.
	raw.TotalReviewCount = floatPtr(9)
	raw.AverageRating = floatPtr(4.4)
	cfg, err = ResolveConfig(raw)
	if err != nil {
		t.Fatalf("ResolveConfig failed: %v", err)
	}
	m.Reconfigure(cfg)
	if m.EffectiveState() != StateReady {
		t.Fatalf("badge with aggregates should be Ready, got %s", m.EffectiveState())
	}
}

func TestMount_AwaitHonorsContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	client := &mockFeaturableClient{
		getWidgetFn: func(context.Context, string) (*models.FeaturableWidget, error) {
			<-release // outlives the Await deadline
			return nil, errors.New("too late")
		},
	}
	src := NewSource(client, common.NewSilentLogger())
	m := NewMount(remoteConfig(t, "abc"), src, common.NewSilentLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if state := m.Await(ctx); state != StateLoading {
		t.Fatalf("expected Loading on context expiry, got %s", state)
	}
}
