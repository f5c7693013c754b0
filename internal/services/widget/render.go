package widget

import (
	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// Render runs one render dispatch against the mount's current state and
// selects exactly one output. Loading short-circuits first, then Error
// (including the badge aggregate guard); otherwise dispatch is strictly on
// the layout discriminant.
func (m *Mount) Render(page models.PageContext) *models.RenderResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := m.cfg
	switch m.effectiveStateLocked() {
	case StateLoading:
		return &models.RenderResult{Kind: models.RenderLoading, Config: cfg}
	case StateError:
		return &models.RenderResult{Kind: models.RenderError, Config: cfg}
	}

	resolved := m.resolved
	result := &models.RenderResult{Config: cfg, Resolved: resolved}

	switch cfg.Layout {
	case models.LayoutCarousel:
		result.Kind = models.RenderCarousel
	case models.LayoutBadge:
		result.Kind = models.RenderBadge
	case models.LayoutCustom:
		result.Kind = models.RenderCustom
		result.CustomHTML = cfg.Renderer(resolved.Reviews)
		return result
	default:
		// Unreachable for resolver-produced configurations.
		m.logger.Warn().Str("layout", string(cfg.Layout)).Msg("Unknown layout at dispatch")
		return &models.RenderResult{Kind: models.RenderError, Config: cfg}
	}

	// The structured-data block accompanies the chosen layout, it never
	// replaces it.
	if cfg.StructuredData && resolved.HasAggregates() {
		sd, err := BuildStructuredData(cfg, resolved, page)
		if err != nil {
			m.logger.Warn().Err(err).Str("mount", m.id).Msg("Structured data serialization failed")
		} else {
			result.StructuredData = sd
		}
	}

	return result
}
