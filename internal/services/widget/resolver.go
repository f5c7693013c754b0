// Package widget implements the data-acquisition and rendering-orchestration
// core: configuration resolution, review sourcing, the mount lifecycle and
// render dispatch. Layout markup itself lives in internal/render.
package widget

import (
	"math"

	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// Defaults applied when a raw configuration omits a field.
const (
	DefaultLayout        = models.LayoutCarousel
	DefaultNameDisplay   = models.NameDisplayFirstAndLastInitials
	DefaultLogoVariant   = models.LogoVariantIcon
	DefaultDateDisplay   = models.DateDisplayRelative
	DefaultReviewVariant = models.ReviewVariantCard
	DefaultTheme         = models.ThemeLight
	DefaultMaxCharacters = 200
	DefaultCarouselSpeed = 3000
	DefaultMaxItems      = 3
)

// NamedReviewers is the default structured-data filter: only reviews from
// reviewers that are not anonymous are published.
func NamedReviewers(r models.Review) bool {
	return !r.Reviewer.IsAnonymous
}

// ResolveConfig validates a raw widget configuration and applies the default
// table, producing the canonical configuration every other component
// consumes. It is a pure transformation: validation failures are raised here,
// before any rendering attempt, never deferred into the mount lifecycle.
func ResolveConfig(raw models.RawWidgetConfig) (*models.WidgetConfig, error) {
	supplied := raw.Reviews != nil
	remote := raw.FeaturableID != ""

	if supplied == remote {
		return nil, &models.InvalidParameterError{
			Field:  "reviews/featurableId",
			Reason: "exactly one of reviews or featurableId must be set",
		}
	}

	cfg := &models.WidgetConfig{
		FeaturableID: raw.FeaturableID,
		Reviews:      raw.Reviews,

		Layout:        DefaultLayout,
		NameDisplay:   DefaultNameDisplay,
		LogoVariant:   DefaultLogoVariant,
		DateDisplay:   DefaultDateDisplay,
		ReviewVariant: DefaultReviewVariant,
		Theme:         DefaultTheme,

		MaxCharacters:    DefaultMaxCharacters,
		MaxItems:         DefaultMaxItems,
		CarouselSpeed:    DefaultCarouselSpeed,
		CarouselAutoplay: true,
		StructuredData:   false,

		BrandName:          raw.BrandName,
		ProductName:        raw.ProductName,
		ProductDescription: raw.ProductDescription,
		ProfileURL:         raw.ProfileURL,

		Renderer: raw.Renderer,
		Filter:   raw.Filter,
	}
	cfg.Source = models.SourceSupplied
	if remote {
		cfg.Source = models.SourceRemote
	}
	if cfg.Filter == nil {
		cfg.Filter = NamedReviewers
	}

	if err := resolveEnums(raw, cfg); err != nil {
		return nil, err
	}

	if raw.MaxCharacters != nil {
		cfg.MaxCharacters = *raw.MaxCharacters
	}
	if raw.MaxItems != nil {
		cfg.MaxItems = *raw.MaxItems
	}
	if raw.CarouselSpeed != nil {
		cfg.CarouselSpeed = *raw.CarouselSpeed
	}
	if raw.CarouselAutoplay != nil {
		cfg.CarouselAutoplay = *raw.CarouselAutoplay
	}
	if raw.StructuredData != nil {
		cfg.StructuredData = *raw.StructuredData
	}

	if raw.TotalReviewCount != nil {
		v := *raw.TotalReviewCount
		if v < 0 || v != math.Trunc(v) {
			return nil, &models.InvalidParameterError{
				Field:  "totalReviewCount",
				Reason: "must be a non-negative integer",
			}
		}
		n := int(v)
		cfg.TotalReviewCount = &n
	}

	if raw.AverageRating != nil {
		v := *raw.AverageRating
		if v < 1 || v > 5 {
			return nil, &models.InvalidParameterError{
				Field:  "averageRating",
				Reason: "must be within [1, 5]",
			}
		}
		cfg.AverageRating = &v
	}

	// Aggregate figures are mandatory for structured data unless the remote
	// fetch will supply them.
	if cfg.StructuredData && cfg.Source == models.SourceSupplied {
		if cfg.TotalReviewCount == nil || cfg.AverageRating == nil {
			return nil, &models.InvalidParameterError{
				Field:  "structuredData",
				Reason: "totalReviewCount and averageRating are required unless fetched remotely",
			}
		}
	}

	if cfg.Layout == models.LayoutCustom && cfg.Renderer == nil {
		return nil, &models.InvalidParameterError{
			Field:  "layout",
			Reason: "custom layout requires an in-process renderer",
		}
	}

	return cfg, nil
}

func resolveEnums(raw models.RawWidgetConfig, cfg *models.WidgetConfig) error {
	if raw.Layout != "" {
		switch l := models.Layout(raw.Layout); l {
		case models.LayoutCarousel, models.LayoutBadge, models.LayoutCustom:
			cfg.Layout = l
		default:
			return &models.InvalidParameterError{Field: "layout", Reason: "unknown layout " + raw.Layout}
		}
	}
	if raw.NameDisplay != "" {
		switch n := models.NameDisplay(raw.NameDisplay); n {
		case models.NameDisplayFull, models.NameDisplayFirstAndLastInitials, models.NameDisplayFirstNamesLastInitial:
			cfg.NameDisplay = n
		default:
			return &models.InvalidParameterError{Field: "nameDisplay", Reason: "unknown name display " + raw.NameDisplay}
		}
	}
	if raw.LogoVariant != "" {
		switch v := models.LogoVariant(raw.LogoVariant); v {
		case models.LogoVariantFull, models.LogoVariantIcon:
			cfg.LogoVariant = v
		default:
			return &models.InvalidParameterError{Field: "logoVariant", Reason: "unknown logo variant " + raw.LogoVariant}
		}
	}
	if raw.DateDisplay != "" {
		switch d := models.DateDisplay(raw.DateDisplay); d {
		case models.DateDisplayRelative, models.DateDisplayAbsolute:
			cfg.DateDisplay = d
		default:
			return &models.InvalidParameterError{Field: "dateDisplay", Reason: "unknown date display " + raw.DateDisplay}
		}
	}
	if raw.ReviewVariant != "" {
		switch v := models.ReviewVariant(raw.ReviewVariant); v {
		case models.ReviewVariantCard, models.ReviewVariantTestimonial:
			cfg.ReviewVariant = v
		default:
			return &models.InvalidParameterError{Field: "reviewVariant", Reason: "unknown review variant " + raw.ReviewVariant}
		}
	}
	if raw.Theme != "" {
		switch t := models.Theme(raw.Theme); t {
		case models.ThemeLight, models.ThemeDark:
			cfg.Theme = t
		default:
			return &models.InvalidParameterError{Field: "theme", Reason: "unknown theme " + raw.Theme}
		}
	}
	return nil
}
