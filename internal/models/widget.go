package models

import (
	"html/template"
	"time"
)

// SourceMode is the data-source discriminant of a widget configuration.
type SourceMode string

// Source mode constants.
const (
	SourceSupplied SourceMode = "supplied" // reviews provided in the configuration
	SourceRemote   SourceMode = "remote"   // reviews fetched from the widget API
)

// Layout selects the presentation strategy for a widget.
type Layout string

// Layout constants.
const (
	LayoutCarousel Layout = "carousel"
	LayoutBadge    Layout = "badge"
	LayoutCustom   Layout = "custom"
)

// NameDisplay controls how reviewer names are shown.
type NameDisplay string

// Name display constants.
const (
	NameDisplayFull                  NameDisplay = "fullNames"
	NameDisplayFirstAndLastInitials  NameDisplay = "firstAndLastInitials"
	NameDisplayFirstNamesLastInitial NameDisplay = "firstNamesWithLastInitials"
)

// LogoVariant controls which Google logo mark the layout shows.
type LogoVariant string

// Logo variant constants.
const (
	LogoVariantFull LogoVariant = "full"
	LogoVariantIcon LogoVariant = "icon"
)

// DateDisplay controls how review timestamps are shown.
type DateDisplay string

// Date display constants.
const (
	DateDisplayRelative DateDisplay = "relative"
	DateDisplayAbsolute DateDisplay = "absolute"
)

// ReviewVariant controls the per-review card style.
type ReviewVariant string

// Review variant constants.
const (
	ReviewVariantCard        ReviewVariant = "card"
	ReviewVariantTestimonial ReviewVariant = "testimonial"
)

// Theme controls the light/dark styling of a layout.
type Theme string

// Theme constants.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// CustomRenderer produces markup for the custom layout. It is invoked with
// exactly the resolved review sequence and nothing else.
type CustomRenderer func(reviews []Review) template.HTML

// StructuredDataFilter selects which reviews appear in structured data.
type StructuredDataFilter func(Review) bool

// RawWidgetConfig is the inbound widget configuration as supplied by a
// caller, before validation and default resolution. Exactly one of Reviews
// and FeaturableID must be set. Pointer fields distinguish "omitted" from
// zero values.
type RawWidgetConfig struct {
	FeaturableID string   `json:"featurableId,omitempty"`
	Reviews      []Review `json:"reviews,omitempty"`

	Layout        string `json:"layout,omitempty"`
	NameDisplay   string `json:"nameDisplay,omitempty"`
	LogoVariant   string `json:"logoVariant,omitempty"`
	DateDisplay   string `json:"dateDisplay,omitempty"`
	ReviewVariant string `json:"reviewVariant,omitempty"`
	Theme         string `json:"theme,omitempty"`

	MaxCharacters    *int  `json:"maxCharacters,omitempty"`
	MaxItems         *int  `json:"maxItems,omitempty"`
	CarouselSpeed    *int  `json:"carouselSpeed,omitempty"`
	CarouselAutoplay *bool `json:"carouselAutoplay,omitempty"`
	StructuredData   *bool `json:"structuredData,omitempty"`

	BrandName          string `json:"brandName,omitempty"`
	ProductName        string `json:"productName,omitempty"`
	ProductDescription string `json:"productDescription,omitempty"`
	ProfileURL         string `json:"profileUrl,omitempty"`

	// TotalReviewCount is a float here because it arrives as a JSON number;
	// resolution rejects negative or fractional values.
	TotalReviewCount *float64 `json:"totalReviewCount,omitempty"`
	AverageRating    *float64 `json:"averageRating,omitempty"`

	// Renderer is only settable by in-process callers; it cannot be
	// registered through the REST surface.
	Renderer CustomRenderer `json:"-"`

	// Filter overrides the default structured-data review filter
	// (named reviewers only).
	Filter StructuredDataFilter `json:"-"`
}

// WidgetConfig is the canonical widget configuration: validated, with every
// optional field defaulted. Produced once per mount by the resolver, never
// per render.
type WidgetConfig struct {
	Source       SourceMode
	FeaturableID string
	Reviews      []Review

	Layout        Layout
	NameDisplay   NameDisplay
	LogoVariant   LogoVariant
	DateDisplay   DateDisplay
	ReviewVariant ReviewVariant
	Theme         Theme

	MaxCharacters    int
	MaxItems         int
	CarouselSpeed    int
	CarouselAutoplay bool
	StructuredData   bool

	BrandName          string
	ProductName        string
	ProductDescription string
	ProfileURL         string

	TotalReviewCount *int
	AverageRating    *float64

	Renderer CustomRenderer
	Filter   StructuredDataFilter
}

// WidgetRecord is a registered widget configuration persisted in the widget
// store. The raw configuration is kept as registered; it is re-resolved on
// every render.
type WidgetRecord struct {
	ID        string          `json:"id" badgerhold:"key"`
	Name      string          `json:"name"`
	Config    RawWidgetConfig `json:"config"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
