package models

import "html/template"

// PageContext carries the hosting page's title and canonical URL. It is
// injected rather than read ambiently so structured-data output is
// deterministic under test.
type PageContext struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// RenderKind identifies which single output branch a render selected.
type RenderKind string

// Render kind constants.
const (
	RenderLoading  RenderKind = "loading"
	RenderError    RenderKind = "error"
	RenderCarousel RenderKind = "carousel"
	RenderBadge    RenderKind = "badge"
	RenderCustom   RenderKind = "custom"
)

// RenderResult is the dispatcher's output: exactly one kind, with the data
// the selected layout consumes. StructuredData is nil unless structured data
// is enabled and both aggregate figures are present; it accompanies the
// carousel and badge branches only.
type RenderResult struct {
	Kind           RenderKind
	Config         *WidgetConfig
	Resolved       *ResolvedReviews
	StructuredData []byte
	CustomHTML     template.HTML
}
