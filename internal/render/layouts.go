package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// layoutTemplates holds every layout fragment. The placeholders carry no
// data; the carousel and badge receive prepared view models so all
// formatting decisions stay in this package.
const layoutTemplates = `
{{define "loading"}}<div class="grw grw-loading" aria-busy="true"><span>Loading reviews…</span></div>{{end}}

{{define "error"}}<div class="grw grw-error" role="status"><span>Reviews are currently unavailable.</span></div>{{end}}

{{define "attribution"}}<a class="grw-attribution grw-logo-{{.Logo}}"{{if .ProfileURL}} href="{{.ProfileURL}}"{{end}} rel="nofollow noopener">Google Reviews</a>{{end}}

{{define "carousel"}}<div class="grw grw-carousel grw-theme-{{.Theme}}" data-autoplay="{{.Autoplay}}" data-speed="{{.Speed}}" data-items="{{.MaxItems}}">
{{- range .Reviews}}
<div class="grw-review grw-{{$.Variant}}"><div class="grw-stars" aria-label="{{.Stars}} out of 5 stars">{{.StarGlyphs}}</div><p class="grw-comment">{{.Comment}}</p><footer class="grw-meta"><span class="grw-name">{{.Name}}</span><time class="grw-date">{{.Date}}</time></footer></div>
{{- end}}
{{template "attribution" .}}</div>{{end}}

{{define "badge"}}<div class="grw grw-badge grw-theme-{{.Theme}}"><span class="grw-average">{{.Average}}</span><span class="grw-stars" aria-label="rated {{.Average}} out of 5">{{.StarGlyphs}}</span><span class="grw-count">{{.Total}} reviews</span>{{template "attribution" .}}</div>{{end}}
`

type reviewView struct {
	Name       string
	Comment    string
	Date       string
	Stars      int
	StarGlyphs string
}

type carouselView struct {
	Theme    models.Theme
	Variant  models.ReviewVariant
	Autoplay bool
	Speed    int
	MaxItems int
	Reviews  []reviewView
	attributionView
}

type badgeView struct {
	Theme      models.Theme
	Average    string
	StarGlyphs string
	Total      int
	attributionView
}

type attributionView struct {
	Logo       models.LogoVariant
	ProfileURL string
}

// Renderer turns dispatch results into HTML fragments.
type Renderer struct {
	tmpl *template.Template
	now  func() time.Time
}

// NewRenderer parses the layout templates.
func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("layouts").Parse(layoutTemplates)),
		now:  time.Now,
	}
}

// Render produces the HTML fragment for a dispatch result: placeholder,
// layout markup, or custom-renderer passthrough, with the structured-data
// script block appended when present.
func (r *Renderer) Render(result *models.RenderResult) (template.HTML, error) {
	var b strings.Builder

	switch result.Kind {
	case models.RenderLoading:
		if err := r.tmpl.ExecuteTemplate(&b, "loading", nil); err != nil {
			return "", err
		}
	case models.RenderError:
		if err := r.tmpl.ExecuteTemplate(&b, "error", nil); err != nil {
			return "", err
		}
	case models.RenderCarousel:
		if err := r.tmpl.ExecuteTemplate(&b, "carousel", r.carouselView(result)); err != nil {
			return "", err
		}
	case models.RenderBadge:
		if err := r.tmpl.ExecuteTemplate(&b, "badge", r.badgeView(result)); err != nil {
			return "", err
		}
	case models.RenderCustom:
		b.WriteString(string(result.CustomHTML))
	default:
		return "", fmt.Errorf("unknown render kind %q", result.Kind)
	}

	// StructuredData comes from the JSON encoder with markup-significant
	// characters escaped, so it embeds safely in a script element.
	if len(result.StructuredData) > 0 {
		b.WriteString(`<script type="application/ld+json">`)
		b.Write(result.StructuredData)
		b.WriteString(`</script>`)
	}

	return template.HTML(b.String()), nil
}

func (r *Renderer) carouselView(result *models.RenderResult) carouselView {
	cfg := result.Config
	now := r.now()

	reviews := make([]reviewView, len(result.Resolved.Reviews))
	for i, rev := range result.Resolved.Reviews {
		reviews[i] = reviewView{
			Name:       DisplayName(cfg.NameDisplay, rev.Reviewer),
			Comment:    Truncate(rev.Comment, cfg.MaxCharacters),
			Date:       FormatDate(cfg.DateDisplay, rev.CreateTime, now),
			Stars:      rev.StarRating,
			StarGlyphs: Stars(rev.StarRating),
		}
	}

	return carouselView{
		Theme:    cfg.Theme,
		Variant:  cfg.ReviewVariant,
		Autoplay: cfg.CarouselAutoplay,
		Speed:    cfg.CarouselSpeed,
		MaxItems: cfg.MaxItems,
		Reviews:  reviews,
		attributionView: attributionView{
			Logo:       cfg.LogoVariant,
			ProfileURL: result.Resolved.ProfileURL,
		},
	}
}

func (r *Renderer) badgeView(result *models.RenderResult) badgeView {
	cfg := result.Config
	resolved := result.Resolved

	// The dispatcher's badge guard guarantees both aggregates are present.
	avg := *resolved.AverageRating
	rounded := int(avg + 0.5)

	return badgeView{
		Theme:      cfg.Theme,
		Average:    strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", avg), "0"), "."),
		StarGlyphs: Stars(rounded),
		Total:      *resolved.TotalReviewCount,
		attributionView: attributionView{
			Logo:       cfg.LogoVariant,
			ProfileURL: resolved.ProfileURL,
		},
	}
}
