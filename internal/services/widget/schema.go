package widget

import (
	"encoding/json"
	"fmt"

	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// maxSchemaReviews caps the per-review entries in a structured-data document.
const maxSchemaReviews = 10

// schema.org entity shapes. Everything user-controlled passes through the
// JSON encoder, which escapes quotes and markup-significant characters, so a
// comment cannot terminate an enclosing value or inject markup into the
// embedding script block.
type schemaProduct struct {
	Context         string          `json:"@context"`
	Type            string          `json:"@type"`
	Name            string          `json:"name"`
	URL             string          `json:"url,omitempty"`
	Brand           schemaBrand     `json:"brand"`
	Description     string          `json:"description"`
	AggregateRating schemaAggregate `json:"aggregateRating"`
	Review          []schemaReview  `json:"review,omitempty"`
}

type schemaBrand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type schemaAggregate struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
	BestRating  int     `json:"bestRating"`
	WorstRating int     `json:"worstRating"`
}

type schemaReview struct {
	Type          string       `json:"@type"`
	ReviewBody    string       `json:"reviewBody"`
	DatePublished string       `json:"datePublished"`
	Author        schemaAuthor `json:"author"`
	ReviewRating  schemaRating `json:"reviewRating"`
}

type schemaAuthor struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type schemaRating struct {
	Type        string `json:"@type"`
	RatingValue int    `json:"ratingValue"`
}

// BuildStructuredData serializes the resolved data into a schema.org Product
// document. Callers must only invoke it when both aggregate figures are
// present. The serializer performs no I/O; page identity comes from the
// injected PageContext.
func BuildStructuredData(cfg *models.WidgetConfig, resolved *models.ResolvedReviews, page models.PageContext) ([]byte, error) {
	if !resolved.HasAggregates() {
		return nil, fmt.Errorf("structured data requires both aggregate figures")
	}

	name := cfg.ProductName
	if name == "" {
		name = page.Title
	}
	brand := cfg.BrandName
	if brand == "" {
		brand = page.Title
	}

	doc := schemaProduct{
		Context:     "https://schema.org",
		Type:        "Product",
		Name:        name,
		URL:         page.URL,
		Brand:       schemaBrand{Type: "Brand", Name: brand},
		Description: cfg.ProductDescription,
		AggregateRating: schemaAggregate{
			Type:        "AggregateRating",
			RatingValue: *resolved.AverageRating,
			ReviewCount: *resolved.TotalReviewCount,
			BestRating:  5,
			WorstRating: 1,
		},
	}

	filter := cfg.Filter
	if filter == nil {
		filter = NamedReviewers
	}

	for _, r := range resolved.Reviews {
		if !filter(r) {
			continue
		}
		doc.Review = append(doc.Review, schemaReview{
			Type:          "Review",
			ReviewBody:    r.Comment,
			DatePublished: r.CreateTime.Format("2006-01-02"),
			Author:        schemaAuthor{Type: "Person", Name: r.Reviewer.DisplayName},
			ReviewRating:  schemaRating{Type: "Rating", RatingValue: r.StarRating},
		})
		if len(doc.Review) == maxSchemaReviews {
			break
		}
	}

	return json.Marshal(doc)
}
