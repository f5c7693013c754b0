// Package models defines the data types shared across the review widget host
package models

import "time"

// Reviewer identifies the author of a review.
type Reviewer struct {
	DisplayName string `json:"displayName"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// Review is a single third-party review. The core never mutates a review; it
// only filters and truncates when building structured data.
type Review struct {
	Reviewer   Reviewer  `json:"reviewer"`
	Comment    string    `json:"comment"`
	StarRating int       `json:"starRating"` // 1-5
	CreateTime time.Time `json:"createTime"`
}

// ResolvedReviews is the aggregate state a mounted widget renders from.
// It starts from configuration-supplied values and is overwritten wholesale
// by a successful remote fetch, never merged field by field.
type ResolvedReviews struct {
	Reviews          []Review `json:"reviews"`
	ProfileURL       string   `json:"profileUrl,omitempty"`
	TotalReviewCount *int     `json:"totalReviewCount,omitempty"`
	AverageRating    *float64 `json:"averageRating,omitempty"`
}

// HasAggregates reports whether both aggregate figures are present.
// The badge layout and the structured-data serializer require both.
func (r *ResolvedReviews) HasAggregates() bool {
	return r != nil && r.TotalReviewCount != nil && r.AverageRating != nil
}

// FeaturableWidget is the payload of a successful widget lookup. Fields the
// response omitted stay nil so the badge guard can detect incomplete
// aggregates.
type FeaturableWidget struct {
	Reviews          []Review `json:"reviews"`
	ProfileURL       string   `json:"profileUrl"`
	TotalReviewCount *int     `json:"totalReviewCount"`
	AverageRating    *float64 `json:"averageRating"`
}
