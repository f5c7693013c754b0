// Package render produces HTML for the widget layouts. It is presentational:
// it consumes the dispatcher's output and formats the raw values the core
// passes through untouched (dates, names, comment truncation).
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// anonymousName is shown when a reviewer is marked anonymous.
const anonymousName = "A Google user"

// DisplayName formats a reviewer's name per the configured display mode.
func DisplayName(mode models.NameDisplay, r models.Reviewer) string {
	if r.IsAnonymous || strings.TrimSpace(r.DisplayName) == "" {
		return anonymousName
	}

	parts := strings.Fields(r.DisplayName)
	if len(parts) == 1 || mode == models.NameDisplayFull {
		return strings.Join(parts, " ")
	}

	first, last := parts[0], parts[len(parts)-1]
	switch mode {
	case models.NameDisplayFirstAndLastInitials:
		return fmt.Sprintf("%c. %c.", firstRune(first), firstRune(last))
	case models.NameDisplayFirstNamesLastInitial:
		given := strings.Join(parts[:len(parts)-1], " ")
		return fmt.Sprintf("%s %c.", given, firstRune(last))
	default:
		return strings.Join(parts, " ")
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

// FormatDate formats a review timestamp per the configured display mode.
func FormatDate(mode models.DateDisplay, t, now time.Time) string {
	if mode == models.DateDisplayAbsolute {
		return t.Format("2 January 2006")
	}
	return RelativeDate(t, now)
}

// RelativeDate renders t relative to now ("3 weeks ago").
func RelativeDate(t, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 14:
		return "a week ago"
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 60:
		return "a month ago"
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	case days < 730:
		return "a year ago"
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}

// Truncate limits a comment to max characters, cutting on a rune boundary.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max]), " ") + "…"
}

// Stars renders a 1-5 rating as filled and empty star glyphs.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
