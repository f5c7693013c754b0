package render

import (
	"testing"
	"time"

	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

func TestDisplayName(t *testing.T) {
	cases := []struct {
		name string
		mode models.NameDisplay
		in   models.Reviewer
		want string
	}{
		{"full", models.NameDisplayFull, models.Reviewer{DisplayName: "Jane van Dyke"}, "Jane van Dyke"},
		{"initials", models.NameDisplayFirstAndLastInitials, models.Reviewer{DisplayName: "Jane Doe"}, "J. D."},
		{"initials multiword", models.NameDisplayFirstAndLastInitials, models.Reviewer{DisplayName: "Jane van Dyke"}, "J. D."},
		{"first names last initial", models.NameDisplayFirstNamesLastInitial, models.Reviewer{DisplayName: "Jane van Dyke"}, "Jane van D."},
		{"single word", models.NameDisplayFirstAndLastInitials, models.Reviewer{DisplayName: "Madonna"}, "Madonna"},
		{"anonymous flag", models.NameDisplayFull, models.Reviewer{DisplayName: "Jane Doe", IsAnonymous: true}, "A Google user"},
		{"empty name", models.NameDisplayFull, models.Reviewer{}, "A Google user"},
		{"whitespace name", models.NameDisplayFull, models.Reviewer{DisplayName: "   "}, "A Google user"},
		{"unicode initials", models.NameDisplayFirstAndLastInitials, models.Reviewer{DisplayName: "Åsa Öberg"}, "Å. Ö."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DisplayName(tc.mode, tc.in); got != tc.want {
				t.Errorf("DisplayName(%s, %q) = %q, want %q", tc.mode, tc.in.DisplayName, got, tc.want)
			}
		})
	}
}

func TestRelativeDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		daysAgo int
		want    string
	}{
		{0, "today"},
		{1, "yesterday"},
		{3, "3 days ago"},
		{8, "a week ago"},
		{21, "3 weeks ago"},
		{45, "a month ago"},
		{90, "3 months ago"},
		{400, "a year ago"},
		{1100, "3 years ago"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			got := RelativeDate(now.AddDate(0, 0, -tc.daysAgo), now)
			if got != tc.want {
				t.Errorf("RelativeDate(-%dd) = %q, want %q", tc.daysAgo, got, tc.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	ts := time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)

	if got := FormatDate(models.DateDisplayAbsolute, ts, now); got != "12 June 2024" {
		t.Errorf("absolute = %q", got)
	}
	if got := FormatDate(models.DateDisplayRelative, ts, now); got != "3 days ago" {
		t.Errorf("relative = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 5, "hello…"},
		{"trailing space trimmed", "hello world", 6, "hello…"},
		{"zero is unlimited", "hello world", 0, "hello world"},
		{"rune boundary", "héllo wörld", 7, "héllo w…"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.in, tc.max); got != tc.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestStars(t *testing.T) {
	cases := []struct {
		rating int
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{-1, "☆☆☆☆☆"},
		{9, "★★★★★"},
	}
	for _, tc := range cases {
		if got := Stars(tc.rating); got != tc.want {
			t.Errorf("Stars(%d) = %q, want %q", tc.rating, got, tc.want)
		}
	}
}
