// Package category models the closed set of article categories and decides
// which one a document's metadata describes.
package category

import (
	"errors"
	"fmt"
	"strings"
)

// Category labels an article with one of the site's fixed sections.
type Category string

const (
	Football Category = "football"
	MotoGP   Category = "motogp"
	Gaming   Category = "gaming"
	Movies   Category = "movies"
	TVShows  Category = "tvshows"
	Books    Category = "books"
	Travel   Category = "travel"
)

// Default is returned by Infer when no distinguishing field is present.
const Default = Football

// ErrUnknownCategory indicates a label outside the closed set.
var ErrUnknownCategory = errors.New("category: unknown category")

var ordered = []Category{Football, MotoGP, Gaming, Movies, TVShows, Books, Travel}

var emojis = map[Category]string{
	Football: "⚽",
	MotoGP:   "🏍️",
	Gaming:   "🎮",
	Movies:   "🎬",
	TVShows:  "📺",
	Books:    "📚",
	Travel:   "✈️",
}

// All returns every category in listing order.
func All() []Category {
	out := make([]Category, len(ordered))
	copy(out, ordered)
	return out
}

// Parse maps a label to a Category, ignoring case and surrounding space.
func Parse(value string) (Category, error) {
	candidate := Category(strings.ToLower(strings.TrimSpace(value)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, value)
}

// Valid reports whether c belongs to the closed set.
func (c Category) Valid() bool {
	_, ok := emojis[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}

// Emoji returns the icon shown next to the category in navigation.
func (c Category) Emoji() string {
	return emojis[c]
}
