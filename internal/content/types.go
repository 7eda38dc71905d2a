package content

import (
	"maps"
	"slices"
	"time"

	"github.com/goliatone/go-folio/internal/category"
)

// Supported locales, in route-generation order.
const (
	LocalePT = "pt"
	LocaleEN = "en"
)

// DefaultLocales lists the locales the store enumerates by default.
var DefaultLocales = []string{LocalePT, LocaleEN}

// Frontmatter is the decoded metadata block of an article. The base shape
// shared by every category is lifted into typed fields; Fields keeps every
// decoded key, including the category-specific ones.
type Frontmatter struct {
	Title   string         `json:"title" yaml:"title"`
	Slug    string         `json:"slug,omitempty" yaml:"slug,omitempty"`
	Locale  string         `json:"locale,omitempty" yaml:"locale,omitempty"`
	Date    time.Time      `json:"date" yaml:"date"`
	RawDate string         `json:"-" yaml:"-"`
	Excerpt string         `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	Image   string         `json:"image,omitempty" yaml:"image,omitempty"`
	Tags    []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Fields  map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Article is a parsed document. Slug and Locale come from the document's
// location, not from its metadata.
type Article struct {
	Frontmatter Frontmatter       `json:"frontmatter" yaml:"frontmatter"`
	HTML        string            `json:"html" yaml:"html"`
	ReadingTime int               `json:"readingTime" yaml:"readingTime"`
	Slug        string            `json:"slug" yaml:"slug"`
	Locale      string            `json:"locale" yaml:"locale"`
	Category    category.Category `json:"category,omitempty" yaml:"category,omitempty"`
}

// ListingItem is the body-less projection of an article used by index views.
type ListingItem struct {
	Title       string            `json:"title" yaml:"title"`
	Slug        string            `json:"slug" yaml:"slug"`
	Category    category.Category `json:"category,omitempty" yaml:"category,omitempty"`
	Locale      string            `json:"locale" yaml:"locale"`
	Date        time.Time         `json:"date" yaml:"date"`
	Excerpt     string            `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	Image       string            `json:"image,omitempty" yaml:"image,omitempty"`
	Tags        []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
	ReadingTime int               `json:"readingTime" yaml:"readingTime"`
}

// Path identifies one document within a category, for route generation.
type Path struct {
	Locale string `json:"locale" yaml:"locale"`
	Slug   string `json:"slug" yaml:"slug"`
}

// Failure records one document a batch could not load.
type Failure struct {
	Category category.Category
	Locale   string
	Slug     string
	Err      error
}

// BatchResult carries the documents a batch loaded together with the ones
// it could not. Items are sorted newest first.
type BatchResult struct {
	Items    []ListingItem
	Failures []Failure
}

// Listing projects the article into a ListingItem.
func (a *Article) Listing() ListingItem {
	return ListingItem{
		Title:       a.Frontmatter.Title,
		Slug:        a.Slug,
		Category:    a.Category,
		Locale:      a.Locale,
		Date:        a.Frontmatter.Date,
		Excerpt:     a.Frontmatter.Excerpt,
		Image:       a.Frontmatter.Image,
		Tags:        slices.Clone(a.Frontmatter.Tags),
		ReadingTime: a.ReadingTime,
	}
}

// ResolvedCategory returns the article's category, inferring it from the
// metadata shape when the article was loaded without one.
func (a *Article) ResolvedCategory() category.Category {
	if a.Category.Valid() {
		return a.Category
	}
	return category.Infer(a.Frontmatter.Fields)
}

// Details decodes the category-specific metadata into its typed record.
func (a *Article) Details() (category.Details, error) {
	return category.DecodeDetails(a.ResolvedCategory(), a.Frontmatter.Fields)
}

func cloneFields(fields map[string]any) map[string]any {
	if fields == nil {
		return map[string]any{}
	}
	return maps.Clone(fields)
}
