package articlescmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-folio/internal/category"
	"github.com/goliatone/go-folio/internal/content"
	"github.com/goliatone/go-folio/internal/timeline"
)

const (
	previewMessageType  = "folio.articles.preview"
	listMessageType     = "folio.articles.list"
	latestMessageType   = "folio.articles.latest"
	relatedMessageType  = "folio.articles.related"
	timelineMessageType = "folio.articles.timeline"
	pathsMessageType    = "folio.articles.paths"
	tagsMessageType     = "folio.articles.tags"
)

// PreviewArticleCommand renders one article with its details.
type PreviewArticleCommand struct {
	Category string `json:"category"`
	Locale   string `json:"locale"`
	Slug     string `json:"slug"`
	// ShowHTML includes the rendered body in the output.
	ShowHTML bool `json:"show_html,omitempty"`
}

// Type implements command.Message.
func (PreviewArticleCommand) Type() string { return previewMessageType }

// Validate ensures the article address is complete before handlers execute.
func (cmd PreviewArticleCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Category, validation.Required, categoryRule),
		validation.Field(&cmd.Locale, validation.Required, localeRule(false)),
		validation.Field(&cmd.Slug, validation.Required, slugRule),
	)
}

// ListArticlesCommand lists one category the way its index page does:
// filtered by language and tags, sorted, and cut to Limit items.
type ListArticlesCommand struct {
	Category string `json:"category"`
	// Locale selects one language or LocaleAll for both.
	Locale string   `json:"locale"`
	Tags   []string `json:"tags,omitempty"`
	Sort   string   `json:"sort,omitempty"`
	// Limit caps the items shown; zero shows every item.
	Limit int `json:"limit,omitempty"`
	// ShowFailures reports documents that could not be loaded instead of
	// failing the listing.
	ShowFailures bool `json:"show_failures,omitempty"`
}

// Type implements command.Message.
func (ListArticlesCommand) Type() string { return listMessageType }

func (cmd ListArticlesCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Category, validation.Required, categoryRule),
		validation.Field(&cmd.Locale, validation.Required, localeRule(true)),
		validation.Field(&cmd.Sort, sortRule),
		validation.Field(&cmd.Limit, validation.Min(0)),
	)
}

// LatestArticlesCommand lists the newest articles across every category.
// Category narrows the listing to one category when set.
type LatestArticlesCommand struct {
	Category string   `json:"category,omitempty"`
	Locale   string   `json:"locale"`
	Tags     []string `json:"tags,omitempty"`
	Sort     string   `json:"sort,omitempty"`
	// Limit defaults to one page of content.PageSize items.
	Limit int `json:"limit,omitempty"`
}

// Type implements command.Message.
func (LatestArticlesCommand) Type() string { return latestMessageType }

func (cmd LatestArticlesCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Category, categoryRule),
		validation.Field(&cmd.Locale, validation.Required, localeRule(true)),
		validation.Field(&cmd.Sort, sortRule),
		validation.Field(&cmd.Limit, validation.Min(0)),
	)
}

// RelatedArticlesCommand ranks the articles sharing tags with one article.
type RelatedArticlesCommand struct {
	Category string `json:"category"`
	Locale   string `json:"locale"`
	Slug     string `json:"slug"`
	Limit    int    `json:"limit,omitempty"`
}

// Type implements command.Message.
func (RelatedArticlesCommand) Type() string { return relatedMessageType }

func (cmd RelatedArticlesCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Category, validation.Required, categoryRule),
		validation.Field(&cmd.Locale, validation.Required, localeRule(false)),
		validation.Field(&cmd.Slug, validation.Required, slugRule),
		validation.Field(&cmd.Limit, validation.Min(0)),
	)
}

// TimelineCommand groups the most recent articles of a locale by month.
type TimelineCommand struct {
	Locale     string `json:"locale"`
	WindowSize int    `json:"window_size,omitempty"`
	Axis       string `json:"axis,omitempty"`
	// SkipFailed leaves broken documents off the timeline and reports them
	// in the view instead of failing the command.
	SkipFailed bool `json:"skip_failed,omitempty"`
}

// Type implements command.Message.
func (TimelineCommand) Type() string { return timelineMessageType }

func (cmd TimelineCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Locale, validation.Required, localeRule(false)),
		validation.Field(&cmd.WindowSize, validation.Min(0)),
		validation.Field(&cmd.Axis, validation.In(string(timeline.Horizontal), string(timeline.Vertical))),
	)
}

// ListPathsCommand enumerates the (locale, slug) routes of a category.
type ListPathsCommand struct {
	Category string `json:"category"`
}

// Type implements command.Message.
func (ListPathsCommand) Type() string { return pathsMessageType }

func (cmd ListPathsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Category, validation.Required, categoryRule),
	)
}

// ListTagsCommand reports the tag cloud of a category listing.
type ListTagsCommand struct {
	Category string `json:"category,omitempty"`
	Locale   string `json:"locale"`
}

// Type implements command.Message.
func (ListTagsCommand) Type() string { return tagsMessageType }

func (cmd ListTagsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Category, categoryRule),
		validation.Field(&cmd.Locale, validation.Required, localeRule(true)),
	)
}

var categoryRule = validation.By(func(value any) error {
	raw, _ := value.(string)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if _, err := category.Parse(raw); err != nil {
		return validation.NewError("folio.articles.category_unknown", "must be a known category")
	}
	return nil
})

var sortRule = validation.In(string(content.SortLatest), string(content.SortOldest))

var slugRule = validation.By(func(value any) error {
	raw, _ := value.(string)
	if raw != "" && !slug.IsValid(raw) {
		return validation.NewError("folio.articles.slug_invalid", "must be a lowercase, hyphenated slug")
	}
	return nil
})

func localeRule(allowAll bool) validation.Rule {
	allowed := []any{content.LocalePT, content.LocaleEN}
	if allowAll {
		allowed = append(allowed, content.LocaleAll)
	}
	return validation.In(allowed...)
}
