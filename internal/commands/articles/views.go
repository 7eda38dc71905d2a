package articlescmd

import (
	"github.com/goliatone/go-folio/internal/category"
	"github.com/goliatone/go-folio/internal/content"
	"github.com/goliatone/go-folio/internal/timeline"
)

// ArticleView is the result of a preview.
type ArticleView struct {
	Article  *content.Article `json:"article" yaml:"article"`
	Details  category.Details `json:"details,omitempty" yaml:"details,omitempty"`
	Progress *int             `json:"progress,omitempty" yaml:"progress,omitempty"`
	ShowHTML bool             `json:"-" yaml:"-"`
}

// ListingView is one page of a listing.
type ListingView struct {
	Title    string                `json:"title" yaml:"title"`
	Items    []content.ListingItem `json:"items" yaml:"items"`
	Total    int                   `json:"total" yaml:"total"`
	HasMore  bool                  `json:"hasMore" yaml:"hasMore"`
	Failures []FailureView         `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// FailureView is the printable form of content.Failure.
type FailureView struct {
	Category category.Category `json:"category" yaml:"category"`
	Locale   string            `json:"locale" yaml:"locale"`
	Slug     string            `json:"slug" yaml:"slug"`
	Error    string            `json:"error" yaml:"error"`
}

type TimelineView struct {
	Locale string                 `json:"locale" yaml:"locale"`
	Axis   timeline.Axis          `json:"axis" yaml:"axis"`
	Groups []timeline.PeriodGroup `json:"groups" yaml:"groups"`
	// Failures lists the documents left off a timeline built with SkipFailed.
	Failures []FailureView `json:"failures,omitempty" yaml:"failures,omitempty"`
}

type PathsView struct {
	Category category.Category `json:"category" yaml:"category"`
	Paths    []content.Path    `json:"paths" yaml:"paths"`
}

type TagsView struct {
	Tags []string `json:"tags" yaml:"tags"`
}

func failureViews(failures []content.Failure) []FailureView {
	if len(failures) == 0 {
		return nil
	}
	out := make([]FailureView, 0, len(failures))
	for _, f := range failures {
		msg := ""
		if f.Err != nil {
			msg = f.Err.Error()
		}
		out = append(out, FailureView{Category: f.Category, Locale: f.Locale, Slug: f.Slug, Error: msg})
	}
	return out
}
