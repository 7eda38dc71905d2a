package articlescmd

import (
	"context"
	"errors"
	"strings"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-folio/internal/category"
	"github.com/goliatone/go-folio/internal/commands"
	"github.com/goliatone/go-folio/internal/content"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/related"
	"github.com/goliatone/go-folio/internal/timeline"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

const (
	previewOperation  = "articles.preview"
	listOperation     = "articles.list"
	latestOperation   = "articles.latest"
	relatedOperation  = "articles.related"
	timelineOperation = "articles.timeline"
	pathsOperation    = "articles.paths"
	tagsOperation     = "articles.tags"
)

// ErrPresenterRequired is returned when a handler set is built without an output.
var ErrPresenterRequired = errors.New("articles command: presenter is required")

var (
	_ command.Commander[PreviewArticleCommand]  = (*PreviewHandler)(nil)
	_ command.Commander[ListArticlesCommand]    = (*ListHandler)(nil)
	_ command.Commander[LatestArticlesCommand]  = (*LatestHandler)(nil)
	_ command.Commander[RelatedArticlesCommand] = (*RelatedHandler)(nil)
	_ command.Commander[TimelineCommand]        = (*TimelineHandler)(nil)
	_ command.Commander[ListPathsCommand]       = (*PathsHandler)(nil)
	_ command.Commander[ListTagsCommand]        = (*TagsHandler)(nil)
)

// Defaults carries the configured fallbacks for values a message leaves unset.
type Defaults struct {
	RelatedLimit int
	WindowSize   int
	Axis         timeline.Axis
}

func (d Defaults) relatedLimit(limit int) int {
	if limit > 0 {
		return limit
	}
	if d.RelatedLimit > 0 {
		return d.RelatedLimit
	}
	return related.DefaultLimit
}

func (d Defaults) windowSize(size int) int {
	if size > 0 {
		return size
	}
	if d.WindowSize > 0 {
		return d.WindowSize
	}
	return timeline.DefaultWindowSize
}

func (d Defaults) axis(axis string) timeline.Axis {
	if axis != "" {
		return timeline.Axis(axis)
	}
	if d.Axis != "" {
		return d.Axis
	}
	return timeline.Horizontal
}

func newHandler[T command.Message](exec command.CommandFunc[T], logger interfaces.Logger, operation string, fields func(T) map[string]any, opts []commands.HandlerOption[T]) *commands.Handler[T] {
	handlerOpts := []commands.HandlerOption[T]{
		commands.WithLogger[T](logger),
		commands.WithOperation[T](operation),
		commands.WithMessageFields(fields),
		commands.WithTelemetry(commands.DefaultTelemetry[T](logger)),
	}
	return commands.NewHandler(exec, append(handlerOpts, opts...)...)
}

// PreviewHandler loads one article and presents it with its typed details.
type PreviewHandler struct {
	inner *commands.Handler[PreviewArticleCommand]
}

func NewPreviewHandler(store content.Store, out Presenter, logger interfaces.Logger, opts ...commands.HandlerOption[PreviewArticleCommand]) *PreviewHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg PreviewArticleCommand) error {
		cat, _ := category.Parse(msg.Category)
		article, err := store.GetArticle(ctx, cat, msg.Slug, msg.Locale)
		if err != nil {
			return err
		}

		view := ArticleView{Article: article, ShowHTML: msg.ShowHTML}
		details, err := article.Details()
		if err != nil {
			logging.WithDocumentContext(logger, msg.Category, msg.Locale, msg.Slug).
				Warn("articles.details.undecodable", "error", err)
		} else {
			view.Details = details
			if book, ok := details.(category.Book); ok {
				if progress, ok := book.ReadingProgress(); ok {
					view.Progress = &progress
				}
			}
		}
		return out.Article(view)
	}
	return &PreviewHandler{inner: newHandler(exec, logger, previewOperation, func(msg PreviewArticleCommand) map[string]any {
		return map[string]any{"category": msg.Category, "locale": msg.Locale, "slug": msg.Slug}
	}, opts)}
}

// Execute satisfies command.Commander[PreviewArticleCommand].
func (h *PreviewHandler) Execute(ctx context.Context, msg PreviewArticleCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ListHandler presents a filtered category listing.
type ListHandler struct {
	inner *commands.Handler[ListArticlesCommand]
}

func NewListHandler(store content.Store, out Presenter, logger interfaces.Logger, opts ...commands.HandlerOption[ListArticlesCommand]) *ListHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg ListArticlesCommand) error {
		cat, _ := category.Parse(msg.Category)
		items, failures, err := collect(ctx, store, []category.Category{cat}, localesFor(msg.Locale), msg.ShowFailures)
		if err != nil {
			return err
		}
		sort, _ := content.ParseSortOrder(msg.Sort)
		result := content.Query{Locale: msg.Locale, Tags: msg.Tags, Sort: sort, Limit: msg.Limit}.Apply(items)
		return out.Listing(ListingView{
			Title:    labelFor(cat),
			Items:    result.Items,
			Total:    result.Total,
			HasMore:  result.HasMore,
			Failures: failureViews(failures),
		})
	}
	return &ListHandler{inner: newHandler(exec, logger, listOperation, func(msg ListArticlesCommand) map[string]any {
		return map[string]any{"category": msg.Category, "locale": msg.Locale, "tags": len(msg.Tags)}
	}, opts)}
}

// Execute satisfies command.Commander[ListArticlesCommand].
func (h *ListHandler) Execute(ctx context.Context, msg ListArticlesCommand) error {
	return h.inner.Execute(ctx, msg)
}

// LatestHandler presents the newest articles across categories.
type LatestHandler struct {
	inner *commands.Handler[LatestArticlesCommand]
}

func NewLatestHandler(store content.Store, out Presenter, logger interfaces.Logger, opts ...commands.HandlerOption[LatestArticlesCommand]) *LatestHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg LatestArticlesCommand) error {
		cats := category.All()
		title := "latest"
		if msg.Category != "" {
			cat, _ := category.Parse(msg.Category)
			cats = []category.Category{cat}
			title = labelFor(cat)
		}
		items, _, err := collect(ctx, store, cats, localesFor(msg.Locale), false)
		if err != nil {
			return err
		}
		limit := msg.Limit
		if limit == 0 {
			limit = content.PageSize
		}
		sort, _ := content.ParseSortOrder(msg.Sort)
		result := content.Query{Locale: msg.Locale, Tags: msg.Tags, Sort: sort, Limit: limit}.Apply(items)
		return out.Listing(ListingView{Title: title, Items: result.Items, Total: result.Total, HasMore: result.HasMore})
	}
	return &LatestHandler{inner: newHandler(exec, logger, latestOperation, func(msg LatestArticlesCommand) map[string]any {
		return map[string]any{"category": msg.Category, "locale": msg.Locale, "limit": msg.Limit}
	}, opts)}
}

// Execute satisfies command.Commander[LatestArticlesCommand].
func (h *LatestHandler) Execute(ctx context.Context, msg LatestArticlesCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RelatedHandler ranks the articles of the same category sharing tags with
// the requested one.
type RelatedHandler struct {
	inner *commands.Handler[RelatedArticlesCommand]
}

func NewRelatedHandler(store content.Store, out Presenter, logger interfaces.Logger, defaults Defaults, opts ...commands.HandlerOption[RelatedArticlesCommand]) *RelatedHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg RelatedArticlesCommand) error {
		cat, _ := category.Parse(msg.Category)
		current, err := store.GetArticle(ctx, cat, msg.Slug, msg.Locale)
		if err != nil {
			return err
		}
		pool, err := store.ListArticles(ctx, cat, msg.Locale)
		if err != nil {
			return err
		}
		ranked := related.Articles(current, pool, defaults.relatedLimit(msg.Limit))
		items := make([]content.ListingItem, 0, len(ranked))
		for _, article := range ranked {
			items = append(items, article.Listing())
		}
		return out.Listing(ListingView{
			Title: "related to " + current.Frontmatter.Title,
			Items: items,
			Total: len(items),
		})
	}
	return &RelatedHandler{inner: newHandler(exec, logger, relatedOperation, func(msg RelatedArticlesCommand) map[string]any {
		return map[string]any{"category": msg.Category, "locale": msg.Locale, "slug": msg.Slug}
	}, opts)}
}

// Execute satisfies command.Commander[RelatedArticlesCommand].
func (h *RelatedHandler) Execute(ctx context.Context, msg RelatedArticlesCommand) error {
	return h.inner.Execute(ctx, msg)
}

// TimelineHandler groups the most recent articles of a locale by month.
type TimelineHandler struct {
	inner *commands.Handler[TimelineCommand]
}

func NewTimelineHandler(store content.Store, out Presenter, logger interfaces.Logger, defaults Defaults, opts ...commands.HandlerOption[TimelineCommand]) *TimelineHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg TimelineCommand) error {
		items, failures, err := timelineItems(ctx, store, msg.Locale, msg.SkipFailed)
		if err != nil {
			return err
		}
		for _, failure := range failures {
			logging.WithDocumentContext(logger, string(failure.Category), failure.Locale, failure.Slug).
				Warn("articles.timeline.skipped", "error", failure.Err)
		}
		axis := defaults.axis(msg.Axis)
		groups := timeline.Group(items, timeline.Options{
			WindowSize: defaults.windowSize(msg.WindowSize),
			Mode:       timeline.ModeForAxis(axis),
		})
		logger.Debug("articles.timeline.grouped", "groups", len(groups), "entries", timeline.Len(groups))
		return out.Timeline(TimelineView{
			Locale:   msg.Locale,
			Axis:     axis,
			Groups:   groups,
			Failures: failureViews(failures),
		})
	}
	return &TimelineHandler{inner: newHandler(exec, logger, timelineOperation, func(msg TimelineCommand) map[string]any {
		return map[string]any{"locale": msg.Locale, "axis": msg.Axis, "skip_failed": msg.SkipFailed}
	}, opts)}
}

// Execute satisfies command.Commander[TimelineCommand].
func (h *TimelineHandler) Execute(ctx context.Context, msg TimelineCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PathsHandler lists the routes a static build generates for a category.
type PathsHandler struct {
	inner *commands.Handler[ListPathsCommand]
}

func NewPathsHandler(store content.Store, out Presenter, logger interfaces.Logger, opts ...commands.HandlerOption[ListPathsCommand]) *PathsHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg ListPathsCommand) error {
		cat, _ := category.Parse(msg.Category)
		paths, err := store.ListAllPaths(ctx, cat)
		if err != nil {
			return err
		}
		return out.Paths(PathsView{Category: cat, Paths: paths})
	}
	return &PathsHandler{inner: newHandler(exec, logger, pathsOperation, func(msg ListPathsCommand) map[string]any {
		return map[string]any{"category": msg.Category}
	}, opts)}
}

// Execute satisfies command.Commander[ListPathsCommand].
func (h *PathsHandler) Execute(ctx context.Context, msg ListPathsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// TagsHandler reports the sorted tag set of a listing.
type TagsHandler struct {
	inner *commands.Handler[ListTagsCommand]
}

func NewTagsHandler(store content.Store, out Presenter, logger interfaces.Logger, opts ...commands.HandlerOption[ListTagsCommand]) *TagsHandler {
	logger = commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg ListTagsCommand) error {
		cats := category.All()
		if msg.Category != "" {
			cat, _ := category.Parse(msg.Category)
			cats = []category.Category{cat}
		}
		items, _, err := collect(ctx, store, cats, localesFor(msg.Locale), false)
		if err != nil {
			return err
		}
		return out.Tags(TagsView{Tags: content.Tags(items)})
	}
	return &TagsHandler{inner: newHandler(exec, logger, tagsOperation, func(msg ListTagsCommand) map[string]any {
		return map[string]any{"category": msg.Category, "locale": msg.Locale}
	}, opts)}
}

// Execute satisfies command.Commander[ListTagsCommand].
func (h *TagsHandler) Execute(ctx context.Context, msg ListTagsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// collect loads the listings of every (category, locale) pair. With
// tolerant set broken documents are returned as failures instead of
// failing the call.
func collect(ctx context.Context, store content.Store, cats []category.Category, locales []string, tolerant bool) ([]content.ListingItem, []content.Failure, error) {
	var items []content.ListingItem
	var failures []content.Failure
	for _, locale := range locales {
		for _, cat := range cats {
			if tolerant {
				result, err := store.CollectByCategory(ctx, cat, locale)
				if err != nil {
					return nil, nil, err
				}
				items = append(items, result.Items...)
				failures = append(failures, result.Failures...)
				continue
			}
			part, err := store.ListByCategory(ctx, cat, locale)
			if err != nil {
				return nil, nil, err
			}
			items = append(items, part...)
		}
	}
	content.SortByDate(items)
	return items, failures, nil
}

func timelineItems(ctx context.Context, store content.Store, locale string, skipFailed bool) ([]content.ListingItem, []content.Failure, error) {
	if !skipFailed {
		items, err := store.ListAllWithCategory(ctx, locale)
		return items, nil, err
	}
	result, err := store.CollectAllWithCategory(ctx, locale)
	if err != nil {
		return nil, nil, err
	}
	return result.Items, result.Failures, nil
}

func localesFor(locale string) []string {
	if strings.EqualFold(locale, content.LocaleAll) {
		return content.DefaultLocales
	}
	return []string{locale}
}
