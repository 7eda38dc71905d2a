package content

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/goliatone/go-slug"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-folio/internal/category"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/markdown"
	"github.com/goliatone/go-folio/internal/validation"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// DocumentLoader resolves and parses raw documents by directory and name.
// *markdown.Service satisfies it.
type DocumentLoader interface {
	List(ctx context.Context, dir string) ([]string, error)
	Load(ctx context.Context, dir, name string) (*interfaces.Document, error)
}

// FailurePolicy decides what the plain List operations do when a document
// in a batch cannot be loaded.
type FailurePolicy string

const (
	// FailFast aborts the batch with the first failure.
	FailFast FailurePolicy = "fail"
	// SkipFailed logs each failure and leaves the document out.
	SkipFailed FailurePolicy = "skip"
)

// ParsePolicy maps a configuration value to a FailurePolicy.
func ParsePolicy(value string) (FailurePolicy, bool) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", FailFast:
		return FailFast, true
	case SkipFailed:
		return SkipFailed, true
	default:
		return FailFast, false
	}
}

// DefaultConcurrency bounds parallel document parses per batch.
const DefaultConcurrency = 8

// Store is the read-only article store. Documents live at
// <category>/<locale>/<slug>.<ext> below the loader's root. Every call reads
// from source; nothing is cached.
type Store interface {
	ListSlugs(ctx context.Context, cat category.Category, locale string) ([]string, error)
	GetArticle(ctx context.Context, cat category.Category, slug, locale string) (*Article, error)
	ListByCategory(ctx context.Context, cat category.Category, locale string) ([]ListingItem, error)
	ListAllWithCategory(ctx context.Context, locale string) ([]ListingItem, error)
	ListAllPaths(ctx context.Context, cat category.Category) ([]Path, error)
	ListArticles(ctx context.Context, cat category.Category, locale string) ([]*Article, error)
	CollectByCategory(ctx context.Context, cat category.Category, locale string) (BatchResult, error)
	CollectAllWithCategory(ctx context.Context, locale string) (BatchResult, error)
}

// StoreOption configures the store at construction time.
type StoreOption func(*store)

// WithLogger sets the logger used for batch diagnostics.
func WithLogger(logger interfaces.Logger) StoreOption {
	return func(s *store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLocales overrides the locales enumerated by ListAllPaths and accepted
// by lookups.
func WithLocales(locales ...string) StoreOption {
	return func(s *store) {
		if len(locales) > 0 {
			s.locales = slices.Clone(locales)
		}
	}
}

// WithConcurrency bounds the number of documents parsed at once.
func WithConcurrency(limit int) StoreOption {
	return func(s *store) {
		if limit > 0 {
			s.concurrency = limit
		}
	}
}

// WithFailurePolicy selects how List operations react to broken documents.
func WithFailurePolicy(policy FailurePolicy) StoreOption {
	return func(s *store) {
		if policy != "" {
			s.policy = policy
		}
	}
}

// WithStrictCategories requires every document to validate against the
// schema of the category directory it lives in.
func WithStrictCategories(strict bool) StoreOption {
	return func(s *store) {
		s.strict = strict
	}
}

// WithExcerptLength sets the size of excerpts derived from the body when a
// document declares none. Zero disables derived excerpts.
func WithExcerptLength(length int) StoreOption {
	return func(s *store) {
		if length >= 0 {
			s.excerptLength = length
		}
	}
}

type store struct {
	docs          DocumentLoader
	logger        interfaces.Logger
	locales       []string
	concurrency   int
	policy        FailurePolicy
	strict        bool
	excerptLength int
}

// NewStore constructs a Store reading documents through docs.
func NewStore(docs DocumentLoader, opts ...StoreOption) Store {
	s := &store{
		docs:          docs,
		logger:        logging.NoOp(),
		locales:       slices.Clone(DefaultLocales),
		concurrency:   DefaultConcurrency,
		policy:        FailFast,
		excerptLength: markdown.DefaultExcerptLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListSlugs returns the sorted stems of every recognised document for
// (cat, locale), including ones whose file name is not a canonical slug.
// Unknown categories or locales, and missing directories, yield an empty list.
func (s *store) ListSlugs(ctx context.Context, cat category.Category, locale string) ([]string, error) {
	if !s.known(cat, locale) {
		return []string{}, nil
	}
	names, err := s.docs.List(ctx, dir(cat, locale))
	if err != nil {
		return nil, err
	}
	if names == nil {
		return []string{}, nil
	}
	return names, nil
}

// GetArticle loads and parses exactly one document.
func (s *store) GetArticle(ctx context.Context, cat category.Category, name, locale string) (*Article, error) {
	if !s.known(cat, locale) {
		return nil, &NotFoundError{Category: cat, Locale: locale, Slug: name}
	}
	return s.load(ctx, cat, name, locale)
}

func (s *store) ListByCategory(ctx context.Context, cat category.Category, locale string) ([]ListingItem, error) {
	articles, err := s.listArticles(ctx, cat, locale)
	if err != nil {
		return nil, err
	}
	return listings(articles), nil
}

func (s *store) ListArticles(ctx context.Context, cat category.Category, locale string) ([]*Article, error) {
	return s.listArticles(ctx, cat, locale)
}

// ListAllWithCategory merges ListByCategory across every category in
// category.All order and re-sorts the union newest first.
func (s *store) ListAllWithCategory(ctx context.Context, locale string) ([]ListingItem, error) {
	var merged []ListingItem
	for _, cat := range category.All() {
		items, err := s.ListByCategory(ctx, cat, locale)
		if err != nil {
			return nil, err
		}
		merged = append(merged, items...)
	}
	SortByDate(merged)
	return merged, nil
}

func (s *store) ListAllPaths(ctx context.Context, cat category.Category) ([]Path, error) {
	var paths []Path
	for _, locale := range s.locales {
		slugs, err := s.ListSlugs(ctx, cat, locale)
		if err != nil {
			return nil, err
		}
		for _, name := range slugs {
			paths = append(paths, Path{Locale: locale, Slug: name})
		}
	}
	return paths, nil
}

// CollectByCategory loads every document of (cat, locale) and reports the
// ones that failed next to the ones that loaded, whatever the policy.
func (s *store) CollectByCategory(ctx context.Context, cat category.Category, locale string) (BatchResult, error) {
	articles, failures, err := s.batch(ctx, cat, locale, false)
	if err != nil {
		return BatchResult{}, err
	}
	SortArticlesByDate(articles)
	return BatchResult{Items: listings(articles), Failures: failures}, nil
}

func (s *store) CollectAllWithCategory(ctx context.Context, locale string) (BatchResult, error) {
	var result BatchResult
	for _, cat := range category.All() {
		part, err := s.CollectByCategory(ctx, cat, locale)
		if err != nil {
			return BatchResult{}, err
		}
		result.Items = append(result.Items, part.Items...)
		result.Failures = append(result.Failures, part.Failures...)
	}
	SortByDate(result.Items)
	return result, nil
}

func (s *store) listArticles(ctx context.Context, cat category.Category, locale string) ([]*Article, error) {
	articles, failures, err := s.batch(ctx, cat, locale, s.policy == FailFast)
	if err != nil {
		return nil, err
	}
	for _, failure := range failures {
		logging.WithDocumentContext(s.logger, string(failure.Category), failure.Locale, failure.Slug).
			Warn("content.article.skipped", "error", failure.Err)
	}
	SortArticlesByDate(articles)
	return articles, nil
}

// batch parses every document of (cat, locale) concurrently. Each task owns
// one slot of the result slices; slots are joined in enumeration order so
// the later stable sort keeps ties in that order. With abort set the first
// failure cancels the remaining tasks and is returned.
func (s *store) batch(ctx context.Context, cat category.Category, locale string, abort bool) ([]*Article, []Failure, error) {
	slugs, err := s.ListSlugs(ctx, cat, locale)
	if err != nil {
		return nil, nil, err
	}

	loaded := make([]*Article, len(slugs))
	failed := make([]error, len(slugs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)
	for i, name := range slugs {
		group.Go(func() error {
			article, err := s.load(groupCtx, cat, name, locale)
			if err != nil {
				failed[i] = err
				if abort {
					return err
				}
				return nil
			}
			loaded[i] = article
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	articles := make([]*Article, 0, len(slugs))
	var failures []Failure
	for i, name := range slugs {
		if failed[i] != nil {
			failures = append(failures, Failure{Category: cat, Locale: locale, Slug: name, Err: failed[i]})
			continue
		}
		articles = append(articles, loaded[i])
	}

	s.logger.Debug("content.batch.loaded",
		"category", cat,
		"locale", locale,
		"loaded", len(articles),
		"failed", len(failures),
	)
	return articles, failures, nil
}

func (s *store) load(ctx context.Context, cat category.Category, name, locale string) (*Article, error) {
	doc, err := s.docs.Load(ctx, dir(cat, locale), name)
	if err != nil {
		switch {
		case errors.Is(err, markdown.ErrDocumentNotFound):
			return nil, &NotFoundError{Category: cat, Locale: locale, Slug: name}
		case errors.Is(err, markdown.ErrMalformedFrontMatter):
			return nil, &MalformedContentError{Category: cat, Locale: locale, Slug: name, Cause: err}
		default:
			return nil, err
		}
	}

	// A document whose file name cannot be routed exists but is unusable.
	if !slug.IsValid(name) {
		return nil, &MalformedContentError{
			Category: cat,
			Locale:   locale,
			Slug:     name,
			Issues:   []string{"slug: file name must be a lowercase, hyphenated slug"},
		}
	}

	fm, issues, err := DecodeFrontmatter(doc.FrontMatter)
	if err != nil {
		return nil, &MalformedContentError{Category: cat, Locale: locale, Slug: name, Issues: issues, Cause: err}
	}

	if s.strict {
		if err := category.Validate(cat, fm.Fields); err != nil {
			issues := make([]string, 0)
			for _, issue := range validation.Issues(err) {
				issues = append(issues, issue.String())
			}
			return nil, &MalformedContentError{Category: cat, Locale: locale, Slug: name, Issues: issues, Cause: err}
		}
	}

	if fm.Excerpt == "" && s.excerptLength > 0 {
		fm.Excerpt = markdown.Excerpt(doc.BodyHTML, s.excerptLength)
	}

	return &Article{
		Frontmatter: fm,
		HTML:        string(doc.BodyHTML),
		ReadingTime: doc.ReadingTime,
		Slug:        name,
		Locale:      locale,
		Category:    cat,
	}, nil
}

func (s *store) known(cat category.Category, locale string) bool {
	return cat.Valid() && slices.Contains(s.locales, locale)
}

func dir(cat category.Category, locale string) string {
	return string(cat) + "/" + locale
}

func listings(articles []*Article) []ListingItem {
	items := make([]ListingItem, 0, len(articles))
	for _, article := range articles {
		items = append(items, article.Listing())
	}
	return items
}
