package articlescmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-folio/internal/category"
	"github.com/goliatone/go-folio/internal/content"
	"github.com/goliatone/go-folio/internal/markdown"
	"github.com/goliatone/go-folio/internal/timeline"
)

type recordingPresenter struct {
	articles  []ArticleView
	listings  []ListingView
	timelines []TimelineView
	paths     []PathsView
	tags      []TagsView
}

func (r *recordingPresenter) Article(view ArticleView) error {
	r.articles = append(r.articles, view)
	return nil
}

func (r *recordingPresenter) Listing(view ListingView) error {
	r.listings = append(r.listings, view)
	return nil
}

func (r *recordingPresenter) Timeline(view TimelineView) error {
	r.timelines = append(r.timelines, view)
	return nil
}

func (r *recordingPresenter) Paths(view PathsView) error {
	r.paths = append(r.paths, view)
	return nil
}

func (r *recordingPresenter) Tags(view TagsView) error {
	r.tags = append(r.tags, view)
	return nil
}

type stubRegistry struct {
	handlers []any
}

func (s *stubRegistry) RegisterCommand(handler any) error {
	s.handlers = append(s.handlers, handler)
	return nil
}

func article(title, date string, extra ...string) *fstest.MapFile {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\ndate: %s\n", title, date)
	for _, line := range extra {
		b.WriteString(line + "\n")
	}
	b.WriteString("---\n\nBody of the article.\n")
	return &fstest.MapFile{Data: []byte(b.String())}
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"books/en/dune.mdx":        article("Dune", "2024-02-10", "tags: [scifi, classic]", "author: Frank Herbert", "pages: 400", "currentPage: 100"),
		"books/en/neuromancer.mdx": article("Neuromancer", "2024-03-01", "tags: [scifi, cyberpunk]", "author: William Gibson"),
		"books/en/hyperion.mdx":    article("Hyperion", "2024-01-05", "tags: [scifi, classic]", "author: Dan Simmons"),
		"books/en/emma.mdx":        article("Emma", "2023-12-01", "tags: [romance]", "author: Jane Austen"),
		"books/pt/duna.mdx":        article("Duna", "2024-02-11", "tags: [scifi]", "author: Frank Herbert"),
		"books/en/broken.mdx":      {Data: []byte("---\ndate: 2024-01-01\n---\nno title\n")},
		"travel/en/kyoto.mdx":      article("Kyoto", "2023-11-02", "tags: [japan]", "destination: Kyoto"),
		"football/en/derby.mdx":    article("Derby", "2024-02-20", "tags: [benfica]", "teams: Benfica vs Porto", "competition: Liga"),
	}
}

func testStore() content.Store {
	return content.NewStore(markdown.NewService(testFS(), markdown.Config{}), content.WithFailurePolicy(content.SkipFailed))
}

func registered(t *testing.T) (*HandlerSet, *recordingPresenter) {
	t.Helper()
	out := &recordingPresenter{}
	set, err := RegisterArticleCommands(nil, testStore(), out, nil, Defaults{})
	require.NoError(t, err)
	return set, out
}

func titles(items []content.ListingItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}

func TestPreviewPresentsDetailsAndProgress(t *testing.T) {
	set, out := registered(t)

	err := set.Preview.Execute(context.Background(), PreviewArticleCommand{Category: "books", Locale: "en", Slug: "dune"})
	require.NoError(t, err)
	require.Len(t, out.articles, 1)

	view := out.articles[0]
	assert.Equal(t, "Dune", view.Article.Frontmatter.Title)
	book, ok := view.Details.(category.Book)
	require.True(t, ok, "got %T", view.Details)
	assert.Equal(t, "Frank Herbert", book.Author)
	require.NotNil(t, view.Progress)
	assert.Equal(t, 25, *view.Progress)
}

func TestPreviewMissingArticleIsNotFound(t *testing.T) {
	set, out := registered(t)

	err := set.Preview.Execute(context.Background(), PreviewArticleCommand{Category: "books", Locale: "en", Slug: "missing"})
	require.Error(t, err)
	assert.True(t, goerrors.IsCategory(err, goerrors.CategoryNotFound), "got %v", err)
	assert.Empty(t, out.articles)
}

func TestPreviewRejectsInvalidMessage(t *testing.T) {
	set, _ := registered(t)

	err := set.Preview.Execute(context.Background(), PreviewArticleCommand{Category: "cooking", Locale: "fr", Slug: "Bad Slug"})
	require.Error(t, err)
	assert.True(t, goerrors.IsCategory(err, goerrors.CategoryValidation), "got %v", err)
}

func TestListFiltersSortsAndLimits(t *testing.T) {
	set, out := registered(t)

	err := set.List.Execute(context.Background(), ListArticlesCommand{Category: "books", Locale: "en", Tags: []string{"classic"}})
	require.NoError(t, err)
	require.Len(t, out.listings, 1)
	assert.Equal(t, []string{"Dune", "Hyperion"}, titles(out.listings[0].Items))

	err = set.List.Execute(context.Background(), ListArticlesCommand{Category: "books", Locale: "all", Sort: "oldest", Limit: 2})
	require.NoError(t, err)
	page := out.listings[1]
	assert.Equal(t, []string{"Emma", "Hyperion"}, titles(page.Items))
	assert.Equal(t, 5, page.Total)
	assert.True(t, page.HasMore)
}

func TestListReportsFailuresWhenAsked(t *testing.T) {
	set, out := registered(t)

	err := set.List.Execute(context.Background(), ListArticlesCommand{Category: "books", Locale: "en", ShowFailures: true})
	require.NoError(t, err)
	view := out.listings[0]
	assert.Len(t, view.Items, 4)
	require.Len(t, view.Failures, 1)
	assert.Equal(t, "broken", view.Failures[0].Slug)
	assert.Contains(t, view.Failures[0].Error, "title")

	err = set.List.Execute(context.Background(), ListArticlesCommand{Category: "books", Locale: "en"})
	require.NoError(t, err)
	assert.Empty(t, out.listings[1].Failures)
}

func TestLatestSpansCategories(t *testing.T) {
	set, out := registered(t)

	err := set.Latest.Execute(context.Background(), LatestArticlesCommand{Locale: "en", Limit: 3})
	require.NoError(t, err)
	view := out.listings[0]
	assert.Equal(t, []string{"Neuromancer", "Derby", "Dune"}, titles(view.Items))
	assert.Equal(t, 6, view.Total)
	assert.True(t, view.HasMore)
}

func TestRelatedRanksBySharedTags(t *testing.T) {
	set, out := registered(t)

	err := set.Related.Execute(context.Background(), RelatedArticlesCommand{Category: "books", Locale: "en", Slug: "dune"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hyperion", "Neuromancer"}, titles(out.listings[0].Items))
}

func TestTimelineGroupsByMonth(t *testing.T) {
	set, out := registered(t)

	err := set.Timeline.Execute(context.Background(), TimelineCommand{Locale: "en", WindowSize: 3, Axis: "vertical"})
	require.NoError(t, err)
	view := out.timelines[0]
	assert.Equal(t, timeline.Vertical, view.Axis)
	require.Len(t, view.Groups, 2)
	assert.Equal(t, 3, timeline.Len(view.Groups))
	assert.Equal(t, "Mar 2024", view.Groups[0].Label("en"))
}

func TestTimelineSkipFailed(t *testing.T) {
	store := content.NewStore(markdown.NewService(testFS(), markdown.Config{}))
	out := &recordingPresenter{}
	handler := NewTimelineHandler(store, out, nil, Defaults{})

	err := handler.Execute(context.Background(), TimelineCommand{Locale: "en"})
	require.Error(t, err)
	assert.True(t, goerrors.IsCategory(err, goerrors.CategoryBadInput), "got %v", err)
	assert.Empty(t, out.timelines)

	err = handler.Execute(context.Background(), TimelineCommand{Locale: "en", SkipFailed: true})
	require.NoError(t, err)
	require.Len(t, out.timelines, 1)
	view := out.timelines[0]
	assert.Equal(t, 6, timeline.Len(view.Groups))
	require.Len(t, view.Failures, 1)
	assert.Equal(t, "broken", view.Failures[0].Slug)
	assert.Equal(t, category.Books, view.Failures[0].Category)
}

func TestPathsAndTags(t *testing.T) {
	set, out := registered(t)

	require.NoError(t, set.Paths.Execute(context.Background(), ListPathsCommand{Category: "travel"}))
	assert.Equal(t, []content.Path{{Locale: "en", Slug: "kyoto"}}, out.paths[0].Paths)

	require.NoError(t, set.Tags.Execute(context.Background(), ListTagsCommand{Category: "books", Locale: "all"}))
	assert.Equal(t, []string{"classic", "cyberpunk", "romance", "scifi"}, out.tags[0].Tags)
}

func TestRegisterArticleCommands(t *testing.T) {
	reg := &stubRegistry{}
	set, err := RegisterArticleCommands(reg, testStore(), &recordingPresenter{}, nil, Defaults{})
	require.NoError(t, err)
	assert.NotNil(t, set.Timeline)
	assert.Len(t, reg.handlers, 7)

	_, err = RegisterArticleCommands(reg, testStore(), nil, nil, Defaults{})
	assert.ErrorIs(t, err, ErrPresenterRequired)
}

func TestWriterPresenterJSONListing(t *testing.T) {
	var buf bytes.Buffer
	store := testStore()
	set, err := RegisterArticleCommands(nil, store, NewWriterPresenter(&buf, FormatJSON, false), nil, Defaults{})
	require.NoError(t, err)

	require.NoError(t, set.List.Execute(context.Background(), ListArticlesCommand{Category: "travel", Locale: "en"}))

	var decoded struct {
		Title string `json:"title"`
		Total int    `json:"total"`
		Items []struct {
			Slug string `json:"slug"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Total)
	assert.Equal(t, "kyoto", decoded.Items[0].Slug)
}

func TestWriterPresenterTableArticle(t *testing.T) {
	var buf bytes.Buffer
	set, err := RegisterArticleCommands(nil, testStore(), NewWriterPresenter(&buf, FormatTable, false), nil, Defaults{})
	require.NoError(t, err)

	require.NoError(t, set.Preview.Execute(context.Background(), PreviewArticleCommand{Category: "books", Locale: "en", Slug: "dune"}))
	printed := buf.String()
	assert.Contains(t, printed, "Dune")
	assert.Contains(t, printed, "Frank Herbert")
	assert.Contains(t, printed, "25%")
	assert.NotContains(t, printed, "<p>")
}

func TestWriterPresenterTableTimelineWithFailures(t *testing.T) {
	var buf bytes.Buffer
	store := content.NewStore(markdown.NewService(testFS(), markdown.Config{}))
	handler := NewTimelineHandler(store, NewWriterPresenter(&buf, FormatTable, false), nil, Defaults{})

	require.NoError(t, handler.Execute(context.Background(), TimelineCommand{Locale: "en", Axis: "vertical", SkipFailed: true}))
	printed := buf.String()
	assert.Contains(t, printed, "Mar 2024")
	assert.Contains(t, printed, "Neuromancer")
	assert.Contains(t, printed, "1 document(s) could not be loaded")
	assert.Contains(t, printed, "broken")
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
