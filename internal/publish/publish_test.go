package publish

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-folio/internal/category"
	"github.com/goliatone/go-folio/internal/content"
	"github.com/goliatone/go-folio/internal/markdown"
)

var buildTime = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

func testStore() content.Store {
	doc := func(title, date, extra string) *fstest.MapFile {
		return &fstest.MapFile{Data: []byte("---\ntitle: " + title + "\ndate: " + date + "\n" + extra + "\n---\n\nBody text.\n")}
	}
	fsys := fstest.MapFS{
		"books/en/dune.mdx":  doc("Dune", "2024-02-10", "author: Frank Herbert\nexcerpt: \"Spice  &   sand\""),
		"books/pt/dune.mdx":  doc("Duna", "2024-02-11", "author: Frank Herbert"),
		"travel/en/oslo.mdx": doc("Oslo", "2024-03-05", "destination: Oslo"),
		"movies/pt/heat.mdx": doc("Heat", "2023-10-01", "director: Michael Mann"),
	}
	return content.NewStore(markdown.NewService(fsys, markdown.Config{}))
}

func testSite() Site {
	return Site{
		BaseURL:      "https://example.com/blog/",
		Titles:       map[string]string{"en": "Field Notes"},
		Descriptions: map[string]string{"en": "Sports & stories"},
	}
}

func TestSiteURL(t *testing.T) {
	site := testSite()
	assert.Equal(t, "https://example.com/blog", site.URL())
	assert.Equal(t, "https://example.com/blog/en/books/dune", site.URL("en", "/books/", "dune"))
	assert.Equal(t, "http://localhost/pt", Site{}.URL("pt"))
}

func TestSitemapEntries(t *testing.T) {
	entries, err := Sitemap(context.Background(), testStore(), testSite(), []string{"pt", "en"}, buildTime)
	require.NoError(t, err)

	pages := 2 + 2*len(category.All()) + 2*len(AuxiliaryPages)
	require.Len(t, entries, pages+4)

	home := entries[0]
	assert.Equal(t, "https://example.com/blog/pt", home.Location)
	assert.Equal(t, ChangeDaily, home.ChangeFreq)
	assert.Equal(t, 1.0, home.Priority)
	assert.Len(t, home.Alternates, 2)

	byLocation := map[string]SitemapEntry{}
	for _, entry := range entries[pages:] {
		byLocation[entry.Location] = entry
	}
	dune := byLocation["https://example.com/blog/en/books/dune"]
	assert.Equal(t, 0.7, dune.Priority)
	assert.Equal(t, []Alternate{
		{Locale: "pt", Href: "https://example.com/blog/pt/books/dune"},
		{Locale: "en", Href: "https://example.com/blog/en/books/dune"},
	}, dune.Alternates)

	oslo := byLocation["https://example.com/blog/en/travel/oslo"]
	assert.Len(t, oslo.Alternates, 1)
}

func TestWriteSitemap(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSitemap(&buf, []SitemapEntry{{
		Location:   "https://example.com/en/books/dune",
		LastMod:    buildTime,
		ChangeFreq: ChangeMonthly,
		Priority:   0.7,
		Alternates: []Alternate{{Locale: "en", Href: "https://example.com/en/books/dune"}},
	}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<loc>https://example.com/en/books/dune</loc>")
	assert.Contains(t, out, "<lastmod>2024-04-01T12:00:00Z</lastmod>")
	assert.Contains(t, out, "<priority>0.7</priority>")
	assert.Contains(t, out, `hreflang="en"`)
	assert.True(t, strings.HasSuffix(out, "</urlset>\n"))
}

func TestWriteRobots(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRobots(&buf, testSite()))
	assert.Contains(t, buf.String(), "Sitemap: https://example.com/blog/sitemap.xml")
}

func TestBuildFeed(t *testing.T) {
	feed, err := BuildFeed(context.Background(), testStore(), testSite(), "en", buildTime)
	require.NoError(t, err)

	assert.Equal(t, "Field Notes", feed.Title)
	assert.Equal(t, "https://example.com/blog/en/rss.xml", feed.Self)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "Oslo", feed.Items[0].Title)
	assert.Equal(t, "https://example.com/blog/en/books/dune", feed.Items[1].Link)
	assert.Equal(t, "Spice & sand", feed.Items[1].Description)

	site := testSite()
	site.FeedLimit = 1
	limited, err := BuildFeed(context.Background(), testStore(), site, "en", buildTime)
	require.NoError(t, err)
	assert.Len(t, limited.Items, 1)

	fallback, err := BuildFeed(context.Background(), testStore(), site, "pt", buildTime)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/blog", fallback.Title)
	assert.Equal(t, "Latest articles", fallback.Description)
}

func TestWriteRSSAndAtom(t *testing.T) {
	feed, err := BuildFeed(context.Background(), testStore(), testSite(), "en", buildTime)
	require.NoError(t, err)

	var rss bytes.Buffer
	require.NoError(t, WriteRSS(&rss, feed))
	assert.Contains(t, rss.String(), "<language>en-US</language>")
	assert.Contains(t, rss.String(), "<description>Sports &amp; stories</description>")
	assert.Contains(t, rss.String(), `<guid isPermaLink="true">https://example.com/blog/en/travel/oslo</guid>`)
	assert.Contains(t, rss.String(), "<category>travel</category>")

	var atom bytes.Buffer
	require.NoError(t, WriteAtom(&atom, feed))
	assert.Contains(t, atom.String(), `xml:lang="en-US"`)
	assert.Contains(t, atom.String(), "<id>https://example.com/blog/en/atom.xml</id>")
	assert.Contains(t, atom.String(), "<published>2024-03-05T00:00:00Z</published>")
}
