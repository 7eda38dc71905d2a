package publish

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/goliatone/go-folio/internal/category"
	"github.com/goliatone/go-folio/internal/content"
)

// FeedItem is one article of a feed.
type FeedItem struct {
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Link        string            `json:"link" yaml:"link"`
	Published   time.Time         `json:"published" yaml:"published"`
	Category    category.Category `json:"category" yaml:"category"`
}

// Feed is the newest-first article feed of one locale.
type Feed struct {
	Locale      string     `json:"locale" yaml:"locale"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Link        string     `json:"link" yaml:"link"`
	Self        string     `json:"self" yaml:"self"`
	Updated     time.Time  `json:"updated" yaml:"updated"`
	Items       []FeedItem `json:"items" yaml:"items"`
}

// BuildFeed collects every article of locale across categories.
func BuildFeed(ctx context.Context, store content.Store, site Site, locale string, now time.Time) (Feed, error) {
	items, err := store.ListAllWithCategory(ctx, locale)
	if err != nil {
		return Feed{}, err
	}
	if site.FeedLimit > 0 && len(items) > site.FeedLimit {
		items = items[:site.FeedLimit]
	}

	feed := Feed{
		Locale:      locale,
		Title:       site.title(locale),
		Description: site.description(locale),
		Link:        site.URL(locale),
		Self:        site.URL(locale, "rss.xml"),
		Updated:     now,
		Items:       make([]FeedItem, 0, len(items)),
	}
	for _, item := range items {
		feed.Items = append(feed.Items, FeedItem{
			Title:       item.Title,
			Description: normalizeWhitespace(item.Excerpt),
			Link:        site.URL(item.Locale, string(item.Category), item.Slug),
			Published:   item.Date,
			Category:    item.Category,
		})
	}
	return feed, nil
}

// WriteRSS renders feed as RSS 2.0.
func WriteRSS(w io.Writer, feed Feed) error {
	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">` + "\n")
	builder.WriteString("  <channel>\n")
	fmt.Fprintf(&builder, "    <title>%s</title>\n", escape(feed.Title))
	fmt.Fprintf(&builder, "    <link>%s</link>\n", escape(feed.Link))
	fmt.Fprintf(&builder, "    <description>%s</description>\n", escape(feed.Description))
	fmt.Fprintf(&builder, "    <language>%s</language>\n", escape(languageTag(feed.Locale)))
	fmt.Fprintf(&builder, "    <lastBuildDate>%s</lastBuildDate>\n", feed.Updated.UTC().Format(time.RFC1123Z))
	fmt.Fprintf(&builder, `    <atom:link href="%s" rel="self" type="application/rss+xml"/>`+"\n", escape(feed.Self))
	for _, item := range feed.Items {
		builder.WriteString("    <item>\n")
		fmt.Fprintf(&builder, "      <title>%s</title>\n", escape(item.Title))
		if item.Description != "" {
			fmt.Fprintf(&builder, "      <description>%s</description>\n", escape(item.Description))
		}
		fmt.Fprintf(&builder, "      <link>%s</link>\n", escape(item.Link))
		fmt.Fprintf(&builder, `      <guid isPermaLink="true">%s</guid>`+"\n", escape(item.Link))
		fmt.Fprintf(&builder, "      <pubDate>%s</pubDate>\n", item.Published.UTC().Format(time.RFC1123Z))
		fmt.Fprintf(&builder, "      <category>%s</category>\n", escape(string(item.Category)))
		builder.WriteString("    </item>\n")
	}
	builder.WriteString("  </channel>\n")
	builder.WriteString("</rss>\n")
	_, err := io.WriteString(w, builder.String())
	return err
}

// WriteAtom renders feed as an Atom 1.0 document.
func WriteAtom(w io.Writer, feed Feed) error {
	self := strings.TrimSuffix(feed.Self, "rss.xml") + "atom.xml"

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&builder, `<feed xmlns="http://www.w3.org/2005/Atom" xml:lang="%s">`+"\n", escape(languageTag(feed.Locale)))
	fmt.Fprintf(&builder, "  <id>%s</id>\n", escape(self))
	fmt.Fprintf(&builder, "  <title>%s</title>\n", escape(feed.Title))
	fmt.Fprintf(&builder, "  <subtitle>%s</subtitle>\n", escape(feed.Description))
	fmt.Fprintf(&builder, "  <updated>%s</updated>\n", feed.Updated.UTC().Format(time.RFC3339))
	fmt.Fprintf(&builder, `  <link rel="alternate" href="%s"/>`+"\n", escape(feed.Link))
	fmt.Fprintf(&builder, `  <link rel="self" href="%s"/>`+"\n", escape(self))
	for _, item := range feed.Items {
		builder.WriteString("  <entry>\n")
		fmt.Fprintf(&builder, "    <id>%s</id>\n", escape(item.Link))
		fmt.Fprintf(&builder, "    <title>%s</title>\n", escape(item.Title))
		fmt.Fprintf(&builder, `    <link href="%s"/>`+"\n", escape(item.Link))
		fmt.Fprintf(&builder, "    <published>%s</published>\n", item.Published.UTC().Format(time.RFC3339))
		fmt.Fprintf(&builder, "    <updated>%s</updated>\n", item.Published.UTC().Format(time.RFC3339))
		fmt.Fprintf(&builder, `    <category term="%s"/>`+"\n", escape(string(item.Category)))
		if item.Description != "" {
			fmt.Fprintf(&builder, "    <summary>%s</summary>\n", escape(item.Description))
		}
		builder.WriteString("  </entry>\n")
	}
	builder.WriteString("</feed>\n")
	_, err := io.WriteString(w, builder.String())
	return err
}

func normalizeWhitespace(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

func escape(value string) string {
	return html.EscapeString(value)
}
