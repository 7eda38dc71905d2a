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

// Change frequencies advertised per kind of page.
const (
	ChangeDaily   = "daily"
	ChangeWeekly  = "weekly"
	ChangeMonthly = "monthly"
)

// AuxiliaryPages are the static pages published in every locale.
var AuxiliaryPages = []string{"about", "contact"}

// Alternate links one page to its translation.
type Alternate struct {
	Locale string `json:"locale" yaml:"locale"`
	Href   string `json:"href" yaml:"href"`
}

// SitemapEntry is one <url> of the sitemap.
type SitemapEntry struct {
	Location   string      `json:"location" yaml:"location"`
	LastMod    time.Time   `json:"lastMod" yaml:"lastMod"`
	ChangeFreq string      `json:"changeFreq" yaml:"changeFreq"`
	Priority   float64     `json:"priority" yaml:"priority"`
	Alternates []Alternate `json:"alternates,omitempty" yaml:"alternates,omitempty"`
}

// Sitemap lists the home, category, auxiliary and article pages of every
// locale. Articles only link to the translations that exist under the same
// slug.
func Sitemap(ctx context.Context, store content.Store, site Site, locales []string, now time.Time) ([]SitemapEntry, error) {
	var entries []SitemapEntry
	page := func(freq string, priority float64, segments ...string) {
		for _, locale := range locales {
			entries = append(entries, SitemapEntry{
				Location:   site.URL(append([]string{locale}, segments...)...),
				LastMod:    now,
				ChangeFreq: freq,
				Priority:   priority,
				Alternates: alternates(site, locales, segments...),
			})
		}
	}

	page(ChangeDaily, 1.0)
	for _, cat := range category.All() {
		page(ChangeWeekly, 0.8, string(cat))
	}
	for _, name := range AuxiliaryPages {
		page(ChangeMonthly, 0.6, name)
	}

	for _, cat := range category.All() {
		paths, err := store.ListAllPaths(ctx, cat)
		if err != nil {
			return nil, err
		}
		translations := map[string][]string{}
		for _, p := range paths {
			translations[p.Slug] = append(translations[p.Slug], p.Locale)
		}
		for _, p := range paths {
			entries = append(entries, SitemapEntry{
				Location:   site.URL(p.Locale, string(cat), p.Slug),
				LastMod:    now,
				ChangeFreq: ChangeMonthly,
				Priority:   0.7,
				Alternates: alternates(site, translations[p.Slug], string(cat), p.Slug),
			})
		}
	}
	return entries, nil
}

func alternates(site Site, locales []string, segments ...string) []Alternate {
	out := make([]Alternate, 0, len(locales))
	for _, locale := range locales {
		out = append(out, Alternate{Locale: locale, Href: site.URL(append([]string{locale}, segments...)...)})
	}
	return out
}

// WriteSitemap renders entries as a sitemaps.org urlset with xhtml
// alternate links.
func WriteSitemap(w io.Writer, entries []SitemapEntry) error {
	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9" xmlns:xhtml="http://www.w3.org/1999/xhtml">` + "\n")
	for _, entry := range entries {
		builder.WriteString("  <url>\n")
		fmt.Fprintf(&builder, "    <loc>%s</loc>\n", html.EscapeString(entry.Location))
		if !entry.LastMod.IsZero() {
			fmt.Fprintf(&builder, "    <lastmod>%s</lastmod>\n", entry.LastMod.UTC().Format(time.RFC3339))
		}
		if entry.ChangeFreq != "" {
			fmt.Fprintf(&builder, "    <changefreq>%s</changefreq>\n", entry.ChangeFreq)
		}
		fmt.Fprintf(&builder, "    <priority>%.1f</priority>\n", entry.Priority)
		for _, alt := range entry.Alternates {
			fmt.Fprintf(&builder, `    <xhtml:link rel="alternate" hreflang="%s" href="%s"/>`+"\n",
				html.EscapeString(alt.Locale), html.EscapeString(alt.Href))
		}
		builder.WriteString("  </url>\n")
	}
	builder.WriteString("</urlset>\n")
	_, err := io.WriteString(w, builder.String())
	return err
}

// WriteRobots renders a robots.txt allowing everything and pointing at the
// sitemap.
func WriteRobots(w io.Writer, site Site) error {
	_, err := fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s\n", site.URL("sitemap.xml"))
	return err
}
