package publish

import (
	"strings"
)

// Site describes the published site. Titles and Descriptions are keyed by
// locale.
type Site struct {
	BaseURL      string
	Titles       map[string]string
	Descriptions map[string]string
	// FeedLimit caps feed items; zero keeps every article.
	FeedLimit int
}

func (s Site) base() string {
	trimmed := strings.TrimRight(strings.TrimSpace(s.BaseURL), "/")
	if trimmed == "" {
		return "http://localhost"
	}
	return trimmed
}

// URL joins the route segments onto the base URL.
func (s Site) URL(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment = strings.Trim(strings.TrimSpace(segment), "/"); segment != "" {
			parts = append(parts, segment)
		}
	}
	if len(parts) == 0 {
		return s.base()
	}
	return s.base() + "/" + strings.Join(parts, "/")
}

func (s Site) title(locale string) string {
	if title := strings.TrimSpace(s.Titles[locale]); title != "" {
		return title
	}
	return s.base()
}

func (s Site) description(locale string) string {
	if desc := strings.TrimSpace(s.Descriptions[locale]); desc != "" {
		return desc
	}
	return "Latest articles"
}

// languageTag maps a route locale to the language advertised in feeds.
func languageTag(locale string) string {
	switch locale {
	case "pt":
		return "pt-PT"
	case "en":
		return "en-US"
	default:
		return locale
	}
}
