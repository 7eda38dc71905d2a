package content

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-folio/internal/category"
)

// PageSize is the number of listing items revealed per "load more" step.
const PageSize = 12

// SortOrder selects the date direction of a listing.
type SortOrder string

const (
	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"
)

// LocaleAll disables locale filtering in a Query.
const LocaleAll = "all"

// ParseSortOrder maps a user-supplied value to a SortOrder.
func ParseSortOrder(value string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(value))) {
	case "", SortLatest:
		return SortLatest, nil
	case SortOldest:
		return SortOldest, nil
	default:
		return "", fmt.Errorf("content: unknown sort order %q", value)
	}
}

// Query narrows and orders a listing for an index view.
type Query struct {
	Category category.Category
	// Locale keeps items of one locale; empty or LocaleAll keeps every locale.
	Locale string
	// Tags keeps items carrying at least one of the given tags.
	Tags []string
	Sort SortOrder
	// Limit caps the returned items; zero returns everything.
	Limit int
}

// QueryResult is one page of a filtered listing.
type QueryResult struct {
	Items   []ListingItem
	Total   int
	HasMore bool
}

// Apply filters, sorts and truncates items without modifying them.
func (q Query) Apply(items []ListingItem) QueryResult {
	filtered := make([]ListingItem, 0, len(items))
	for _, item := range items {
		if q.matches(item) {
			filtered = append(filtered, item)
		}
	}

	if q.Sort == SortOldest {
		slices.SortStableFunc(filtered, func(a, b ListingItem) int {
			return a.Date.Compare(b.Date)
		})
	} else {
		SortByDate(filtered)
	}

	total := len(filtered)
	if q.Limit > 0 && q.Limit < total {
		filtered = filtered[:q.Limit]
	}
	return QueryResult{Items: filtered, Total: total, HasMore: len(filtered) < total}
}

func (q Query) matches(item ListingItem) bool {
	if q.Category != "" && item.Category != q.Category {
		return false
	}
	if q.Locale != "" && q.Locale != LocaleAll && item.Locale != q.Locale {
		return false
	}
	if len(q.Tags) == 0 {
		return true
	}
	return slices.ContainsFunc(item.Tags, func(tag string) bool {
		return slices.Contains(q.Tags, tag)
	})
}

// NextLimit grows a limit by one page.
func NextLimit(limit int) int {
	if limit < 0 {
		limit = 0
	}
	return limit + PageSize
}

// Tags returns the sorted set of tags used across items.
func Tags(items []ListingItem) []string {
	seen := map[string]struct{}{}
	var tags []string
	for _, item := range items {
		for _, tag := range item.Tags {
			if _, ok := seen[tag]; ok || tag == "" {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	slices.Sort(tags)
	return tags
}
