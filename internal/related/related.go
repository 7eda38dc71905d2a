// Package related ranks articles by how many tags they share with a
// reference article.
package related

import (
	"slices"

	"github.com/goliatone/go-folio/internal/category"
	"github.com/goliatone/go-folio/internal/content"
)

// DefaultLimit is the number of related items returned when no limit is given.
const DefaultLimit = 3

// Candidate is the view of an item the ranker needs.
type Candidate struct {
	Slug     string
	Category category.Category
	Tags     []string
}

// Rank returns up to limit candidates that share at least one tag with
// current, most shared tags first. current is excluded by slug and, when it
// has a category, only candidates of the same category are kept. Candidates
// with equal scores keep their input order. A current item without tags has
// no related items. limit <= 0 selects DefaultLimit.
func Rank[T any](current T, candidates []T, limit int, key func(T) Candidate) []T {
	if limit <= 0 {
		limit = DefaultLimit
	}
	ref := key(current)
	if len(ref.Tags) == 0 {
		return []T{}
	}

	type scored struct {
		item   T
		shared int
	}
	ranked := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		c := key(candidate)
		if c.Slug == ref.Slug {
			continue
		}
		if ref.Category != "" && c.Category != ref.Category {
			continue
		}
		if shared := sharedTags(ref.Tags, c.Tags); shared > 0 {
			ranked = append(ranked, scored{item: candidate, shared: shared})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return b.shared - a.shared
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]T, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.item)
	}
	return out
}

// sharedTags returns the size of the intersection of the two tag sets.
// Repeated tags count once.
func sharedTags(reference, candidate []string) int {
	seen := make(map[string]struct{}, len(candidate))
	for _, tag := range candidate {
		if slices.Contains(reference, tag) {
			seen[tag] = struct{}{}
		}
	}
	return len(seen)
}

// Articles ranks full articles.
func Articles(current *content.Article, candidates []*content.Article, limit int) []*content.Article {
	return Rank(current, candidates, limit, func(a *content.Article) Candidate {
		return Candidate{Slug: a.Slug, Category: a.Category, Tags: a.Frontmatter.Tags}
	})
}

// Listings ranks listing items.
func Listings(current content.ListingItem, candidates []content.ListingItem, limit int) []content.ListingItem {
	return Rank(current, candidates, limit, func(item content.ListingItem) Candidate {
		return Candidate{Slug: item.Slug, Category: item.Category, Tags: item.Tags}
	})
}
