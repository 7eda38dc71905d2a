package content

import "slices"

// SortByDate orders items newest first. Items sharing a date keep their
// relative order.
func SortByDate(items []ListingItem) {
	slices.SortStableFunc(items, func(a, b ListingItem) int {
		return b.Date.Compare(a.Date)
	})
}

// SortArticlesByDate is SortByDate for full articles.
func SortArticlesByDate(articles []*Article) {
	slices.SortStableFunc(articles, func(a, b *Article) int {
		return b.Frontmatter.Date.Compare(a.Frontmatter.Date)
	})
}
