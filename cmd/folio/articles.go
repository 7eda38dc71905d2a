package main

import (
	"github.com/spf13/cobra"

	articlescmd "github.com/goliatone/go-folio/internal/commands/articles"
)

func newPreviewCommand(a *app) *cobra.Command {
	var locale string
	var showHTML bool
	cmd := &cobra.Command{
		Use:   "preview <category> <slug>",
		Short: "Show one article with its category details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.handlers.Preview.Execute(cmd.Context(), articlescmd.PreviewArticleCommand{
				Category: args[0],
				Slug:     args[1],
				Locale:   a.locale(locale),
				ShowHTML: showHTML,
			})
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "article locale (default is content.default_locale)")
	cmd.Flags().BoolVar(&showHTML, "html", false, "include the rendered body")
	return cmd
}

func newListCommand(a *app) *cobra.Command {
	var (
		locale   string
		tags     []string
		sort     string
		limit    int
		failures bool
	)
	cmd := &cobra.Command{
		Use:     "list <category>",
		Aliases: []string{"ls"},
		Short:   "List the articles of a category",
		Long: `List the articles of a category newest first.

Examples:
  folio list books                     # default locale
  folio list books --locale all        # both languages
  folio list movies --tag scifi,horror # any of the tags
  folio list travel --failures         # report broken documents`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.handlers.List.Execute(cmd.Context(), articlescmd.ListArticlesCommand{
				Category:     args[0],
				Locale:       a.locale(locale),
				Tags:         tags,
				Sort:         sort,
				Limit:        limit,
				ShowFailures: failures,
			})
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale or \"all\" (default is content.default_locale)")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "keep articles carrying any of the tags")
	cmd.Flags().StringVar(&sort, "sort", "latest", "latest or oldest")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of articles, 0 for all")
	cmd.Flags().BoolVar(&failures, "failures", false, "list broken documents instead of failing")
	return cmd
}

func newLatestCommand(a *app) *cobra.Command {
	var (
		category string
		locale   string
		tags     []string
		sort     string
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "latest",
		Short: "List the newest articles across categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.handlers.Latest.Execute(cmd.Context(), articlescmd.LatestArticlesCommand{
				Category: category,
				Locale:   locale,
				Tags:     tags,
				Sort:     sort,
				Limit:    limit,
			})
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "restrict to one category")
	cmd.Flags().StringVarP(&locale, "locale", "l", "all", "locale or \"all\"")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "keep articles carrying any of the tags")
	cmd.Flags().StringVar(&sort, "sort", "latest", "latest or oldest")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of articles (default is one page)")
	return cmd
}

func newRelatedCommand(a *app) *cobra.Command {
	var locale string
	var limit int
	cmd := &cobra.Command{
		Use:   "related <category> <slug>",
		Short: "Rank the articles sharing tags with one article",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.handlers.Related.Execute(cmd.Context(), articlescmd.RelatedArticlesCommand{
				Category: args[0],
				Slug:     args[1],
				Locale:   a.locale(locale),
				Limit:    limit,
			})
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "article locale (default is content.default_locale)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of related articles (default is related.limit)")
	return cmd
}

func newTimelineCommand(a *app) *cobra.Command {
	var locale, axis string
	var window int
	var skipFailed bool
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Group the most recent articles by month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.handlers.Timeline.Execute(cmd.Context(), articlescmd.TimelineCommand{
				Locale:     a.locale(locale),
				WindowSize: window,
				Axis:       axis,
				SkipFailed: skipFailed,
			})
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "timeline locale (default is content.default_locale)")
	cmd.Flags().IntVar(&window, "window", 0, "number of articles on the timeline (default is timeline.window_size)")
	cmd.Flags().StringVar(&axis, "axis", "", "horizontal or vertical (default is timeline.axis)")
	cmd.Flags().BoolVar(&skipFailed, "skip-failed", false, "leave broken documents off the timeline")
	return cmd
}

func newPathsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths <category>",
		Short: "List the routes generated for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.handlers.Paths.Execute(cmd.Context(), articlescmd.ListPathsCommand{Category: args[0]})
		},
	}
}

func newTagsCommand(a *app) *cobra.Command {
	var category, locale string
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the tags used by a listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.handlers.Tags.Execute(cmd.Context(), articlescmd.ListTagsCommand{
				Category: category,
				Locale:   locale,
			})
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "restrict to one category")
	cmd.Flags().StringVarP(&locale, "locale", "l", "all", "locale or \"all\"")
	return cmd
}
