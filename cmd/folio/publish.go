package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-folio/internal/publish"
)

var now = time.Now

func newSitemapCommand(a *app) *cobra.Command {
	var robots bool
	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Print the sitemap.xml of the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if robots {
				return publish.WriteRobots(a.out, a.module.Site())
			}
			entries, err := a.module.Sitemap(cmd.Context(), now())
			if err != nil {
				return err
			}
			return publish.WriteSitemap(a.out, entries)
		},
	}
	cmd.Flags().BoolVar(&robots, "robots", false, "print robots.txt instead")
	return cmd
}

func newFeedCommand(a *app) *cobra.Command {
	var locale string
	var atom bool
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Print the RSS feed of a locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			feed, err := a.module.Feed(cmd.Context(), a.locale(locale), now())
			if err != nil {
				return err
			}
			if atom {
				return publish.WriteAtom(a.out, feed)
			}
			return publish.WriteRSS(a.out, feed)
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "feed locale (default is content.default_locale)")
	cmd.Flags().BoolVar(&atom, "atom", false, "print an Atom feed instead of RSS")
	return cmd
}
