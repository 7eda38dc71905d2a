package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	folio "github.com/goliatone/go-folio"
	articlescmd "github.com/goliatone/go-folio/internal/commands/articles"
)

type app struct {
	out io.Writer

	cfgFile    string
	envFiles   []string
	contentDir string
	format     string
	noColor    bool
	logLevel   string

	cfg      folio.Config
	module   *folio.Module
	handlers *folio.CommandHandlers
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "folio",
		Short: "Inspect a folio content tree",
		Long: `folio reads the <category>/<locale>/<slug>.mdx tree of a personal site and
prints previews, listings, related articles, timelines and routes.

Example usage:
  folio preview books dune --locale en
  folio list books --locale all --tag scifi --sort oldest
  folio latest --limit 12
  folio related books dune --locale en
  folio timeline --locale pt --axis vertical
  folio paths travel
  folio feed --locale en > feed.xml`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./folio.{yaml,toml,json})")
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files loaded before reading FOLIO_* variables (default .env)")
	flags.StringVar(&a.contentDir, "content-dir", "", "content root, overrides content.dir")
	flags.StringVarP(&a.format, "format", "o", "table", "output format: table, json or yaml")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored table output")
	flags.StringVar(&a.logLevel, "log-level", "", "enable logging at the given level")

	root.AddCommand(
		newPreviewCommand(a),
		newListCommand(a),
		newLatestCommand(a),
		newRelatedCommand(a),
		newTimelineCommand(a),
		newPathsCommand(a),
		newTagsCommand(a),
		newSitemapCommand(a),
		newFeedCommand(a),
	)
	return root
}

func (a *app) init() error {
	cfg, err := folio.LoadConfig(folio.LoadOptions{ConfigFile: a.cfgFile, EnvFiles: a.envFiles})
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.contentDir != "" {
		cfg.Content.Dir = a.contentDir
	}
	if level := strings.TrimSpace(a.logLevel); level != "" {
		cfg.Features.Logger = true
		cfg.Logging.Level = level
	}

	format, err := articlescmd.ParseFormat(a.format)
	if err != nil {
		return err
	}

	module, err := folio.New(cfg)
	if err != nil {
		return fmt.Errorf("building module: %w", err)
	}

	useColors := !a.noColor && !color.NoColor && format == articlescmd.FormatTable
	handlers, err := module.Commands(articlescmd.NewWriterPresenter(a.out, format, useColors), nil)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.module = module
	a.handlers = handlers
	module.Logger("folio.cli").Debug("cli.config.loaded",
		"content_dir", cfg.Content.Dir,
		"locales", cfg.Content.Locales,
		"format", string(format),
	)
	return nil
}

// locale falls back to the configured default locale.
func (a *app) locale(value string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}
	if a.cfg.Content.DefaultLocale != "" {
		return a.cfg.Content.DefaultLocale
	}
	return a.cfg.Content.Locales[0]
}
