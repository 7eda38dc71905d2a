package commands

import (
	"strings"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

const (
	commandLoggerRoot = "folio.commands"
	defaultCommandSet = "articles"
)

// CommandLogger scopes a logger to one command set, e.g. folio.commands.articles.
// Entries carry the set name so CLI runs can be filtered per set.
func CommandLogger(provider interfaces.LoggerProvider, set string) interfaces.Logger {
	set = strings.ToLower(strings.TrimSpace(set))
	if set == "" {
		set = defaultCommandSet
	}
	return logging.WithFields(logging.ModuleLogger(provider, commandLoggerRoot+"."+set), map[string]any{
		"command_set": set,
	})
}
