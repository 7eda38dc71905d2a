package articlescmd

import (
	"errors"

	"github.com/goliatone/go-folio/internal/commands"
	"github.com/goliatone/go-folio/internal/content"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the article command handlers produced by RegisterArticleCommands.
type HandlerSet struct {
	Preview  *PreviewHandler
	List     *ListHandler
	Latest   *LatestHandler
	Related  *RelatedHandler
	Timeline *TimelineHandler
	Paths    *PathsHandler
	Tags     *TagsHandler
}

// RegisterArticleCommands builds the article handlers and registers them with reg when it is
// not nil.
func RegisterArticleCommands(reg CommandRegistry, store content.Store, out Presenter, provider interfaces.LoggerProvider, defaults Defaults) (*HandlerSet, error) {
	if store == nil {
		return nil, errors.New("articles command registration: store is nil")
	}
	if out == nil {
		return nil, ErrPresenterRequired
	}

	logger := commands.CommandLogger(provider, "articles")
	set := &HandlerSet{
		Preview:  NewPreviewHandler(store, out, logger),
		List:     NewListHandler(store, out, logger),
		Latest:   NewLatestHandler(store, out, logger),
		Related:  NewRelatedHandler(store, out, logger, defaults),
		Timeline: NewTimelineHandler(store, out, logger, defaults),
		Paths:    NewPathsHandler(store, out, logger),
		Tags:     NewTagsHandler(store, out, logger),
	}

	if reg != nil {
		for _, handler := range []any{set.Preview, set.List, set.Latest, set.Related, set.Timeline, set.Paths, set.Tags} {
			if err := reg.RegisterCommand(handler); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}
