package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/logging/console"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 14, 15, 9, 26, 535897000, time.UTC)
}

func TestConsoleLoggerWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: fixedClock,
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("folio.content")
	logger = logging.WithFields(logger, map[string]any{"module": "folio.content"})
	ctx := logging.ContextWithFields(context.Background(), map[string]any{"build": "b-42"})
	logger = logger.WithContext(ctx)

	logger.Info("content.article.loaded",
		"slug", "dune",
		"date", time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
		"reading_time", 7,
	)

	got := strings.TrimSpace(buf.String())
	want := "2024-03-14T15:09:26.535897Z INFO content.article.loaded build=b-42 date=2024-03-15T08:00:00Z logger=folio.content module=folio.content reading_time=7 slug=dune"
	assert.Equal(t, want, got)
}

func TestConsoleLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelInfo
	provider := console.NewProvider(console.Options{Writer: &buf, MinLevel: &minLevel})

	logger := provider.GetLogger("folio.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "included.info")
}

func TestConsoleLoggerQuotesAndPositionalFields(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{Writer: &buf, TimeFunc: fixedClock})

	provider.GetLogger("folio.test").Warn("content.skip",
		"error", errors.New("bad front matter"),
		42, "orphan-value",
		"dangling",
	)

	got := strings.TrimSpace(buf.String())
	assert.Contains(t, got, `error="bad front matter"`)
	assert.Contains(t, got, "field_1=orphan-value")
	assert.Contains(t, got, "field_2=dangling")
}

func TestConsoleLoggerColorLabels(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{Writer: &buf, TimeFunc: fixedClock, Color: true})

	provider.GetLogger("folio.test").Error("boom")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "ERROR")
}

func TestParseLevel(t *testing.T) {
	level, ok := console.ParseLevel(" Warning ")
	require.True(t, ok)
	assert.Equal(t, console.LevelWarn, level)

	_, ok = console.ParseLevel("loud")
	assert.False(t, ok)
}
