package logging

import (
	"context"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	r.fields = append(r.fields, maps.Clone(fields))
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "folio.test")
	_, ok := logger.(noopLogger)
	require.True(t, ok, "expected noopLogger fallback, got %T", logger)

	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerAnnotatesModuleField(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	ModuleLogger(provider, contentModule).Info("with provider")

	require.Equal(t, []string{contentModule}, provider.requested)
	require.Len(t, rec.fields, 1)
	assert.Equal(t, contentModule, rec.fields[0]["module"])
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	ModuleLogger(provider, "")

	require.Equal(t, []string{rootModule}, provider.requested)
	assert.Equal(t, rootModule, rec.fields[0]["module"])
}

func TestScopedLoggersRequestTheirModules(t *testing.T) {
	cases := map[string]func(interfaces.LoggerProvider) interfaces.Logger{
		contentModule:  ContentLogger,
		markdownModule: MarkdownLogger,
		timelineModule: TimelineLogger,
		scrollModule:   ScrollLogger,
	}
	for module, build := range cases {
		provider := &stubProvider{logger: &recordingLogger{}}
		build(provider)
		assert.Equal(t, []string{module}, provider.requested)
	}
}

func TestWithDocumentContextSkipsBlankValues(t *testing.T) {
	rec := &recordingLogger{}

	WithDocumentContext(rec, "books", " ", "dune")

	require.Len(t, rec.fields, 1)
	assert.Equal(t, map[string]any{"category": "books", "slug": "dune"}, rec.fields[0])
}

func TestContextFieldsMergeAndCopy(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"build": "a"})
	ctx = ContextWithFields(ctx, map[string]any{"locale": "pt"})

	fields := ContextFields(ctx)
	assert.Equal(t, map[string]any{"build": "a", "locale": "pt"}, fields)

	fields["build"] = "mutated"
	assert.Equal(t, "a", ContextFields(ctx)["build"])
	assert.Nil(t, ContextFields(context.Background()))
}
