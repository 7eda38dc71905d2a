package scroll

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-folio/internal/timeline"
)

func TestControllerStartsAtNewestAnchor(t *testing.T) {
	source := NewMemorySource(1000, 500)
	ctrl := New(source, Options{})
	assert.True(t, ctrl.State().CanScrollNext)

	require.NoError(t, ctrl.Start())
	defer ctrl.Close()

	state := ctrl.State()
	assert.Equal(t, 1000.0, state.Position)
	assert.Equal(t, 100.0, state.Progress)
	assert.True(t, state.CanScrollPrev)
	assert.False(t, state.CanScrollNext)

	state = ctrl.Advance(Next)
	assert.Equal(t, 1000.0, state.Position)
	assert.False(t, state.CanScrollNext)
	assert.Equal(t, 1000.0, source.Position())
}

func TestControllerAdvanceSteps(t *testing.T) {
	source := NewMemorySource(1000, 500)
	ctrl := New(source, Options{Anchor: AnchorStart})
	require.NoError(t, ctrl.Start())
	defer ctrl.Close()

	state := ctrl.State()
	assert.Equal(t, 0.0, state.Position)
	assert.Equal(t, 0.0, state.Progress)
	assert.False(t, state.CanScrollPrev)
	assert.True(t, state.CanScrollNext)

	state = ctrl.Advance(Next)
	assert.Equal(t, 400.0, state.Position)
	assert.Equal(t, 40.0, state.Progress)
	assert.True(t, state.CanScrollPrev)

	state = ctrl.Advance(Prev)
	assert.Equal(t, 0.0, state.Position)

	state = ctrl.Advance(Prev)
	assert.Equal(t, 0.0, state.Position)
	assert.False(t, state.CanScrollPrev)
}

func TestControllerTolerance(t *testing.T) {
	source := NewMemorySource(1000, 500)
	ctrl := New(source, Options{Anchor: AnchorStart})
	require.NoError(t, ctrl.Start())
	defer ctrl.Close()

	source.ScrollTo(10)
	assert.False(t, ctrl.State().CanScrollPrev)
	source.ScrollTo(11)
	assert.True(t, ctrl.State().CanScrollPrev)

	source.ScrollTo(990)
	assert.False(t, ctrl.State().CanScrollNext)
	source.ScrollTo(989)
	assert.True(t, ctrl.State().CanScrollNext)
}

func TestControllerWithoutScrollableRange(t *testing.T) {
	source := NewMemorySource(0, 500)
	ctrl := New(source, Options{})
	require.NoError(t, ctrl.Start())
	defer ctrl.Close()

	state := ctrl.State()
	assert.Equal(t, 0.0, state.Progress)
	assert.False(t, state.CanScrollPrev)
	assert.False(t, state.CanScrollNext)
}

func TestComputeUsesMagnitude(t *testing.T) {
	state := compute(-500, 1000, DefaultTolerance)
	assert.Equal(t, 500.0, state.Position)
	assert.Equal(t, 50.0, state.Progress)

	state = compute(2000, 1000, DefaultTolerance)
	assert.Equal(t, 100.0, state.Progress)
}

func TestControllerHandleKey(t *testing.T) {
	source := NewMemorySource(1000, 100)
	horizontal := New(source, Options{Anchor: AnchorStart})
	require.NoError(t, horizontal.Start())
	defer horizontal.Close()

	assert.True(t, horizontal.HandleKey("ArrowRight"))
	assert.Equal(t, 80.0, horizontal.State().Position)
	assert.False(t, horizontal.HandleKey("ArrowDown"))
	assert.True(t, horizontal.HandleKey("ArrowLeft"))
	assert.Equal(t, 0.0, horizontal.State().Position)

	vertical := New(NewMemorySource(1000, 100), Options{Axis: timeline.Vertical, Anchor: AnchorStart})
	require.NoError(t, vertical.Start())
	defer vertical.Close()

	assert.False(t, vertical.HandleKey("ArrowRight"))
	assert.True(t, vertical.HandleKey("ArrowDown"))
	assert.Equal(t, 80.0, vertical.State().Position)
}

func TestControllerCloseReleasesSubscription(t *testing.T) {
	source := NewMemorySource(1000, 500)
	ctrl := New(source, Options{})
	require.NoError(t, ctrl.Start())
	require.NoError(t, ctrl.Start())
	assert.Equal(t, 1, source.Subscribers())

	var changes []State
	ctrl.OnChange(func(s State) { changes = append(changes, s) })
	source.ScrollTo(500)
	require.Len(t, changes, 1)
	assert.Equal(t, 50.0, changes[0].Progress)

	ctrl.Close()
	ctrl.Close()
	assert.Equal(t, 0, source.Subscribers())

	source.ScrollTo(0)
	assert.Equal(t, 500.0, ctrl.State().Position)
	assert.Len(t, changes, 1)
	assert.ErrorIs(t, ctrl.Start(), ErrClosed)
}

func TestControllerIgnoresInputAfterClose(t *testing.T) {
	source := NewMemorySource(1000, 500)
	ctrl := New(source, Options{Anchor: AnchorStart})
	require.NoError(t, ctrl.Start())
	ctrl.Advance(Next)
	require.Equal(t, 400.0, source.Position())

	ctrl.Close()

	state := ctrl.Advance(Next)
	assert.Equal(t, 400.0, source.Position(), "a closed controller must not move the viewport")
	assert.Equal(t, 400.0, state.Position)
	assert.False(t, ctrl.HandleKey("ArrowLeft"))
	assert.Equal(t, 400.0, source.Position())

	source.ScrollTo(0)
	assert.Equal(t, 400.0, ctrl.Recompute().Position)
}

func TestControllerConcurrentEvents(t *testing.T) {
	source := NewMemorySource(10000, 100)
	ctrl := New(source, Options{Anchor: AnchorStart})
	require.NoError(t, ctrl.Start())
	defer ctrl.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctrl.Advance(Next)
		}()
	}
	wg.Wait()

	state := ctrl.Recompute()
	assert.GreaterOrEqual(t, state.Progress, 0.0)
	assert.LessOrEqual(t, state.Progress, 100.0)
	assert.Equal(t, source.Position(), state.Position)
}

func TestResizeKeepsPositionInRange(t *testing.T) {
	source := NewMemorySource(1000, 500)
	ctrl := New(source, Options{})
	require.NoError(t, ctrl.Start())
	defer ctrl.Close()

	source.Resize(600, 400)
	state := ctrl.State()
	assert.Equal(t, 600.0, state.Position)
	assert.Equal(t, 100.0, state.Progress)
}
