package image_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wiiktor22/expo/events"
	ImageEvent "github.com/Wiiktor22/expo/events/imageevent"
	"github.com/Wiiktor22/expo/image"
	"github.com/Wiiktor22/expo/log"
)

var lifecycle = []string{
	ImageEvent.LOAD_START,
	ImageEvent.LOAD,
	ImageEvent.LOAD_END,
	ImageEvent.PROGRESS,
	ImageEvent.ERROR,
	ImageEvent.PARTIAL_LOAD,
}

// recorder collects the lifecycle events of an emitter in dispatch order
type recorder struct {
	types    []string
	ratios   []float64
	attempts []string
}

func (me *recorder) listen(emitter *image.EventEmitter) {
	for _, typ := range lifecycle {
		emitter.AddEventListener(typ, events.NewListener(func(e *ImageEvent.ImageEvent) {
			me.types = append(me.types, e.Type)
			me.attempts = append(me.attempts, e.Attempt)
			if e.Type == ImageEvent.PROGRESS {
				me.ratios = append(me.ratios, e.Ratio)
			}
		}, -1))
	}
}

func newEmitter(t *testing.T) (*image.EventEmitter, *recorder) {
	t.Helper()

	factory := log.NewDefaultLoggerFactory("", "error")
	require.NotNil(t, factory)

	emitter := image.NewEventEmitter(factory.NewLogger("test"))
	rec := new(recorder)
	rec.listen(emitter)

	return emitter, rec
}

func TestSuccessSequence(t *testing.T) {
	emitter, rec := newEmitter(t)

	emitter.OnLoadStart()
	emitter.OnProgress(0.3)
	emitter.OnProgress(0.7)
	emitter.OnLoad()
	emitter.OnLoadEnd()

	assert.Equal(t, []string{
		ImageEvent.LOAD_START,
		ImageEvent.PROGRESS,
		ImageEvent.PROGRESS,
		ImageEvent.LOAD,
		ImageEvent.LOAD_END,
	}, rec.types)
	assert.Equal(t, []float64{0.3, 0.7}, rec.ratios)

	// One attempt id across the whole sequence.
	for _, attempt := range rec.attempts {
		assert.Equal(t, rec.attempts[0], attempt)
	}
	assert.NotEmpty(t, rec.attempts[0])
}

func TestFailureSequence(t *testing.T) {
	emitter, rec := newEmitter(t)

	emitter.OnLoadStart()
	emitter.OnError()
	emitter.OnLoadEnd()

	assert.Equal(t, []string{
		ImageEvent.LOAD_START,
		ImageEvent.ERROR,
		ImageEvent.LOAD_END,
	}, rec.types)
}

func TestTerminalsMutuallyExclusive(t *testing.T) {
	emitter, rec := newEmitter(t)

	emitter.OnLoadStart()
	emitter.OnLoad()
	emitter.OnError()
	emitter.OnLoadEnd()

	assert.NotContains(t, rec.types, ImageEvent.ERROR)

	emitter, rec = newEmitter(t)

	emitter.OnLoadStart()
	emitter.OnError()
	emitter.OnLoad()
	emitter.OnLoadEnd()

	assert.NotContains(t, rec.types, ImageEvent.LOAD)
}

func TestLoadEndRequiresTerminal(t *testing.T) {
	emitter, rec := newEmitter(t)

	emitter.OnLoadStart()
	emitter.OnLoadEnd()

	assert.NotContains(t, rec.types, ImageEvent.LOAD_END)
	assert.Equal(t, image.STATE_LOADING, emitter.ReadyState())
}

func TestLoadEndExactlyOnce(t *testing.T) {
	emitter, rec := newEmitter(t)

	emitter.OnLoadStart()
	emitter.OnLoad()
	emitter.OnLoadEnd()
	emitter.OnLoadEnd()

	ends := 0
	for _, typ := range rec.types {
		if typ == ImageEvent.LOAD_END {
			ends++
		}
	}
	assert.Equal(t, 1, ends)
}

func TestEventsRequireOpenAttempt(t *testing.T) {
	emitter, rec := newEmitter(t)

	emitter.OnProgress(0.5)
	emitter.OnPartialLoad()
	emitter.OnLoad()
	emitter.OnError()
	emitter.OnLoadEnd()

	assert.Empty(t, rec.types)
}

func TestLoadStartAtMostOncePerAttempt(t *testing.T) {
	emitter, rec := newEmitter(t)

	emitter.OnLoadStart()
	emitter.OnLoadStart()

	assert.Equal(t, []string{ImageEvent.LOAD_START}, rec.types)
}

func TestProgressClampedAndMonotonic(t *testing.T) {
	emitter, rec := newEmitter(t)

	emitter.OnLoadStart()
	emitter.OnProgress(0.5)
	emitter.OnProgress(0.2)
	emitter.OnProgress(1.5)

	assert.Equal(t, []float64{0.5, 0.5, 1}, rec.ratios)
}

func TestConcurrentProgressDeliveredInOrder(t *testing.T) {
	emitter, rec := newEmitter(t)

	emitter.OnLoadStart()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				emitter.OnProgress(float64(g*25+i) / 250)
			}
		}()
	}
	wg.Wait()

	require.NotEmpty(t, rec.ratios)
	for i := 1; i < len(rec.ratios); i++ {
		assert.GreaterOrEqual(t, rec.ratios[i], rec.ratios[i-1])
	}
}

func TestPartialLoadAtMostOnce(t *testing.T) {
	emitter, rec := newEmitter(t)

	emitter.OnLoadStart()
	emitter.OnPartialLoad()
	emitter.OnPartialLoad()
	emitter.OnLoad()
	emitter.OnPartialLoad()

	partials := 0
	for _, typ := range rec.types {
		if typ == ImageEvent.PARTIAL_LOAD {
			partials++
		}
	}
	assert.Equal(t, 1, partials)
}

func TestSecondAttempt(t *testing.T) {
	emitter, rec := newEmitter(t)

	emitter.OnLoadStart()
	emitter.OnError()
	emitter.OnLoadEnd()

	first := rec.attempts[0]

	emitter.OnLoadStart()
	emitter.OnProgress(1)
	emitter.OnLoad()
	emitter.OnLoadEnd()

	assert.Len(t, rec.types, 7)
	assert.NotEqual(t, first, rec.attempts[len(rec.attempts)-1])
	assert.Equal(t, image.STATE_IDLE, emitter.ReadyState())
}

func TestDisposedEmitterDropsEverything(t *testing.T) {
	emitter, rec := newEmitter(t)

	emitter.Dispose()
	emitter.OnLoadStart()
	emitter.OnLoad()
	emitter.OnLoadEnd()

	assert.Empty(t, rec.types)
}

func TestViewOwnsEmitterLifetime(t *testing.T) {
	factory := log.NewDefaultLoggerFactory("", "error")
	require.NotNil(t, factory)

	view, err := image.New("https://example.com/pic.png", factory)
	require.NoError(t, err)
	require.NotNil(t, view.Emitter())

	rec := new(recorder)
	rec.listen(view.Emitter())

	view.Dispose()
	assert.True(t, view.Disposed())
	assert.Nil(t, view.Asset())

	view.Emitter().OnLoadStart()
	assert.Empty(t, rec.types)
	assert.False(t, view.Emitter().HasEventListener(ImageEvent.LOAD_START))
}
