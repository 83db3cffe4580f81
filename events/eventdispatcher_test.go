package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wiiktor22/expo/events"
	Event "github.com/Wiiktor22/expo/events/event"
	"github.com/Wiiktor22/expo/log"
)

func newDispatcher(t *testing.T) *events.EventDispatcher {
	t.Helper()

	factory := log.NewDefaultLoggerFactory("", "error")
	require.NotNil(t, factory)

	return new(events.EventDispatcher).Init(factory.NewLogger("test"))
}

func TestAddRemoveHas(t *testing.T) {
	d := newDispatcher(t)
	listener := events.NewListener(func(e *Event.Event) {}, -1)

	assert.False(t, d.HasEventListener(Event.CHANGE))

	d.AddEventListener(Event.CHANGE, listener)
	assert.True(t, d.HasEventListener(Event.CHANGE))
	assert.False(t, d.HasEventListener(Event.CLOSE))

	d.RemoveEventListener(Event.CHANGE, listener)
	assert.False(t, d.HasEventListener(Event.CHANGE))
}

func TestAddEventListenerGuards(t *testing.T) {
	d := newDispatcher(t)

	// Neither call should register anything, nor panic.
	d.AddEventListener("", events.NewListener(func(e *Event.Event) {}, -1))
	d.AddEventListener(Event.CHANGE, nil)

	assert.False(t, d.HasEventListener(Event.CHANGE))
}

func TestDispatchDeliversEvent(t *testing.T) {
	d := newDispatcher(t)

	var got *Event.Event
	d.AddEventListener(Event.COMPLETE, events.NewListener(func(e *Event.Event) {
		got = e
	}, -1))

	d.DispatchEvent(Event.New(Event.COMPLETE, d))

	require.NotNil(t, got)
	assert.Equal(t, Event.COMPLETE, got.Type)
	assert.Same(t, d, got.Target)
}

func TestDispatchOnlyMatchingType(t *testing.T) {
	d := newDispatcher(t)

	calls := 0
	d.AddEventListener(Event.OPEN, events.NewListener(func(e *Event.Event) {
		calls++
	}, -1))

	d.DispatchEvent(Event.New(Event.CLOSE, d))
	assert.Zero(t, calls)

	d.DispatchEvent(Event.New(Event.OPEN, d))
	assert.Equal(t, 1, calls)
}

func TestOnceListenerRemoved(t *testing.T) {
	d := newDispatcher(t)

	calls := 0
	d.AddEventListener(Event.CHANGE, events.NewListener(func(e *Event.Event) {
		calls++
	}, 1))

	d.DispatchEvent(Event.New(Event.CHANGE, d))
	d.DispatchEvent(Event.New(Event.CHANGE, d))

	assert.Equal(t, 1, calls)
	assert.False(t, d.HasEventListener(Event.CHANGE))
}

func TestUnlimitedListenerKept(t *testing.T) {
	d := newDispatcher(t)

	calls := 0
	d.AddEventListener(Event.CHANGE, events.NewListener(func(e *Event.Event) {
		calls++
	}, -1))

	for i := 0; i < 3; i++ {
		d.DispatchEvent(Event.New(Event.CHANGE, d))
	}

	assert.Equal(t, 3, calls)
	assert.True(t, d.HasEventListener(Event.CHANGE))
}

func TestStopPropagation(t *testing.T) {
	d := newDispatcher(t)

	calls := 0
	handler := func(e *Event.Event) {
		calls++
		e.StopPropagation()
	}
	d.AddEventListener(Event.CHANGE, events.NewListener(handler, -1))
	d.AddEventListener(Event.CHANGE, events.NewListener(handler, -1))

	d.DispatchEvent(Event.New(Event.CHANGE, d))

	assert.Equal(t, 1, calls)
}

func TestReentrantAddDeferred(t *testing.T) {
	d := newDispatcher(t)

	lateCalls := 0
	d.AddEventListener(Event.CHANGE, events.NewListener(func(e *Event.Event) {
		d.AddEventListener(Event.CHANGE, events.NewListener(func(e *Event.Event) {
			lateCalls++
		}, -1))
	}, 1))

	d.DispatchEvent(Event.New(Event.CHANGE, d))
	assert.Zero(t, lateCalls, "listener added during dispatch must not run in the same dispatch")

	d.DispatchEvent(Event.New(Event.CHANGE, d))
	assert.Equal(t, 1, lateCalls)
}

func TestReentrantRemoveDeferred(t *testing.T) {
	d := newDispatcher(t)

	calls := 0
	victim := events.NewListener(func(e *Event.Event) {
		calls++
	}, -1)

	d.AddEventListener(Event.CHANGE, events.NewListener(func(e *Event.Event) {
		d.RemoveEventListener(Event.CHANGE, victim)
	}, -1))
	d.AddEventListener(Event.CHANGE, victim)

	d.DispatchEvent(Event.New(Event.CHANGE, d))
	d.DispatchEvent(Event.New(Event.CHANGE, d))

	// The victim may still see the first dispatch, never the second.
	assert.LessOrEqual(t, calls, 1)
}

func TestReentrantDispatch(t *testing.T) {
	d := newDispatcher(t)

	got := make([]string, 0, 2)
	d.AddEventListener(Event.OPEN, events.NewListener(func(e *Event.Event) {
		got = append(got, e.Type)
		d.DispatchEvent(Event.New(Event.CLOSE, d))
	}, -1))
	d.AddEventListener(Event.CLOSE, events.NewListener(func(e *Event.Event) {
		got = append(got, e.Type)
	}, -1))

	d.DispatchEvent(Event.New(Event.OPEN, d))

	assert.Equal(t, []string{Event.OPEN, Event.CLOSE}, got)
}

func TestRemoveAllEventListeners(t *testing.T) {
	d := newDispatcher(t)

	d.AddEventListener(Event.OPEN, events.NewListener(func(e *Event.Event) {}, -1))
	d.AddEventListener(Event.CLOSE, events.NewListener(func(e *Event.Event) {}, -1))

	d.RemoveAllEventListeners()

	assert.False(t, d.HasEventListener(Event.OPEN))
	assert.False(t, d.HasEventListener(Event.CLOSE))
}
