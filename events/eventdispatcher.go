package events

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/Wiiktor22/expo/events/internal/action"
	"github.com/Wiiktor22/expo/log"
	"github.com/Wiiktor22/expo/utils"
)

// Static constants.
const (
	MaxRecursion int32 = 8
)

// EventDispatcher is the base class for all classes that dispatch events.
// Handlers run on the goroutine which calls DispatchEvent. A handler may
// call back into the same dispatcher: nested dispatches are detected by
// goroutine id, and add/remove issued from inside a handler is queued and
// applied once the outermost dispatch returns.
type EventDispatcher struct {
	logger    log.ILogger
	mtx       sync.Mutex
	listeners map[string]map[*EventListener]bool
	pending   action.Manager
	goid      int64
	recursion int32
}

// Init this class.
func (me *EventDispatcher) Init(logger log.ILogger) *EventDispatcher {
	me.logger = logger
	me.listeners = make(map[string]map[*EventListener]bool)
	me.pending.Init()
	me.goid = 0
	me.recursion = 0
	return me
}

// AddEventListener registers an event listener object with an EventDispatcher object so that the listener receives notification of an event.
func (me *EventDispatcher) AddEventListener(event string, listener *EventListener) {
	if event == "" || listener == nil {
		me.logger.Debugf(1, "Event type or listener not present: type=%s, listener=%v", event, listener)
		return
	}

	self := utils.GoID()
	if atomic.LoadInt64(&me.goid) == self {
		// Re-entered from a handler on the dispatching goroutine.
		me.pending.Append(action.New(action.ADD, event, listener))
		return
	}

	me.mtx.Lock()
	atomic.StoreInt64(&me.goid, self)
	me.addEventListener(event, listener)
	atomic.StoreInt64(&me.goid, 0)
	me.mtx.Unlock()
}

func (me *EventDispatcher) addEventListener(event string, listener *EventListener) {
	evts := me.listeners[event]
	if evts == nil {
		evts = make(map[*EventListener]bool)
		me.listeners[event] = evts
	}
	me.logger.Debugf(1, "Adding event listener: type=%s, listener=%v", event, listener)
	evts[listener] = true
}

// RemoveEventListener removes an event listener from the EventDispatcher object.
func (me *EventDispatcher) RemoveEventListener(event string, listener *EventListener) {
	if event == "" || listener == nil {
		me.logger.Debugf(1, "Event type or listener not present: type=%s, listener=%v", event, listener)
		return
	}

	self := utils.GoID()
	if atomic.LoadInt64(&me.goid) == self {
		me.pending.Append(action.New(action.REMOVE, event, listener))
		return
	}

	me.mtx.Lock()
	atomic.StoreInt64(&me.goid, self)
	me.removeEventListener(event, listener)
	atomic.StoreInt64(&me.goid, 0)
	me.mtx.Unlock()
}

func (me *EventDispatcher) removeEventListener(event string, listener *EventListener) {
	evts := me.listeners[event]
	if evts == nil {
		me.logger.Debugf(1, "Listeners not found: type=%s", event)
		return
	}
	me.logger.Debugf(1, "Removing event listener: type=%s, listener=%v", event, listener)
	delete(evts, listener)
}

// RemoveAllEventListeners removes every registered listener from the EventDispatcher object.
func (me *EventDispatcher) RemoveAllEventListeners() {
	self := utils.GoID()
	if atomic.LoadInt64(&me.goid) == self {
		me.pending.Append(action.New(action.CLEAR, "", nil))
		return
	}

	me.mtx.Lock()
	atomic.StoreInt64(&me.goid, self)
	me.listeners = make(map[string]map[*EventListener]bool)
	atomic.StoreInt64(&me.goid, 0)
	me.mtx.Unlock()
}

// HasEventListener checks whether an event listener is registered with this EventDispatcher object for the specified event type.
func (me *EventDispatcher) HasEventListener(event string) bool {
	self := utils.GoID()
	if atomic.LoadInt64(&me.goid) != self {
		me.mtx.Lock()
		atomic.StoreInt64(&me.goid, self)
		defer func() {
			atomic.StoreInt64(&me.goid, 0)
			me.mtx.Unlock()
		}()
	}

	evts := me.listeners[event]
	return len(evts) != 0
}

// DispatchEvent dispatches an event into the event flow.
func (me *EventDispatcher) DispatchEvent(evt interface{}) {
	defer func() {
		if err := recover(); err != nil {
			me.logger.Debugf(1, "Failed to reflect event: %v", err)
		}
	}()

	value := reflect.ValueOf(evt)
	event := value.Elem().FieldByName("Type").String()

	defer func() {
		if err := recover(); err != nil {
			me.logger.Debugf(1, "Failed to handle event: type=%s, %v", event, err)
		}
	}()

	// It is not recommended which multi-goroutines call the same target,
	// especially in high-frequency. Better to run as self-driven.
	self := utils.GoID()
	if atomic.LoadInt64(&me.goid) != self {
		me.mtx.Lock()
		atomic.StoreInt64(&me.goid, self)
		defer func() {
			atomic.StoreInt64(&me.goid, 0)
			me.mtx.Unlock()
		}()
	}

	me.logger.Debugf(0, "Dispatching event: %s", event)
	recursion := atomic.AddInt32(&me.recursion, 1)
	defer func() {
		if atomic.AddInt32(&me.recursion, -1) == 0 {
			me.flush()
		}
	}()
	if recursion > MaxRecursion {
		panic("max recursion reached")
	}

	// Make a shallow copy of the listener group, so that it triggers the event to the exact listeners.
	evts := me.listeners[event]
	cloned := make([]*EventListener, 0, len(evts))
	for listener := range evts {
		cloned = append(cloned, listener)
	}

	for _, listener := range cloned {
		reflect.ValueOf(listener.handler).Call([]reflect.Value{value})

		if listener.count > 0 {
			if listener.count--; listener.count == 0 {
				me.pending.Append(action.New(action.REMOVE, event, listener))
			}
		}
		if s, ok := evt.(iStopper); ok && s.IsStopped() {
			me.logger.Debugf(1, "Stop propagation event: type=%s", event)
			break
		}
	}
}

// flush applies the actions deferred while dispatching. The caller must
// hold the lock.
func (me *EventDispatcher) flush() {
	me.pending.ForEach(func(a *action.Action) {
		switch a.Type {
		case action.ADD:
			me.addEventListener(a.Event, a.Listener.(*EventListener))
		case action.REMOVE:
			me.removeEventListener(a.Event, a.Listener.(*EventListener))
		case action.CLEAR:
			me.listeners = make(map[string]map[*EventListener]bool)
		}
	})
}
