package image

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/Wiiktor22/expo/events"
	ImageEvent "github.com/Wiiktor22/expo/events/imageevent"
	"github.com/Wiiktor22/expo/log"
	"github.com/Wiiktor22/expo/utils"
)

// Attempt states
const (
	STATE_IDLE    int32 = 0x00
	STATE_LOADING int32 = 0x01
	STATE_LOADED  int32 = 0x02
	STATE_FAILED  int32 = 0x03
)

// EventEmitter bridges the loading lifecycle of an image view into the
// event flow. It wraps a composed dispatcher instead of deriving from one,
// and guards the per-attempt contract: OnLoadStart opens an attempt before
// any other signal, OnLoad and OnError are mutually exclusive terminals,
// OnLoadEnd closes the attempt after a terminal, progress is clamped to
// [0, 1] and never regresses, OnPartialLoad fires at most once. Calls
// violating the contract are dropped.
//
// Signals hold the emitter's lock across the dispatch, keyed by goroutine
// id like the dispatcher's own lock, so concurrent callers deliver in the
// order the state machine accepted them while handlers may still call back
// into the emitter.
type EventEmitter struct {
	events.IEventDispatcher

	logger   log.ILogger
	mtx      sync.Mutex
	goid     int64
	state    int32
	attempt  string
	ratio    float64
	partial  bool
	disposed bool
}

// Init this class
func (me *EventEmitter) Init(logger log.ILogger) *EventEmitter {
	me.IEventDispatcher = new(events.EventDispatcher).Init(logger)
	me.logger = logger
	me.goid = 0
	me.state = STATE_IDLE
	return me
}

// OnLoadStart signals that image loading has begun. It opens a new attempt,
// at most once until the previous one is closed by OnLoadEnd.
func (me *EventEmitter) OnLoadStart() {
	self := utils.GoID()
	if atomic.LoadInt64(&me.goid) != self {
		me.mtx.Lock()
		atomic.StoreInt64(&me.goid, self)
		defer func() {
			atomic.StoreInt64(&me.goid, 0)
			me.mtx.Unlock()
		}()
	}

	if me.disposed || me.state != STATE_IDLE {
		me.logger.Debugf(2, "Dropping loadstart: state=%d", me.state)
		return
	}
	me.state = STATE_LOADING
	me.attempt = uuid.NewString()
	me.ratio = 0
	me.partial = false

	me.DispatchEvent(ImageEvent.New(ImageEvent.LOAD_START, me, me.attempt, 0))
}

// OnProgress reports incremental load progress as a fraction within [0, 1].
// Values are clamped, and a value below the last reported one is raised to
// it, so listeners observe a non-decreasing sequence.
func (me *EventEmitter) OnProgress(ratio float64) {
	self := utils.GoID()
	if atomic.LoadInt64(&me.goid) != self {
		me.mtx.Lock()
		atomic.StoreInt64(&me.goid, self)
		defer func() {
			atomic.StoreInt64(&me.goid, 0)
			me.mtx.Unlock()
		}()
	}

	if me.disposed || me.state != STATE_LOADING {
		me.logger.Debugf(2, "Dropping progress: state=%d", me.state)
		return
	}
	if ratio > 1 {
		ratio = 1
	}
	if ratio < me.ratio {
		me.logger.Debugf(2, "Raising regressed progress: %.3f -> %.3f", ratio, me.ratio)
		ratio = me.ratio
	}
	me.ratio = ratio

	me.DispatchEvent(ImageEvent.New(ImageEvent.PROGRESS, me, me.attempt, ratio))
}

// OnPartialLoad signals that a lower-fidelity intermediate render is
// available, at most once per attempt, before the terminal signal.
func (me *EventEmitter) OnPartialLoad() {
	self := utils.GoID()
	if atomic.LoadInt64(&me.goid) != self {
		me.mtx.Lock()
		atomic.StoreInt64(&me.goid, self)
		defer func() {
			atomic.StoreInt64(&me.goid, 0)
			me.mtx.Unlock()
		}()
	}

	if me.disposed || me.state != STATE_LOADING || me.partial {
		me.logger.Debugf(2, "Dropping partialload: state=%d", me.state)
		return
	}
	me.partial = true

	me.DispatchEvent(ImageEvent.New(ImageEvent.PARTIAL_LOAD, me, me.attempt, 0))
}

// OnLoad signals successful completion of image data acquisition.
func (me *EventEmitter) OnLoad() {
	me.terminate(STATE_LOADED, ImageEvent.LOAD)
}

// OnError signals load failure.
func (me *EventEmitter) OnError() {
	me.terminate(STATE_FAILED, ImageEvent.ERROR)
}

func (me *EventEmitter) terminate(state int32, event string) {
	self := utils.GoID()
	if atomic.LoadInt64(&me.goid) != self {
		me.mtx.Lock()
		atomic.StoreInt64(&me.goid, self)
		defer func() {
			atomic.StoreInt64(&me.goid, 0)
			me.mtx.Unlock()
		}()
	}

	if me.disposed || me.state != STATE_LOADING {
		me.logger.Debugf(2, "Dropping %s: state=%d", event, me.state)
		return
	}
	me.state = state

	me.DispatchEvent(ImageEvent.New(event, me, me.attempt, 0))
}

// OnLoadEnd signals the terminal point of a load attempt. It fires after
// OnLoad or OnError, exactly once, and closes the attempt.
func (me *EventEmitter) OnLoadEnd() {
	self := utils.GoID()
	if atomic.LoadInt64(&me.goid) != self {
		me.mtx.Lock()
		atomic.StoreInt64(&me.goid, self)
		defer func() {
			atomic.StoreInt64(&me.goid, 0)
			me.mtx.Unlock()
		}()
	}

	if me.disposed || (me.state != STATE_LOADED && me.state != STATE_FAILED) {
		me.logger.Debugf(2, "Dropping loadend: state=%d", me.state)
		return
	}
	me.state = STATE_IDLE
	attempt := me.attempt
	me.attempt = ""

	me.DispatchEvent(ImageEvent.New(ImageEvent.LOAD_END, me, attempt, 0))
}

// Attempt returns the id of the open attempt, or an empty string
func (me *EventEmitter) Attempt() string {
	self := utils.GoID()
	if atomic.LoadInt64(&me.goid) != self {
		me.mtx.Lock()
		atomic.StoreInt64(&me.goid, self)
		defer func() {
			atomic.StoreInt64(&me.goid, 0)
			me.mtx.Unlock()
		}()
	}

	return me.attempt
}

// ReadyState returns the current attempt state
func (me *EventEmitter) ReadyState() int32 {
	self := utils.GoID()
	if atomic.LoadInt64(&me.goid) != self {
		me.mtx.Lock()
		atomic.StoreInt64(&me.goid, self)
		defer func() {
			atomic.StoreInt64(&me.goid, 0)
			me.mtx.Unlock()
		}()
	}

	return me.state
}

// Dispose detaches every listener and drops all further signals. The
// owning view calls this on teardown, no event outlives the view.
func (me *EventEmitter) Dispose() {
	self := utils.GoID()
	if atomic.LoadInt64(&me.goid) != self {
		me.mtx.Lock()
		atomic.StoreInt64(&me.goid, self)
		defer func() {
			atomic.StoreInt64(&me.goid, 0)
			me.mtx.Unlock()
		}()
	}

	me.disposed = true
	me.RemoveAllEventListeners()
}

// NewEventEmitter creates an EventEmitter
func NewEventEmitter(logger log.ILogger) *EventEmitter {
	return new(EventEmitter).Init(logger)
}
