package image

import (
	"sync"

	"github.com/Wiiktor22/expo/log"
)

// View is one rendered image view instance. It owns exactly one
// EventEmitter, constructed with it and disposed with it.
type View struct {
	logger   log.ILogger
	mtx      sync.Mutex
	source   *Source
	emitter  *EventEmitter
	asset    *Asset
	disposed bool
}

// Init this class
func (me *View) Init(src *Source, logger log.ILogger) *View {
	me.logger = logger
	me.source = src
	me.emitter = NewEventEmitter(logger)
	return me
}

// Source returns the source this view renders
func (me *View) Source() *Source {
	return me.source
}

// Emitter returns the event emitter bound to this view
func (me *View) Emitter() *EventEmitter {
	return me.emitter
}

// Asset returns the decoded result of the last successful load attempt, if any
func (me *View) Asset() *Asset {
	me.mtx.Lock()
	defer me.mtx.Unlock()

	return me.asset
}

func (me *View) setAsset(asset *Asset) {
	me.mtx.Lock()
	defer me.mtx.Unlock()

	me.asset = asset
}

// Disposed reports whether the view was torn down
func (me *View) Disposed() bool {
	me.mtx.Lock()
	defer me.mtx.Unlock()

	return me.disposed
}

// Dispose tears the view down along with its emitter
func (me *View) Dispose() {
	me.mtx.Lock()
	me.disposed = true
	me.asset = nil
	me.mtx.Unlock()

	me.emitter.Dispose()
}

// New creates a View for the given source uri
func New(uri string, factory log.ILoggerFactory) (*View, error) {
	src, err := ParseSource(uri)
	if err != nil {
		return nil, err
	}

	return new(View).Init(src, factory.NewLogger("image-view")), nil
}
