package imageevent

import (
	"fmt"

	Event "github.com/Wiiktor22/expo/events/event"
)

// ImageEvent types
const (
	LOAD_START   = "loadstart"
	LOAD         = "load"
	LOAD_END     = "loadend"
	PROGRESS     = "progress"
	ERROR        = "error"
	PARTIAL_LOAD = "partialload"
)

// ImageEvent dispatched while an image view walks through a load attempt.
// Ratio is only meaningful for PROGRESS, as a fraction within [0, 1].
type ImageEvent struct {
	Event.Event
	Attempt string
	Ratio   float64
}

// Init this class
func (me *ImageEvent) Init(typ string, target interface{}, attempt string, ratio float64) *ImageEvent {
	me.Event.Init(typ, target)
	me.Attempt = attempt
	me.Ratio = ratio
	return me
}

// Clone an instance of an ImageEvent subclass
func (me *ImageEvent) Clone() *ImageEvent {
	return New(me.Type, me.Target, me.Attempt, me.Ratio)
}

// String returns a string containing all the properties of the ImageEvent object
func (me *ImageEvent) String() string {
	return fmt.Sprintf("[ImageEvent type=%s attempt=%s ratio=%.3f]", me.Type, me.Attempt, me.Ratio)
}

// New creates a new ImageEvent object
func New(typ string, target interface{}, attempt string, ratio float64) *ImageEvent {
	return new(ImageEvent).Init(typ, target, attempt, ratio)
}
