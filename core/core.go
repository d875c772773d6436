// Package core contains the demo loop and the interfaces
// it drives the window and the renderer through.
package core

// Renderer describes the rendering machinery.
// It's created only with internal values set,
// it needs to be initialised with Initialise() before use.
type Renderer interface {
	// Initialise compiles the pipeline and uploads the mesh
	Initialise() error

	// Draw clears the render target and records the draw call
	Draw() error

	// Present submits recorded commands and presents the frame
	Present() error

	// Destroy destroys internal members
	Destroy()
}

// EventSource is a non-blocking queue of input events.
type EventSource interface {
	// PollEvent returns the next pending event,
	// ok is false once the queue is drained
	PollEvent() (event Event, ok bool)
}

// EventType identifies the kind of an input event
type EventType int

// Event types the loop distinguishes
const (
	EventOther EventType = iota
	EventQuit
	EventKeyDown
	EventKeyUp
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "key down"
	case EventKeyUp:
		return "key up"
	default:
		return "other"
	}
}

// Keycode is a virtual key code
type Keycode int32

// Keys the loop reacts to
const (
	KeyUnknown Keycode = 0
	KeyEscape  Keycode = 27
)

// Event is a windowing system event reduced to what the loop needs
type Event struct {
	Type EventType
	Key  Keycode
}

// IsQuit reports whether the event asks the program to stop.
func (e Event) IsQuit() bool {
	return e.Type == EventQuit || (e.Type == EventKeyUp && e.Key == KeyEscape)
}
