package core_test

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/devblok/triangle/core"
)

// batchedEvents hands out one batch of events per frame.
// A batch ends when PollEvent reports the queue drained.
type batchedEvents struct {
	batches [][]core.Event
	polled  int
}

func (b *batchedEvents) PollEvent() (core.Event, bool) {
	if len(b.batches) == 0 {
		return core.Event{}, false
	}
	if len(b.batches[0]) == 0 {
		b.batches = b.batches[1:]
		return core.Event{}, false
	}
	event := b.batches[0][0]
	b.batches[0] = b.batches[0][1:]
	b.polled++
	return event, true
}

type countingRenderer struct {
	draws, presents int
	drawErr         error
}

func (r *countingRenderer) Initialise() error { return nil }
func (r *countingRenderer) Destroy()          {}

func (r *countingRenderer) Draw() error {
	r.draws++
	return r.drawErr
}

func (r *countingRenderer) Present() error {
	r.presents++
	return nil
}

func newTestLoop(events *batchedEvents, renderer *countingRenderer) (*core.Loop, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	loop := core.NewLoop(renderer, events, core.TimeConfiguration{})
	loop.SetLogger(logger)
	return loop, hook
}

var (
	quit      = core.Event{Type: core.EventQuit}
	escapeUp  = core.Event{Type: core.EventKeyUp, Key: core.KeyEscape}
	escapeDn  = core.Event{Type: core.EventKeyDown, Key: core.KeyEscape}
	otherUp   = core.Event{Type: core.EventKeyUp, Key: core.Keycode('a')}
	misc      = core.Event{Type: core.EventOther}
	unknownUp = core.Event{Type: core.EventKeyUp, Key: core.KeyUnknown}
)

func TestQuitSignals(t *testing.T) {
	for _, tc := range []struct {
		name  string
		event core.Event
		quits bool
	}{
		{"quit", quit, true},
		{"escape released", escapeUp, true},
		{"escape pressed", escapeDn, false},
		{"other key released", otherUp, false},
		{"unknown key released", unknownUp, false},
		{"other event", misc, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			loop, _ := newTestLoop(&batchedEvents{}, &countingRenderer{})
			loop.HandleEvent(tc.event)
			qt.New(t).Assert(loop.Running(), qt.Equals, !tc.quits)
		})
	}
}

func TestQuitIsTerminal(t *testing.T) {
	c := qt.New(t)
	loop, hook := newTestLoop(&batchedEvents{}, &countingRenderer{})

	loop.HandleEvent(quit)
	loop.HandleEvent(escapeUp)
	loop.HandleEvent(misc)
	loop.HandleEvent(escapeDn)

	c.Assert(loop.Running(), qt.Equals, false)

	var quits int
	for _, e := range hook.AllEntries() {
		if e.Message == "Quit requested" {
			quits++
		}
	}
	c.Assert(quits, qt.Equals, 1)
}

func TestRunStopsAfterQuitFrame(t *testing.T) {
	c := qt.New(t)
	events := &batchedEvents{batches: [][]core.Event{
		{misc},
		{otherUp, escapeDn},
		{escapeUp},
		{quit},
		{quit},
	}}
	renderer := &countingRenderer{}
	loop, _ := newTestLoop(events, renderer)

	loop.Run()

	// the frame that saw the release is still drawn, nothing after it
	c.Assert(renderer.draws, qt.Equals, 3)
	c.Assert(renderer.presents, qt.Equals, 3)
	c.Assert(loop.Frames(), qt.Equals, int64(3))
	c.Assert(events.batches, qt.HasLen, 2)
}

func TestFrameDrainsAllEvents(t *testing.T) {
	c := qt.New(t)
	events := &batchedEvents{batches: [][]core.Event{
		{misc, otherUp, misc, escapeDn, misc},
	}}
	renderer := &countingRenderer{}
	loop, _ := newTestLoop(events, renderer)

	c.Assert(loop.Frame(), qt.IsNil)
	c.Assert(events.polled, qt.Equals, 5)
	c.Assert(events.batches, qt.HasLen, 0)
	c.Assert(loop.Running(), qt.Equals, true)
	c.Assert(renderer.draws, qt.Equals, 1)
}

func TestQuitAmongOtherEvents(t *testing.T) {
	c := qt.New(t)
	events := &batchedEvents{batches: [][]core.Event{
		{misc, quit, otherUp},
	}}
	renderer := &countingRenderer{}
	loop, _ := newTestLoop(events, renderer)

	loop.Run()

	c.Assert(events.polled, qt.Equals, 3)
	c.Assert(renderer.draws, qt.Equals, 1)
}

func TestFrameErrorsAreLogged(t *testing.T) {
	c := qt.New(t)
	events := &batchedEvents{batches: [][]core.Event{{}, {quit}}}
	renderer := &countingRenderer{drawErr: errors.New("lost context")}
	loop, hook := newTestLoop(events, renderer)

	loop.Run()

	c.Assert(renderer.draws, qt.Equals, 2)
	c.Assert(renderer.presents, qt.Equals, 0)
	c.Assert(loop.Frames(), qt.Equals, int64(0))

	var failures int
	for _, e := range hook.AllEntries() {
		if e.Level == log.ErrorLevel {
			failures++
			c.Assert(e.Data[log.ErrorKey], qt.ErrorMatches, "lost context")
		}
	}
	c.Assert(failures, qt.Equals, 2)
}
