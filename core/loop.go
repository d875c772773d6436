package core

import (
	log "github.com/sirupsen/logrus"
)

// NewLoop creates a running loop that draws with renderer
// and listens for quit requests on events. The renderer
// has to be initialised already.
func NewLoop(renderer Renderer, events EventSource, cfg TimeConfiguration) *Loop {
	return &Loop{
		renderer: renderer,
		events:   events,
		time:     NewTime(cfg),
		logger:   log.StandardLogger(),
		running:  true,
	}
}

// Loop is the frame loop. It lives on the thread that owns the
// window and the GPU context and is not safe for concurrent use.
type Loop struct {
	renderer Renderer
	events   EventSource
	time     *Time
	logger   log.FieldLogger

	running bool
	frames  int64

	statsFrames int64
}

// SetLogger replaces the logger the loop reports to.
func (l *Loop) SetLogger(logger log.FieldLogger) {
	l.logger = logger
}

// Running reports whether the loop will run another frame.
func (l *Loop) Running() bool {
	return l.running
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() int64 {
	return l.frames
}

// HandleEvent stops the loop on a quit event or when Escape is released.
// Once stopped the loop is never restarted.
func (l *Loop) HandleEvent(event Event) {
	if !l.running || !event.IsQuit() {
		return
	}
	l.logger.WithField("event", event.Type).Info("Quit requested")
	l.running = false
}

// Frame drains pending events, then draws and presents one frame.
// A quit seen while draining still lets the current frame finish.
func (l *Loop) Frame() error {
	for event, ok := l.events.PollEvent(); ok; event, ok = l.events.PollEvent() {
		l.HandleEvent(event)
	}

	if err := l.renderer.Draw(); err != nil {
		return err
	}
	if err := l.renderer.Present(); err != nil {
		return err
	}

	l.frames++
	l.statsFrames++
	return nil
}

// Run runs frames until a quit is requested. Frame errors are
// reported and do not stop the loop.
func (l *Loop) Run() {
	defer l.time.Stop()

	for l.running {
		l.time.WaitFrame()

		if err := l.Frame(); err != nil {
			l.logger.WithError(err).WithField("frame", l.frames).Error("Frame failed")
		}

		if elapsed, ok := l.time.StatsDue(); ok && elapsed > 0 {
			l.logger.WithFields(log.Fields{
				"frames": l.statsFrames,
				"fps":    float64(l.statsFrames) / elapsed.Seconds(),
			}).Debug("Frame statistics")
			l.statsFrames = 0
		}
	}

	l.logger.WithField("frames", l.frames).Info("Event loop exited")
}
