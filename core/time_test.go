package core_test

import (
	"testing"
	"time"

	"github.com/devblok/triangle/core"
)

func TestUncappedTimeDoesNotWait(t *testing.T) {
	ts := core.NewTime(core.TimeConfiguration{})
	defer ts.Stop()

	start := time.Now()
	for i := 0; i < 1000; i++ {
		ts.WaitFrame()
	}
	if time.Since(start) > time.Second {
		t.Error("uncapped time service is waiting between frames")
	}
	if _, due := ts.StatsDue(); due {
		t.Error("stats reported while disabled")
	}
}

func TestFrameCapBeyondTickerResolution(t *testing.T) {
	ts := core.NewTime(core.TimeConfiguration{FramesPerSecond: core.MaxFramesPerSecond + 1})
	defer ts.Stop()

	start := time.Now()
	ts.WaitFrame()
	if time.Since(start) > time.Second {
		t.Error("frame wait did not return")
	}
}

func TestCappedTimeWaits(t *testing.T) {
	ts := core.NewTime(core.TimeConfiguration{FramesPerSecond: 100})
	defer ts.Stop()

	if ts.Fps() != 100 {
		t.Fatalf("incorrect fps: %d", ts.Fps())
	}

	start := time.Now()
	for i := 0; i < 5; i++ {
		ts.WaitFrame()
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("5 frames at 100 fps took only %s", elapsed)
	}
}

func TestStatsDue(t *testing.T) {
	ts := core.NewTime(core.TimeConfiguration{StatsInterval: 10})
	defer ts.Stop()

	if _, due := ts.StatsDue(); due {
		t.Error("stats due before the first interval passed")
	}

	time.Sleep(25 * time.Millisecond)
	elapsed, due := ts.StatsDue()
	if !due {
		t.Fatal("stats not due after the interval passed")
	}
	if elapsed <= 0 {
		t.Errorf("non positive elapsed time: %s", elapsed)
	}
}
