package anim

import (
	"testing"
	"time"
)

func makeSteps(n int) []Step {
	steps := make([]Step, n)
	for i := range steps {
		steps[i] = Step{
			ID:    i,
			State: ArraySnapshot{Elements: []ArrayElement{{Value: i, Tag: TagDefault}}},
		}
	}
	return steps
}

func TestLoadStepsResets(t *testing.T) {
	e := NewEngine()
	e.LoadSteps(makeSteps(5))
	e.GoToStep(3)

	e.LoadSteps(makeSteps(3))

	st := e.State()
	if st.Current != 0 {
		t.Errorf("expected cursor 0 after load, got %d", st.Current)
	}
	if st.Playing || st.Paused {
		t.Errorf("expected idle state after load, got playing=%v paused=%v", st.Playing, st.Paused)
	}
	if st.TotalSteps != 3 {
		t.Errorf("expected 3 steps, got %d", st.TotalSteps)
	}
}

func TestLoadStepsMidPlayCancelsTimer(t *testing.T) {
	e := NewEngine()
	e.LoadSteps(makeSteps(100))
	e.SetSpeed(time.Millisecond)
	e.Play()
	time.Sleep(5 * time.Millisecond)

	e.LoadSteps(makeSteps(5))

	st := e.State()
	if st.Playing || st.Paused {
		t.Errorf("expected idle state after reload, got playing=%v paused=%v", st.Playing, st.Paused)
	}
	// Give the old timer time to fire if it leaked; the cursor must
	// stay at the start of the new trace.
	time.Sleep(20 * time.Millisecond)
	if st := e.State(); st.Current != 0 {
		t.Errorf("stale timer advanced the cursor to %d after reload", st.Current)
	}
}

func TestPlayOnEmptyTraceIsNoop(t *testing.T) {
	e := NewEngine()
	e.Play()

	st := e.State()
	if st.Playing {
		t.Error("empty trace must not start playing")
	}
}

func TestStepNavigationClamps(t *testing.T) {
	e := NewEngine()
	e.LoadSteps(makeSteps(3))

	e.StepBackward()
	if st := e.State(); st.Current != 0 {
		t.Errorf("backward at start should stay at 0, got %d", st.Current)
	}

	e.GoToStep(2)
	e.StepForward()
	if st := e.State(); st.Current != 2 {
		t.Errorf("forward at end should stay at 2, got %d", st.Current)
	}

	e.GoToStep(99)
	if st := e.State(); st.Current != 2 {
		t.Errorf("out-of-range jump should be ignored, got %d", st.Current)
	}
	e.GoToStep(-1)
	if st := e.State(); st.Current != 2 {
		t.Errorf("negative jump should be ignored, got %d", st.Current)
	}
}

func TestNavigationOnEmptyTraceIsNoop(t *testing.T) {
	e := NewEngine()
	e.StepForward()
	e.StepBackward()
	e.GoToStep(0)

	st := e.State()
	if st.Paused {
		t.Error("navigation on an empty trace must not mark the player paused")
	}
}

func TestManualStepPausesPlayback(t *testing.T) {
	e := NewEngine()
	e.LoadSteps(makeSteps(10))
	e.SetSpeed(time.Hour) // effectively never ticks
	e.Play()

	e.StepForward()

	st := e.State()
	if st.Playing {
		t.Error("manual step should pause playback")
	}
	if !st.Paused {
		t.Error("expected paused flag after manual step")
	}
	if st.Current != 1 {
		t.Errorf("expected cursor 1, got %d", st.Current)
	}
}

func TestStopResetsCursor(t *testing.T) {
	e := NewEngine()
	e.LoadSteps(makeSteps(5))
	e.GoToStep(4)

	e.Stop()

	st := e.State()
	if st.Current != 0 {
		t.Errorf("expected cursor 0 after stop, got %d", st.Current)
	}
	if st.Playing || st.Paused {
		t.Error("stop should clear both flags")
	}
}

func TestAutoAdvanceToEndPauses(t *testing.T) {
	e := NewEngine()

	done := make(chan State, 1)
	e.SetListener(func(st State) {
		if st.TotalSteps > 0 && st.Current == st.TotalSteps-1 && !st.Playing {
			select {
			case done <- st:
			default:
			}
		}
	})

	e.LoadSteps(makeSteps(4))
	e.SetSpeed(time.Millisecond)
	e.Play()

	select {
	case st := <-done:
		if st.Current != 3 {
			t.Errorf("expected final cursor 3, got %d", st.Current)
		}
		if !st.Paused {
			t.Error("expected auto-pause at the last step")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("playback never reached the last step")
	}

	st := e.State()
	if st.Playing {
		t.Error("engine still playing after the trace finished")
	}
}

func TestPlayAtEndWrapsToStart(t *testing.T) {
	e := NewEngine()
	e.LoadSteps(makeSteps(3))
	e.SetSpeed(time.Hour)
	e.GoToStep(2)

	e.Play()

	st := e.State()
	if st.Current != 0 {
		t.Errorf("play at the last step should wrap to 0, got %d", st.Current)
	}
	if !st.Playing {
		t.Error("expected playback to start")
	}
	e.Stop()
}

func TestSetSpeedKeepsSingleTimer(t *testing.T) {
	e := NewEngine()

	var cursors []int
	e.SetListener(func(st State) {
		cursors = append(cursors, st.Current)
	})

	e.LoadSteps(makeSteps(30))
	e.SetSpeed(2 * time.Millisecond)
	e.Play()
	// Hammer the speed while the timer runs; a leaked timer would show
	// up as a repeated or decreasing cursor below.
	for i := 0; i < 10; i++ {
		e.SetSpeed(time.Duration(i+1) * time.Millisecond)
		time.Sleep(3 * time.Millisecond)
	}
	e.Pause()

	st := e.State()
	if st.Playing {
		t.Fatal("expected engine paused")
	}
	last := -1
	for _, c := range cursors {
		if c < last {
			t.Fatalf("cursor went backwards during playback: %v", cursors)
		}
		last = c
	}
}

func TestPauseIdempotent(t *testing.T) {
	e := NewEngine()
	e.LoadSteps(makeSteps(3))

	calls := 0
	e.SetListener(func(State) { calls++ })

	e.Pause()
	first := calls
	e.Pause()
	if calls != first {
		t.Error("second pause should not notify again")
	}
}
