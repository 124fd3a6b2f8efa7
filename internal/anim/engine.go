package anim

import (
	"sync"
	"time"
)

// DefaultSpeed is the auto-advance interval used until SetSpeed is called.
const DefaultSpeed = 500 * time.Millisecond

// State is the full player state handed to the listener on every change.
// Steps is shared, not copied: traces are immutable once loaded.
type State struct {
	Steps      []Step
	Current    int
	Playing    bool
	Paused     bool
	Speed      time.Duration
	TotalSteps int
}

// Engine replays a precomputed trace: it owns a cursor over the loaded
// steps and a single repeating timer for auto-advance. All navigation is
// lenient — out-of-range requests clamp or no-op, they never error.
type Engine struct {
	mu       sync.Mutex
	steps    []Step
	current  int
	playing  bool
	paused   bool
	speed    time.Duration
	cancel   chan struct{}
	listener func(State)
}

func NewEngine() *Engine {
	return &Engine{speed: DefaultSpeed}
}

// SetListener registers the single subscriber. The listener is invoked
// synchronously after every observable change and must not call back
// into the engine.
func (e *Engine) SetListener(fn func(State)) {
	e.mu.Lock()
	e.listener = fn
	e.mu.Unlock()
}

// State returns a copy of the current player state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

// LoadSteps replaces the trace wholesale: any active timer is cancelled
// first, the cursor resets to 0 and both flags clear. Safe mid-playback.
func (e *Engine) LoadSteps(steps []Step) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelTimerLocked()
	e.steps = steps
	e.current = 0
	e.playing = false
	e.paused = false
	e.notifyLocked()
}

// Play starts auto-advance. No-op on an empty trace. If the cursor sits
// on the last step the player wraps to 0 before starting.
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.steps) == 0 || e.playing {
		return
	}
	if e.current >= len(e.steps)-1 {
		e.current = 0
	}
	e.playing = true
	e.paused = false
	e.startTimerLocked()
	e.notifyLocked()
}

// Pause cancels the timer and keeps the cursor. Idempotent.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pauseLocked() {
		e.notifyLocked()
	}
}

// Stop cancels the timer and resets the cursor to 0; unlike Pause the
// position is lost and both flags clear.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelTimerLocked()
	e.current = 0
	e.playing = false
	e.paused = false
	e.notifyLocked()
}

// StepForward pauses playback and advances the cursor by one, clamped to
// the last step. No-op at the upper boundary.
func (e *Engine) StepForward() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.steps) == 0 {
		return
	}
	changed := e.pauseLocked()
	if e.current < len(e.steps)-1 {
		e.current++
		changed = true
	}
	if changed {
		e.notifyLocked()
	}
}

// StepBackward pauses playback and moves the cursor back by one. No-op
// at the lower boundary.
func (e *Engine) StepBackward() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.steps) == 0 {
		return
	}
	changed := e.pauseLocked()
	if e.current > 0 {
		e.current--
		changed = true
	}
	if changed {
		e.notifyLocked()
	}
}

// GoToStep pauses playback and jumps to step n. Out-of-range n is
// silently ignored.
func (e *Engine) GoToStep(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.steps) == 0 {
		return
	}
	changed := e.pauseLocked()
	if n >= 0 && n < len(e.steps) {
		e.current = n
		changed = true
	}
	if changed {
		e.notifyLocked()
	}
}

// SetSpeed updates the auto-advance interval. While playing, the timer
// is restarted so no in-flight tick fires at the old interval.
func (e *Engine) SetSpeed(d time.Duration) {
	if d <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.speed = d
	if e.playing {
		e.cancelTimerLocked()
		e.startTimerLocked()
	}
	e.notifyLocked()
}

func (e *Engine) stateLocked() State {
	return State{
		Steps:      e.steps,
		Current:    e.current,
		Playing:    e.playing,
		Paused:     e.paused,
		Speed:      e.speed,
		TotalSteps: len(e.steps),
	}
}

func (e *Engine) pauseLocked() bool {
	if !e.playing && e.paused {
		return false
	}
	e.cancelTimerLocked()
	e.playing = false
	e.paused = true
	return true
}

func (e *Engine) notifyLocked() {
	if e.listener != nil {
		e.listener(e.stateLocked())
	}
}

// startTimerLocked arms the repeating advance timer. Exactly one timer
// may be live: callers must cancel the previous one first. The cancel
// channel doubles as the timer's identity so a stale goroutine that
// loses the race against cancellation can never advance the cursor.
func (e *Engine) startTimerLocked() {
	cancel := make(chan struct{})
	e.cancel = cancel
	ticker := time.NewTicker(e.speed)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-cancel:
				return
			case <-ticker.C:
				if !e.advance(cancel) {
					return
				}
			}
		}
	}()
}

func (e *Engine) cancelTimerLocked() {
	if e.cancel != nil {
		close(e.cancel)
		e.cancel = nil
	}
}

// advance moves the cursor one step on a timer tick. Returns false once
// the timer goroutine should exit (cancelled or trace finished).
func (e *Engine) advance(cancel chan struct{}) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != cancel || !e.playing {
		return false
	}
	if e.current < len(e.steps)-1 {
		e.current++
	}
	if e.current >= len(e.steps)-1 {
		// Reached the terminal step: auto-pause.
		e.cancel = nil
		e.playing = false
		e.paused = true
		e.notifyLocked()
		return false
	}
	e.notifyLocked()
	return true
}
