package tui

import (
	"fmt"
	"strings"

	"github.com/san-kum/algolab/internal/anim"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Watcher renders every playback state change to a plain terminal.
// Unlike the full-screen player it has no input handling; it is wired
// as the engine's listener and just repaints.
type Watcher struct {
	name   string
	width  int
	height int
}

func NewWatcher(name string) *Watcher {
	return &Watcher{name: name, width: 72, height: 16}
}

func (w *Watcher) Start() { fmt.Print(hideCursor) }
func (w *Watcher) Stop()  { fmt.Print(showCursor) }

// OnChange is the anim.Engine listener.
func (w *Watcher) OnChange(st anim.State) {
	var b strings.Builder
	b.WriteString(clearScreen)

	status := "playing"
	if !st.Playing {
		status = "paused"
	}
	b.WriteString(fmt.Sprintf("  %s  step %d/%d  %s\n", w.name, st.Current+1, st.TotalSteps, status))
	b.WriteString("  " + strings.Repeat("-", w.width) + "\n")

	if st.TotalSteps > 0 {
		step := st.Steps[st.Current]
		b.WriteString(renderSnapshot(step.State, w.width, w.height))
		b.WriteString("\n  " + step.Description + "\n")
		b.WriteString(fmt.Sprintf("  comparisons=%d swaps=%d memory=%dB\n",
			step.Comparisons, step.Swaps, step.MemoryBytes))
	}

	b.WriteString("  " + strings.Repeat("-", w.width) + "\n")
	fmt.Print(b.String())
}
