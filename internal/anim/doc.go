// Package anim defines the animation trace model and the playback engine.
//
// A trace is a finite, ordered list of [Step] records produced eagerly by
// an algorithm module; no algorithmic work happens during playback. Each
// step carries a [Snapshot] — a tagged union with one variant per
// visualizer kind:
//
//   - [ArraySnapshot]: array with per-element visual tags
//   - [GraphSnapshot]: node/edge sets with visual tags
//   - [MatrixSnapshot]: 2D table with optional row/column labels
//   - [StringMatchSnapshot]: text/pattern cursor bundle
//   - [HuffmanSnapshot]: coding tree plus code table
//   - [JobsSnapshot]: schedulable items for greedy selection
//   - [ConceptSnapshot]: free-form labelled items for explainers
//
// Renderers dispatch on [Snapshot.Kind] with an exhaustive switch.
//
// # Playback
//
//	e := anim.NewEngine()
//	e.LoadSteps(steps)
//	e.SetSpeed(200 * time.Millisecond)
//	e.Play() // auto-advances, then auto-pauses on the last step
//
// [Engine] operations are safe to call from any goroutine, but the engine
// is a cooperative single-cursor player: only one timer is ever live, and
// reloading or pausing always cancels it before anything else happens.
package anim
