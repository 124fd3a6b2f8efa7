// Package algo is the algorithm catalog: every entry implements
// [Algorithm], pairing a pure input generator with a pure trace
// generator that replays the textbook algorithm as a finite sequence of
// [anim.Step] records.
//
// Entries are registered by id in [NewRegistry]; the CLI and player
// look them up with [Registry.Get]. Input generation is pseudo-random
// and can be pinned with [SetSeed].
package algo
