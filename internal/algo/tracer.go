package algo

import (
	"fmt"

	"github.com/san-kum/algolab/internal/anim"
)

// tracer accumulates the animation trace for one GenerateSteps run. It
// owns the monotonic step counter and the running comparison/swap
// counters; record always stores a clone of the snapshot so later
// mutation of the working structure cannot leak into earlier steps.
type tracer struct {
	steps       []anim.Step
	comparisons int
	swaps       int
	memory      int
}

func newTracer() *tracer { return &tracer{} }

func (t *tracer) compare()       { t.comparisons++ }
func (t *tracer) compareN(n int) { t.comparisons += n }
func (t *tracer) swap()          { t.swaps++ }

// setMemory asserts the illustrative auxiliary-space figure shown with
// every following step. Not measured.
func (t *tracer) setMemory(bytes int) { t.memory = bytes }

func (t *tracer) record(line int, snap anim.Snapshot, format string, args ...any) {
	t.recordHL(line, snap, nil, nil, format, args...)
}

func (t *tracer) recordHL(line int, snap anim.Snapshot, highlight, special []int, format string, args ...any) {
	t.steps = append(t.steps, anim.Step{
		ID:             len(t.steps),
		Description:    fmt.Sprintf(format, args...),
		PseudocodeLine: line,
		State:          snap.Clone(),
		Comparisons:    t.comparisons,
		Swaps:          t.swaps,
		MemoryBytes:    t.memory,
		Highlight:      append([]int(nil), highlight...),
		Special:        append([]int(nil), special...),
	})
}

func (t *tracer) trace() []anim.Step { return t.steps }

// arraySnap builds an array snapshot from live working values; tags maps
// element index to a visual tag, everything else gets def.
func arraySnap(values []int, tags map[int]anim.Tag, def anim.Tag) anim.ArraySnapshot {
	s := anim.ArraySnapshot{Elements: make([]anim.ArrayElement, len(values))}
	for i, v := range values {
		tag := def
		if t, ok := tags[i]; ok {
			tag = t
		}
		s.Elements[i] = anim.ArrayElement{Value: v, Tag: tag}
	}
	return s
}

// graphSnap builds a graph snapshot from a GraphInput; nodeTags is keyed
// by node index, edgeTags by position in g.Edges.
func graphSnap(g GraphInput, nodeTags map[int]anim.Tag, edgeTags map[int]anim.Tag) anim.GraphSnapshot {
	s := anim.GraphSnapshot{
		Nodes:    make([]anim.GraphNode, g.NodeCount),
		Edges:    make([]anim.GraphEdge, len(g.Edges)),
		Directed: g.Directed,
	}
	for i := range s.Nodes {
		tag := anim.TagDefault
		if t, ok := nodeTags[i]; ok {
			tag = t
		}
		s.Nodes[i] = anim.GraphNode{ID: nodeLabel(i), Label: nodeLabel(i), Tag: tag}
	}
	for i, e := range g.Edges {
		tag := anim.TagDefault
		if t, ok := edgeTags[i]; ok {
			tag = t
		}
		s.Edges[i] = anim.GraphEdge{From: nodeLabel(e.From), To: nodeLabel(e.To), Weight: e.Weight, Tag: tag}
	}
	return s
}

type cell struct{ r, c int }

// matrixSnap builds a table snapshot; tags is keyed by (row, col).
func matrixSnap(vals [][]int, tags map[cell]anim.Tag, rowLabels, colLabels []string) anim.MatrixSnapshot {
	s := anim.MatrixSnapshot{
		Cells:     make([][]anim.MatrixCell, len(vals)),
		RowLabels: rowLabels,
		ColLabels: colLabels,
	}
	for r, row := range vals {
		s.Cells[r] = make([]anim.MatrixCell, len(row))
		for c, v := range row {
			tag := anim.TagDefault
			if t, ok := tags[cell{r, c}]; ok {
				tag = t
			}
			s.Cells[r][c] = anim.MatrixCell{Value: v, Tag: tag}
		}
	}
	return s
}

// unsetCell is the sentinel for "no value yet" table cells; matrixSnap
// callers map it to blank text where it matters.
const unsetCell = -1 << 30

// inf is the display sentinel for unreachable distances.
const inf = 1 << 29
