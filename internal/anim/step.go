package anim

// Tag marks how a single element of a snapshot should be presented.
type Tag string

const (
	TagDefault    Tag = "default"
	TagComparing  Tag = "comparing"
	TagSwapping   Tag = "swapping"
	TagSorted     Tag = "sorted"
	TagPivot      Tag = "pivot"
	TagFound      Tag = "found"
	TagCurrent    Tag = "current"
	TagMinimum    Tag = "minimum"
	TagTarget     Tag = "target"
	TagFrontier   Tag = "frontier"
	TagVisited    Tag = "visited"
	TagProcessed  Tag = "processed"
	TagInPath     Tag = "in_path"
	TagSelected   Tag = "selected"
	TagRejected   Tag = "rejected"
	TagFilled     Tag = "filled"
	TagEliminated Tag = "eliminated"
)

// Kind identifies which visualizer a snapshot belongs to.
type Kind string

const (
	KindArray       Kind = "array"
	KindGraph       Kind = "graph"
	KindMatrix      Kind = "matrix"
	KindStringMatch Kind = "string_match"
	KindHuffman     Kind = "huffman"
	KindJobs        Kind = "jobs"
	KindConcept     Kind = "concept"
)

// Snapshot is one immutable view of an algorithm's working state.
// Generators must never hand out a snapshot that aliases live working
// memory; Clone exists so recording a step is always a defensive copy.
type Snapshot interface {
	Kind() Kind
	Clone() Snapshot
}

// Step is one record of an algorithm's execution trace. ID equals the
// step's position in the trace; Comparisons and Swaps are running
// counters and never decrease between consecutive steps.
type Step struct {
	ID             int      `json:"id"`
	Description    string   `json:"description"`
	PseudocodeLine int      `json:"pseudocode_line"`
	State          Snapshot `json:"state"`
	Comparisons    int      `json:"comparisons"`
	Swaps          int      `json:"swaps"`
	MemoryBytes    int      `json:"memory_bytes"`
	Highlight      []int    `json:"highlight,omitempty"`
	Special        []int    `json:"special,omitempty"`
}

type ArrayElement struct {
	Value int `json:"value"`
	Tag   Tag `json:"tag"`
}

type ArraySnapshot struct {
	Elements []ArrayElement `json:"elements"`
}

func (s ArraySnapshot) Kind() Kind { return KindArray }

func (s ArraySnapshot) Clone() Snapshot {
	c := ArraySnapshot{Elements: make([]ArrayElement, len(s.Elements))}
	copy(c.Elements, s.Elements)
	return c
}

type GraphNode struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Tag   Tag    `json:"tag"`
}

type GraphEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
	Tag    Tag    `json:"tag"`
}

type GraphSnapshot struct {
	Nodes    []GraphNode `json:"nodes"`
	Edges    []GraphEdge `json:"edges"`
	Directed bool        `json:"directed"`
}

func (s GraphSnapshot) Kind() Kind { return KindGraph }

func (s GraphSnapshot) Clone() Snapshot {
	c := GraphSnapshot{
		Nodes:    make([]GraphNode, len(s.Nodes)),
		Edges:    make([]GraphEdge, len(s.Edges)),
		Directed: s.Directed,
	}
	copy(c.Nodes, s.Nodes)
	copy(c.Edges, s.Edges)
	return c
}

// MatrixCell holds a numeric value for DP tables and boards. Text, when
// non-empty, overrides the numeric rendering (used for "∞" and blanks).
type MatrixCell struct {
	Value int    `json:"value"`
	Text  string `json:"text,omitempty"`
	Tag   Tag    `json:"tag"`
}

type MatrixSnapshot struct {
	Cells     [][]MatrixCell `json:"cells"`
	RowLabels []string       `json:"row_labels,omitempty"`
	ColLabels []string       `json:"col_labels,omitempty"`
}

func (s MatrixSnapshot) Kind() Kind { return KindMatrix }

func (s MatrixSnapshot) Clone() Snapshot {
	c := MatrixSnapshot{
		Cells:     make([][]MatrixCell, len(s.Cells)),
		RowLabels: append([]string(nil), s.RowLabels...),
		ColLabels: append([]string(nil), s.ColLabels...),
	}
	for i, row := range s.Cells {
		c.Cells[i] = make([]MatrixCell, len(row))
		copy(c.Cells[i], row)
	}
	return c
}

// StringMatchSnapshot captures the two cursors of a pattern-matching
// scan plus every match found so far. TextIndex or PatternIndex of -1
// means the cursor is not on any character.
type StringMatchSnapshot struct {
	Text         string `json:"text"`
	Pattern      string `json:"pattern"`
	TextIndex    int    `json:"text_index"`
	PatternIndex int    `json:"pattern_index"`
	Matches      []int  `json:"matches,omitempty"`
}

func (s StringMatchSnapshot) Kind() Kind { return KindStringMatch }

func (s StringMatchSnapshot) Clone() Snapshot {
	c := s
	c.Matches = append([]int(nil), s.Matches...)
	return c
}

// HuffmanNode is one node of the coding tree under construction.
// Left and Right index into the snapshot's Nodes slice; -1 means leaf.
type HuffmanNode struct {
	Symbol string `json:"symbol,omitempty"`
	Freq   int    `json:"freq"`
	Left   int    `json:"left"`
	Right  int    `json:"right"`
	Tag    Tag    `json:"tag"`
}

type HuffmanSnapshot struct {
	Nodes []HuffmanNode     `json:"nodes"`
	Root  int               `json:"root"`
	Codes map[string]string `json:"codes,omitempty"`
}

func (s HuffmanSnapshot) Kind() Kind { return KindHuffman }

func (s HuffmanSnapshot) Clone() Snapshot {
	c := HuffmanSnapshot{
		Nodes: make([]HuffmanNode, len(s.Nodes)),
		Root:  s.Root,
	}
	copy(c.Nodes, s.Nodes)
	if s.Codes != nil {
		c.Codes = make(map[string]string, len(s.Codes))
		for k, v := range s.Codes {
			c.Codes[k] = v
		}
	}
	return c
}

// Job is one schedulable item. Greedy modules fill only the fields they
// care about: intervals use Start/End, sequencing uses Deadline/Profit,
// fractional knapsack uses Weight/Value/Fraction.
type Job struct {
	Name     string  `json:"name"`
	Start    int     `json:"start,omitempty"`
	End      int     `json:"end,omitempty"`
	Deadline int     `json:"deadline,omitempty"`
	Profit   int     `json:"profit,omitempty"`
	Weight   int     `json:"weight,omitempty"`
	Value    int     `json:"value,omitempty"`
	Fraction float64 `json:"fraction,omitempty"`
	Tag      Tag     `json:"tag"`
}

type JobsSnapshot struct {
	Jobs  []Job   `json:"jobs"`
	Time  int     `json:"time,omitempty"`
	Total float64 `json:"total"`
}

func (s JobsSnapshot) Kind() Kind { return KindJobs }

func (s JobsSnapshot) Clone() Snapshot {
	c := JobsSnapshot{Jobs: make([]Job, len(s.Jobs)), Time: s.Time, Total: s.Total}
	copy(c.Jobs, s.Jobs)
	return c
}

type ConceptItem struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
	Tag    Tag    `json:"tag"`
}

type ConceptSnapshot struct {
	Title string        `json:"title"`
	Items []ConceptItem `json:"items"`
}

func (s ConceptSnapshot) Kind() Kind { return KindConcept }

func (s ConceptSnapshot) Clone() Snapshot {
	c := ConceptSnapshot{Title: s.Title, Items: make([]ConceptItem, len(s.Items))}
	copy(c.Items, s.Items)
	return c
}
