package algo

import "github.com/san-kum/algolab/internal/anim"

// Case selects an input shape for algorithms whose running time depends
// on it. Algorithms with SupportsCases == false ignore the parameter.
type Case string

const (
	CaseBest    Case = "best"
	CaseAverage Case = "average"
	CaseWorst   Case = "worst"
)

// Categories as shown in the catalog.
const (
	CategorySorting       = "sorting"
	CategorySearching     = "searching"
	CategoryGraph         = "graph"
	CategoryDynamic       = "dynamic programming"
	CategoryGreedy        = "greedy"
	CategoryBacktracking  = "backtracking"
	CategoryDivideConquer = "divide & conquer"
	CategoryString        = "string matching"
	CategoryConcept       = "concept"
)

type Complexity struct {
	Best    string
	Average string
	Worst   string
	Space   string
}

// Info is the static descriptive metadata for one catalog entry. It is
// consumed by the CLI and TUI and plays no part in trace generation.
type Info struct {
	ID            string
	Name          string
	Category      string
	Description   string
	Complexity    Complexity
	Pseudocode    []string
	Visualizer    anim.Kind
	MinSize       int
	MaxSize       int
	DefaultSize   int
	SupportsCases bool
}

// Algorithm is the contract every catalog entry satisfies. Both methods
// are pure: GenerateInput shapes a fresh domain input for the requested
// size and case, GenerateSteps runs the textbook algorithm against it
// and returns the complete, finite animation trace. Inputs are only
// ever produced by the paired GenerateInput, so GenerateSteps does not
// defend against malformed ones.
type Algorithm interface {
	Info() Info
	GenerateInput(size int, c Case) Input
	GenerateSteps(in Input) []anim.Step
}

// Input is the domain input union; each variant belongs to the modules
// that consume it.
type Input interface{ isInput() }

type ArrayInput struct {
	Values []int
}

// SearchInput is an ArrayInput plus the value being searched for.
type SearchInput struct {
	Values []int
	Target int
}

type WeightedEdge struct {
	From   int
	To     int
	Weight int
}

// GraphInput identifies nodes by index 0..NodeCount-1; display labels
// are derived when building snapshots.
type GraphInput struct {
	NodeCount int
	Edges     []WeightedEdge
	Directed  bool
	Source    int
}

type StringMatchInput struct {
	Text    string
	Pattern string
}

// TextPairInput feeds two-sequence DP modules (LCS, edit distance).
type TextPairInput struct {
	A string
	B string
}

type KnapsackInput struct {
	Weights  []int
	Values   []int
	Capacity int
}

type CoinInput struct {
	Coins  []int
	Amount int
}

type JobsInput struct {
	Jobs []anim.Job
}

// BoardInput sizes an n-by-n board (N-Queens).
type BoardInput struct {
	N int
}

// MazeInput is a grid of open (1) and blocked (0) cells.
type MazeInput struct {
	Grid [][]int
}

type MatrixPairInput struct {
	A [][]int
	B [][]int
}

// ConceptInput carries no data; concept explainers have a fixed script.
type ConceptInput struct{}

func (ArrayInput) isInput()       {}
func (SearchInput) isInput()      {}
func (GraphInput) isInput()       {}
func (StringMatchInput) isInput() {}
func (TextPairInput) isInput()    {}
func (KnapsackInput) isInput()    {}
func (CoinInput) isInput()        {}
func (JobsInput) isInput()        {}
func (BoardInput) isInput()       {}
func (MazeInput) isInput()        {}
func (MatrixPairInput) isInput()  {}
func (ConceptInput) isInput()     {}
