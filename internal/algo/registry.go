package algo

import (
	"fmt"
	"sort"
)

// Registry maps algorithm ids to constructors. The CLI and the TUI
// menu both resolve modules through it.
type Registry struct {
	algorithms map[string]func() Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{algorithms: make(map[string]func() Algorithm)}

	r.algorithms["bubble-sort"] = func() Algorithm { return newBubbleSort() }
	r.algorithms["selection-sort"] = func() Algorithm { return newSelectionSort() }
	r.algorithms["insertion-sort"] = func() Algorithm { return newInsertionSort() }
	r.algorithms["merge-sort"] = func() Algorithm { return newMergeSort() }
	r.algorithms["quick-sort"] = func() Algorithm { return newQuickSort() }
	r.algorithms["heap-sort"] = func() Algorithm { return newHeapSort() }
	r.algorithms["counting-sort"] = func() Algorithm { return newCountingSort() }
	r.algorithms["radix-sort"] = func() Algorithm { return newRadixSort() }

	r.algorithms["linear-search"] = func() Algorithm { return newLinearSearch() }
	r.algorithms["binary-search"] = func() Algorithm { return newBinarySearch() }

	r.algorithms["bfs"] = func() Algorithm { return newBFS() }
	r.algorithms["dfs"] = func() Algorithm { return newDFS() }
	r.algorithms["dijkstra"] = func() Algorithm { return newDijkstra() }
	r.algorithms["bellman-ford"] = func() Algorithm { return newBellmanFord() }
	r.algorithms["floyd-warshall"] = func() Algorithm { return newFloydWarshall() }
	r.algorithms["kruskal"] = func() Algorithm { return newKruskal() }
	r.algorithms["prim"] = func() Algorithm { return newPrim() }
	r.algorithms["topological-sort"] = func() Algorithm { return newTopologicalSort() }
	r.algorithms["kosaraju"] = func() Algorithm { return newKosaraju() }

	r.algorithms["fibonacci"] = func() Algorithm { return newFibonacci() }
	r.algorithms["knapsack"] = func() Algorithm { return newKnapsack() }
	r.algorithms["lcs"] = func() Algorithm { return newLCS() }
	r.algorithms["edit-distance"] = func() Algorithm { return newEditDistance() }
	r.algorithms["lis"] = func() Algorithm { return newLIS() }
	r.algorithms["coin-change"] = func() Algorithm { return newCoinChange() }

	r.algorithms["activity-selection"] = func() Algorithm { return newActivitySelection() }
	r.algorithms["job-sequencing"] = func() Algorithm { return newJobSequencing() }
	r.algorithms["fractional-knapsack"] = func() Algorithm { return newFractionalKnapsack() }
	r.algorithms["huffman"] = func() Algorithm { return newHuffman() }

	r.algorithms["n-queens"] = func() Algorithm { return newNQueens() }
	r.algorithms["rat-in-maze"] = func() Algorithm { return newRatInMaze() }
	r.algorithms["subset-sum"] = func() Algorithm { return newSubsetSum() }
	r.algorithms["tsp"] = func() Algorithm { return newTSP() }

	r.algorithms["strassen"] = func() Algorithm { return newStrassen() }

	r.algorithms["naive-search"] = func() Algorithm { return newNaiveSearch() }
	r.algorithms["kmp"] = func() Algorithm { return newKMP() }
	r.algorithms["rabin-karp"] = func() Algorithm { return newRabinKarp() }

	r.algorithms["p-vs-np"] = func() Algorithm { return newPvsNP() }

	return r
}

func (r *Registry) Get(id string) (Algorithm, error) {
	fn, ok := r.algorithms[id]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", id)
	}
	return fn(), nil
}

// IDs returns all registered ids, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.algorithms))
	for id := range r.algorithms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// List returns catalog metadata sorted by category, then name.
func (r *Registry) List() []Info {
	infos := make([]Info, 0, len(r.algorithms))
	for _, fn := range r.algorithms {
		infos = append(infos, fn().Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Category != infos[j].Category {
			return infos[i].Category < infos[j].Category
		}
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// ByCategory groups catalog metadata for the TUI menu.
func (r *Registry) ByCategory() map[string][]Info {
	groups := make(map[string][]Info)
	for _, info := range r.List() {
		groups[info.Category] = append(groups[info.Category], info)
	}
	return groups
}
