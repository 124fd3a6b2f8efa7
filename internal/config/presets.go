package config

var Presets = map[string]map[string]*Config{
	"bubble-sort": {
		"tiny": {
			Algorithm: "bubble-sort", Size: 5, Case: "average", SpeedMS: 800,
		},
		"sorted": {
			Algorithm: "bubble-sort", Size: 10, Case: "best", SpeedMS: 500,
		},
		"reversed": {
			Algorithm: "bubble-sort", Size: 10, Case: "worst", SpeedMS: 200,
		},
	},
	"quick-sort": {
		"balanced": {
			Algorithm: "quick-sort", Size: 12, Case: "average", SpeedMS: 400,
		},
		"degenerate": {
			Algorithm: "quick-sort", Size: 12, Case: "worst", SpeedMS: 200,
		},
	},
	"binary-search": {
		"lucky": {
			Algorithm: "binary-search", Size: 15, Case: "best", SpeedMS: 800,
		},
		"halving": {
			Algorithm: "binary-search", Size: 31, Case: "average", SpeedMS: 600,
		},
	},
	"dijkstra": {
		"small": {
			Algorithm: "dijkstra", Size: 6, Case: "average", SpeedMS: 700,
		},
		"dense": {
			Algorithm: "dijkstra", Size: 10, Case: "average", SpeedMS: 400,
		},
	},
	"knapsack": {
		"classroom": {
			Algorithm: "knapsack", Size: 4, Case: "average", SpeedMS: 600,
		},
		"wide": {
			Algorithm: "knapsack", Size: 7, Case: "average", SpeedMS: 250,
		},
	},
	"n-queens": {
		"four": {
			Algorithm: "n-queens", Size: 4, Case: "average", SpeedMS: 600,
		},
		"eight": {
			Algorithm: "n-queens", Size: 8, Case: "average", SpeedMS: 150,
		},
	},
	"tsp": {
		"toy": {
			Algorithm: "tsp", Size: 4, Case: "average", SpeedMS: 500,
		},
		"capped": {
			Algorithm: "tsp", Size: 7, Case: "average", SpeedMS: 150,
		},
	},
	"kmp": {
		"periodic": {
			Algorithm: "kmp", Size: 20, Case: "average", SpeedMS: 400,
		},
		"prefix": {
			Algorithm: "kmp", Size: 20, Case: "best", SpeedMS: 500,
		},
	},
}

func GetPreset(algorithm, preset string) *Config {
	algPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	cfg, ok := algPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(algorithm string) []string {
	algPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algPresets))
	for name := range algPresets {
		names = append(names, name)
	}
	return names
}
