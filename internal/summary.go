package internal

import "sort"

// TreeSummary describes the shape of one or more documents: value
// counts by kind, node record count, maximum nesting depth, and object
// key frequencies.
type TreeSummary struct {
	Objects   int            `json:"objects"`
	Arrays    int            `json:"arrays"`
	Strings   int            `json:"strings"`
	Numbers   int            `json:"numbers"`
	Booleans  int            `json:"booleans"`
	Nulls     int            `json:"nulls"`
	Nodes     int            `json:"nodes"`
	MaxDepth  int            `json:"max_depth"`
	KeyCounts map[string]int `json:"key_counts"`
}

// NewTreeSummary creates an empty summary.
func NewTreeSummary() *TreeSummary {
	return &TreeSummary{KeyCounts: make(map[string]int)}
}

// Summarize builds a summary of a single document.
func Summarize(v *Value) *TreeSummary {
	s := NewTreeSummary()
	s.Add(v)
	return s
}

// Add folds another document into the summary.
func (s *TreeSummary) Add(v *Value) {
	s.add(v, 0)
}

func (s *TreeSummary) add(v *Value, depth int) {
	if v == nil {
		return
	}
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}

	switch v.Kind {
	case KindObject:
		s.Objects++
		if _, ok := AsNode(v); ok {
			s.Nodes++
		}
		for _, m := range v.Members {
			s.KeyCounts[m.Key]++
			s.add(m.Value, depth+1)
		}
	case KindArray:
		s.Arrays++
		for _, el := range v.Elems {
			s.add(el, depth+1)
		}
	case KindString:
		s.Strings++
	case KindNumber:
		s.Numbers++
	case KindBool:
		s.Booleans++
	case KindNull:
		s.Nulls++
	}
}

// KeyCount is a key together with how often it appears.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TopKeys returns the n most frequent object keys, most frequent
// first, ties broken alphabetically. n <= 0 returns all keys.
func (s *TreeSummary) TopKeys(n int) []KeyCount {
	counts := make([]KeyCount, 0, len(s.KeyCounts))
	for key, count := range s.KeyCounts {
		counts = append(counts, KeyCount{Key: key, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})

	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
