package internal

// WalkStats accumulates counts for a single traversal.
type WalkStats struct {
	Nodes    int // objects that qualified as node records
	Objects  int
	Arrays   int
	MaxDepth int
}

// NodeFunc is called for every node record discovered during a walk.
// Returning an error aborts the traversal.
type NodeFunc func(n *NodeRecord) error

// Walk traverses v depth-first in source order and calls fn for every
// object carrying both an id and a timestamp. Every object member and
// array element is visited, not just the children chain, so node
// records buried in unrelated fields are still found. Objects and
// lists are visited exactly once per reachable occurrence; there is no
// memoization.
func Walk(v *Value, fn NodeFunc) (*WalkStats, error) {
	stats := &WalkStats{}
	err := walk(v, 0, fn, stats)
	return stats, err
}

func walk(v *Value, depth int, fn NodeFunc, stats *WalkStats) error {
	if v == nil {
		return nil
	}
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	switch v.Kind {
	case KindObject:
		stats.Objects++
		if node, ok := AsNode(v); ok {
			stats.Nodes++
			node.Depth = depth
			if fn != nil {
				if err := fn(node); err != nil {
					return err
				}
			}
		}
		for _, m := range v.Members {
			if err := walk(m.Value, depth+1, fn, stats); err != nil {
				return err
			}
		}
	case KindArray:
		stats.Arrays++
		for _, el := range v.Elems {
			if err := walk(el, depth+1, fn, stats); err != nil {
				return err
			}
		}
	}
	return nil
}
