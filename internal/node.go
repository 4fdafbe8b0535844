package internal

import "fmt"

// Field names that make an object a node record.
const (
	idKey        = "id"
	timestampKey = "timestamp"
	childrenKey  = "children"
)

// NodeRecord is a JSON object that qualifies as a persistable node: it
// carries both an "id" and a "timestamp" member. Record holds the
// node's fields minus "children", in their original order.
type NodeRecord struct {
	ID         *Value
	Timestamp  *Value
	Record     *Value
	ChildCount int
	Depth      int // nesting depth where the walker found it
}

// AsNode reports whether v is a node record. Field presence is the
// whole test: any object with both an id and a timestamp qualifies, no
// matter what else it carries. Everything other than the nested
// children value is copied into the record unchanged.
func AsNode(v *Value) (*NodeRecord, bool) {
	if v == nil || v.Kind != KindObject {
		return nil, false
	}
	id, ok := v.Get(idKey)
	if !ok {
		return nil, false
	}
	ts, ok := v.Get(timestampKey)
	if !ok {
		return nil, false
	}

	record := &Value{Kind: KindObject, Members: make([]Member, 0, len(v.Members))}
	childCount := 0
	for _, m := range v.Members {
		if m.Key == childrenKey {
			if m.Value != nil && m.Value.Kind == KindArray {
				childCount += len(m.Value.Elems)
			}
			continue
		}
		record.Members = append(record.Members, m)
	}

	return &NodeRecord{
		ID:         id,
		Timestamp:  ts,
		Record:     record,
		ChildCount: childCount,
	}, true
}

// Filename returns the output filename for the record, before any
// collision disambiguation.
func (n *NodeRecord) Filename() string {
	return fmt.Sprintf("%s_%s.json", SanitizeValue(n.ID), SanitizeValue(n.Timestamp))
}
