package internal

import "fmt"

// MustParseValue parses a JSON document and panics on failure. Only
// for tests and fixtures with known-good input.
func MustParseValue(s string) *Value {
	v, err := ParseValueBytes([]byte(s))
	if err != nil {
		panic(fmt.Sprintf("MustParseValue(%q): %v", s, err))
	}
	return v
}

// CreateTestNode builds a node-shaped object with string id and
// timestamp members.
func CreateTestNode(id, timestamp string) *Value {
	return &Value{
		Kind: KindObject,
		Members: []Member{
			{Key: idKey, Value: &Value{Kind: KindString, Str: id}},
			{Key: timestampKey, Value: &Value{Kind: KindString, Str: timestamp}},
		},
	}
}
