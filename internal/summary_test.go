package internal

import (
	"testing"

	"github.com/iksnae/tree-extract/testutil"
)

func TestSummarize(t *testing.T) {
	s := Summarize(MustParseValue(testutil.SampleTree))

	// root, child-a, related, ref
	if s.Objects != 4 {
		t.Errorf("Objects = %d, want 4", s.Objects)
	}
	if s.Nodes != 3 {
		t.Errorf("Nodes = %d, want 3", s.Nodes)
	}
	// root children, child-a children
	if s.Arrays != 2 {
		t.Errorf("Arrays = %d, want 2", s.Arrays)
	}
	if s.KeyCounts["id"] != 3 {
		t.Errorf("KeyCounts[id] = %d, want 3", s.KeyCounts["id"])
	}
	if s.KeyCounts["children"] != 2 {
		t.Errorf("KeyCounts[children] = %d, want 2", s.KeyCounts["children"])
	}
	if s.MaxDepth < 3 {
		t.Errorf("MaxDepth = %d, want >= 3", s.MaxDepth)
	}
}

func TestTreeSummary_Add_Multiple(t *testing.T) {
	s := NewTreeSummary()
	s.Add(MustParseValue(`{"id": "a", "timestamp": "t"}`))
	s.Add(MustParseValue(`{"id": "b", "timestamp": "t"}`))

	if s.Nodes != 2 {
		t.Errorf("Nodes = %d, want 2", s.Nodes)
	}
	if s.Objects != 2 {
		t.Errorf("Objects = %d, want 2", s.Objects)
	}
}

func TestTreeSummary_Scalars(t *testing.T) {
	s := Summarize(MustParseValue(`["a", 1, true, null]`))

	if s.Strings != 1 || s.Numbers != 1 || s.Booleans != 1 || s.Nulls != 1 {
		t.Errorf("scalar counts = %d/%d/%d/%d, want 1/1/1/1", s.Strings, s.Numbers, s.Booleans, s.Nulls)
	}
}

func TestTreeSummary_TopKeys(t *testing.T) {
	s := Summarize(MustParseValue(`[
		{"a": 1, "b": 2},
		{"a": 3, "c": 4},
		{"a": 5, "b": 6}
	]`))

	top := s.TopKeys(2)
	if len(top) != 2 {
		t.Fatalf("TopKeys(2) returned %d entries", len(top))
	}
	if top[0].Key != "a" || top[0].Count != 3 {
		t.Errorf("top key = %+v, want a/3", top[0])
	}
	if top[1].Key != "b" || top[1].Count != 2 {
		t.Errorf("second key = %+v, want b/2", top[1])
	}

	// Ties break alphabetically
	tied := Summarize(MustParseValue(`{"z": 1, "a": 2}`))
	all := tied.TopKeys(0)
	if len(all) != 2 || all[0].Key != "a" || all[1].Key != "z" {
		t.Errorf("tied keys = %+v, want a then z", all)
	}
}
