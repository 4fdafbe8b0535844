package internal

import (
	"crypto/sha256"
	"encoding/hex"
)

// Deduplicator remembers node record content so a record duplicated at
// several structural positions can be written only once. The walker
// itself never deduplicates; this is an opt-in layer in front of the
// persister.
type Deduplicator struct {
	seen map[string]bool
}

// NewDeduplicator creates a new Deduplicator
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[string]bool)}
}

// Seen reports whether a record with identical content has been
// offered before, and remembers this one.
func (d *Deduplicator) Seen(n *NodeRecord) bool {
	hash := hashRecord(n)
	if d.seen[hash] {
		return true
	}
	d.seen[hash] = true
	return false
}

// hashRecord creates a content-based hash for a node record
func hashRecord(n *NodeRecord) string {
	h := sha256.New()
	if data, err := n.Record.Marshal(); err == nil {
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil))
}
