package object

import (
	"bytes"
	"fmt"
	"strings"
)

// EntryKind distinguishes the two kinds of entry a Tree may hold. A Tree
// never references a Commit directly.
type EntryKind string

const (
	EntryBlob EntryKind = "blob"
	EntryTree EntryKind = "tree"
)

// TreeEntry is one named slot in a Tree: either a blob (a file) or a nested
// tree (a subdirectory), referenced by digest.
type TreeEntry struct {
	Kind EntryKind
	Name string
	Hash string
}

// Tree is an ordered sequence of TreeEntry values representing one directory
// level. Entries are emitted in insertion order, and that order is part of
// the digest — two trees with the same entries added in a different order
// hash differently.
type Tree struct {
	Entries []TreeEntry
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{}
}

// Add appends an entry, overwriting any existing entry with the same name to
// preserve the "names are unique within a tree" invariant. Overwriting keeps
// the original insertion position so re-staging a path doesn't reorder it.
func (t *Tree) Add(kind EntryKind, name, hash string) {
	for i := range t.Entries {
		if t.Entries[i].Name == name {
			t.Entries[i] = TreeEntry{Kind: kind, Name: name, Hash: hash}
			return
		}
	}
	t.Entries = append(t.Entries, TreeEntry{Kind: kind, Name: name, Hash: hash})
}

func (t *Tree) Kind() Kind { return KindTree }

// Serialize implements Object. Each entry is encoded as
// "<kind> <name> <hash>\n" and concatenated in stored order, then framed.
func (t *Tree) Serialize() []byte {
	var body bytes.Buffer
	for _, e := range t.Entries {
		fmt.Fprintf(&body, "%s %s %s\n", e.Kind, e.Name, e.Hash)
	}
	return frame(KindTree, body.Bytes())
}

func parseTreeBody(body []byte) (*Tree, error) {
	t := NewTree()
	text := string(body)
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " ", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: bad tree entry line %q", ErrMalformed, line)
		}
		kind := EntryKind(parts[0])
		if kind != EntryBlob && kind != EntryTree {
			return nil, fmt.Errorf("%w: bad tree entry kind %q", ErrMalformed, parts[0])
		}
		t.Entries = append(t.Entries, TreeEntry{Kind: kind, Name: parts[1], Hash: parts[2]})
	}
	return t, nil
}
