// Package objstore implements the content-addressed object store: it
// persists Blob/Tree/Commit objects under their digest and retrieves them
// back, and provides the tree-reconstruction and commit-log traversal
// operations built on top of that persistence.
package objstore

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jitvcs/jit/internal/object"
)

// ObjectStore persists serialized objects under their digest and retrieves
// them by digest.
//
// Grounded on AureClai/merkledb's store.go ObjectStore, generalized from a
// single WriteObject/ReadRawObject pair (which let the caller supply any
// Object and deserialize nothing) into Store/Retrieve, which deserialize
// into the closed Blob/Tree/Commit variant the spec requires.
type ObjectStore struct {
	storage Storage
}

// New returns an ObjectStore backed by the given Storage.
func New(storage Storage) *ObjectStore {
	return &ObjectStore{storage: storage}
}

// Store serializes obj, computes its digest, and writes it to the backend.
// Storing an object with an existing digest is a successful no-op.
func (s *ObjectStore) Store(obj object.Object) (string, error) {
	data := obj.Serialize()
	digest := Hash(data)

	key, err := hex.DecodeString(digest)
	if err != nil {
		return "", fmt.Errorf("objstore: decode digest: %w", err)
	}
	if err := s.storage.Put(key, data); err != nil {
		return "", fmt.Errorf("objstore: store object: %w", err)
	}
	return digest, nil
}

// Retrieve reads and deserializes the object named by digest. It returns
// (nil, nil) for an unknown digest — callers check for a nil object, not an
// error, matching spec.md §4.1's "Returns null for an unknown digest."
func (s *ObjectStore) Retrieve(digest string) (object.Object, error) {
	if digest == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(digest)
	if err != nil {
		// A string that is not valid hex cannot name any stored object.
		return nil, nil
	}
	data, err := s.storage.Get(key)
	if err == ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("objstore: retrieve object %s: %w", digest, err)
	}
	return object.Parse(data)
}

// RetrieveTree retrieves digest and type-asserts it to a *object.Tree,
// returning nil if the digest is unknown or not a tree.
func (s *ObjectStore) RetrieveTree(digest string) (*object.Tree, error) {
	obj, err := s.Retrieve(digest)
	if err != nil || obj == nil {
		return nil, err
	}
	tree, _ := obj.(*object.Tree)
	return tree, nil
}

// RetrieveCommit retrieves digest and type-asserts it to a *object.Commit,
// returning nil if the digest is unknown or not a commit.
func (s *ObjectStore) RetrieveCommit(digest string) (*object.Commit, error) {
	obj, err := s.Retrieve(digest)
	if err != nil || obj == nil {
		return nil, err
	}
	commit, _ := obj.(*object.Commit)
	return commit, nil
}

// RetrieveBlob retrieves digest and type-asserts it to a *object.Blob,
// returning nil if the digest is unknown or not a blob.
func (s *ObjectStore) RetrieveBlob(digest string) (*object.Blob, error) {
	obj, err := s.Retrieve(digest)
	if err != nil || obj == nil {
		return nil, err
	}
	blob, _ := obj.(*object.Blob)
	return blob, nil
}

// Reconstruct recursively materializes the tree named by treeDigest onto
// the filesystem at targetPath. Pre-existing files at conflicting paths are
// overwritten; files present in the working tree but absent from the tree
// are left untouched — this matches the source behavior flagged in
// spec.md §9 (open question 2) and is not "fixed" here.
func (s *ObjectStore) Reconstruct(treeDigest, targetPath string) error {
	tree, err := s.RetrieveTree(treeDigest)
	if err != nil {
		return err
	}
	if tree == nil {
		return fmt.Errorf("objstore: reconstruct: %s is not a tree", treeDigest)
	}
	if err := os.MkdirAll(targetPath, 0o755); err != nil {
		return fmt.Errorf("objstore: create directory %s: %w", targetPath, err)
	}

	for _, entry := range tree.Entries {
		entryPath := filepath.Join(targetPath, entry.Name)
		switch entry.Kind {
		case object.EntryBlob:
			blob, err := s.RetrieveBlob(entry.Hash)
			if err != nil {
				return err
			}
			if blob == nil {
				return fmt.Errorf("objstore: reconstruct: %s is not a blob", entry.Hash)
			}
			if err := os.WriteFile(entryPath, blob.Content, 0o644); err != nil {
				return fmt.Errorf("objstore: write %s: %w", entryPath, err)
			}
		case object.EntryTree:
			if err := s.Reconstruct(entry.Hash, entryPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// LogEntry is one (digest, message) pair produced by RetrieveLog.
type LogEntry struct {
	Hash    string
	Message string
}

// RetrieveLog walks the commit history starting at startDigest, appending
// one LogEntry per commit visited. The walk follows first parents only
// (open question 4 in SPEC_FULL.md/DESIGN.md): this visits every commit on
// the current line of history and terminates even on a DAG with merges,
// without needing to track a visited-set.
func (s *ObjectStore) RetrieveLog(startDigest string) ([]LogEntry, error) {
	var out []LogEntry
	digest := startDigest
	for digest != "" {
		commit, err := s.RetrieveCommit(digest)
		if err != nil {
			return out, err
		}
		if commit == nil {
			break
		}
		out = append(out, LogEntry{Hash: digest, Message: commit.Message})
		if len(commit.ParentHashes) == 0 {
			break
		}
		digest = commit.ParentHashes[0]
	}
	return out, nil
}

// FlattenTree recursively walks the tree named by treeDigest and returns a
// flat path -> blob-digest map, joining path components with "/". It is the
// shared traversal behind diff (comparing two snapshots) and merge
// (collecting both sides of a divergent merge).
func (s *ObjectStore) FlattenTree(treeDigest string) (map[string]string, error) {
	out := map[string]string{}
	if err := s.flattenInto(treeDigest, "", out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ObjectStore) flattenInto(treeDigest, prefix string, out map[string]string) error {
	tree, err := s.RetrieveTree(treeDigest)
	if err != nil {
		return err
	}
	if tree == nil {
		return fmt.Errorf("objstore: %s is not a tree", treeDigest)
	}
	for _, entry := range tree.Entries {
		path := entry.Name
		if prefix != "" {
			path = prefix + "/" + entry.Name
		}
		switch entry.Kind {
		case object.EntryBlob:
			out[path] = entry.Hash
		case object.EntryTree:
			if err := s.flattenInto(entry.Hash, path, out); err != nil {
				return err
			}
		}
	}
	return nil
}
