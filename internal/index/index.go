// Package index implements the staging area: the mutable bridge between the
// working directory and the object graph. It holds a flat path->blob-digest
// mapping and knows how to materialize that mapping into (and back out of)
// a hierarchy of Tree objects.
//
// Grounded on AureClai/merkledb's workspace.go (Workspace.Add/Commit stage a
// single flat Tree incrementally), generalized into the spec's required
// path-grouped recursive tree builder per original_source/main.cpp's
// index.writeTree()/index.readTree() calls.
package index

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jitvcs/jit/internal/object"
	"github.com/jitvcs/jit/internal/objstore"
)

// repoDirName is skipped when Add recurses into a directory, so staging
// "." never tries to stage the repository's own metadata.
const repoDirName = ".jit"

// Index is the staging area for one repository.
type Index struct {
	store      *objstore.ObjectStore
	path       string
	workingDir string
	entries    map[string]string // working-tree-relative path -> blob digest
}

// New loads an Index from path if it exists, or returns an empty one ready
// to be populated and saved.
func New(path, workingDir string, store *objstore.ObjectStore) (*Index, error) {
	idx := &Index{store: store, path: path, workingDir: workingDir, entries: map[string]string{}}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return idx, nil
	}
	if err != nil {
		return nil, fmt.Errorf("index: read %s: %w", path, err)
	}

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("index: malformed line %q in %s", line, path)
		}
		idx.entries[parts[0]] = parts[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("index: scan %s: %w", path, err)
	}
	return idx, nil
}

// Add stages path. If path is a regular file, its bytes are read, wrapped in
// a Blob, stored, and the resulting (path, digest) pair recorded — replacing
// any existing entry for the same path. If path is a directory, Add recurses
// into every regular file beneath it, skipping any ".jit" component.
func (idx *Index) Add(path string) error {
	abs := filepath.Join(idx.workingDir, path)
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("index: stat %s: %w", path, err)
	}

	if info.IsDir() {
		return idx.addDir(abs)
	}
	return idx.addFile(abs)
}

func (idx *Index) addDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("index: read directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.Name() == repoDirName {
			continue
		}
		child := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if err := idx.addDir(child); err != nil {
				return err
			}
			continue
		}
		if err := idx.addFile(child); err != nil {
			return err
		}
	}
	return nil
}

func (idx *Index) addFile(abs string) error {
	content, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("index: read file %s: %w", abs, err)
	}
	digest, err := idx.store.Store(object.NewBlob(content))
	if err != nil {
		return fmt.Errorf("index: store blob for %s: %w", abs, err)
	}

	rel, err := filepath.Rel(idx.workingDir, abs)
	if err != nil {
		return fmt.Errorf("index: relativize %s: %w", abs, err)
	}
	idx.entries[filepath.ToSlash(rel)] = digest
	return nil
}

// WriteTree materializes the flat index into a hierarchy of Tree objects,
// grouping entries by their first path component and recursing on the
// remaining suffix for each group that has one. All intermediate trees are
// stored; the root Tree is returned (but not stored — callers store it once
// they're done, mirroring original_source/main.cpp's commit callback, which
// stores the tree explicitly after writeTree() returns it).
func (idx *Index) WriteTree() (*object.Tree, error) {
	return idx.buildTree(idx.entries)
}

func (idx *Index) buildTree(entries map[string]string) (*object.Tree, error) {
	leaves := map[string]string{}
	groups := map[string]map[string]string{}

	for path, digest := range entries {
		head, rest, nested := strings.Cut(path, "/")
		if !nested {
			leaves[head] = digest
			continue
		}
		if groups[head] == nil {
			groups[head] = map[string]string{}
		}
		groups[head][rest] = digest
	}

	names := make([]string, 0, len(leaves)+len(groups))
	seen := map[string]bool{}
	for name := range leaves {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for name := range groups {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)

	tree := object.NewTree()
	for _, name := range names {
		if digest, ok := leaves[name]; ok {
			tree.Add(object.EntryBlob, name, digest)
		}
		if sub, ok := groups[name]; ok {
			subtree, err := idx.buildTree(sub)
			if err != nil {
				return nil, err
			}
			hash, err := idx.store.Store(subtree)
			if err != nil {
				return nil, fmt.Errorf("index: store subtree %s: %w", name, err)
			}
			tree.Add(object.EntryTree, name, hash)
		}
	}
	return tree, nil
}

// ReadTree replaces the index's contents with the flattened paths of the
// tree named by treeDigest, computed by a depth-first walk; paths are
// joined with "/" and are relative to targetPath (the working tree root).
func (idx *Index) ReadTree(targetPath, treeDigest string) error {
	tree, err := idx.store.RetrieveTree(treeDigest)
	if err != nil {
		return err
	}
	if tree == nil {
		return fmt.Errorf("index: %s is not a tree", treeDigest)
	}

	flat := map[string]string{}
	if err := idx.flatten(tree, "", flat); err != nil {
		return err
	}
	idx.entries = flat
	idx.workingDir = targetPath
	return nil
}

func (idx *Index) flatten(tree *object.Tree, prefix string, out map[string]string) error {
	for _, entry := range tree.Entries {
		path := entry.Name
		if prefix != "" {
			path = prefix + "/" + entry.Name
		}
		switch entry.Kind {
		case object.EntryBlob:
			out[path] = entry.Hash
		case object.EntryTree:
			sub, err := idx.store.RetrieveTree(entry.Hash)
			if err != nil {
				return err
			}
			if sub == nil {
				return fmt.Errorf("index: %s is not a tree", entry.Hash)
			}
			if err := idx.flatten(sub, path, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// Save persists the flat path->digest mapping to the index's backing file,
// one "path\tdigest" line per entry (spec.md §6's recommended format),
// sorted by path for a stable on-disk diff.
func (idx *Index) Save() error {
	paths := make([]string, 0, len(idx.entries))
	for p := range idx.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var buf strings.Builder
	for _, p := range paths {
		fmt.Fprintf(&buf, "%s\t%s\n", p, idx.entries[p])
	}

	if err := os.MkdirAll(filepath.Dir(idx.path), 0o755); err != nil {
		return fmt.Errorf("index: create directory for %s: %w", idx.path, err)
	}
	if err := os.WriteFile(idx.path, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("index: write %s: %w", idx.path, err)
	}
	return nil
}

// Entries returns a copy of the staged path->digest mapping.
func (idx *Index) Entries() map[string]string {
	out := make(map[string]string, len(idx.entries))
	for k, v := range idx.entries {
		out[k] = v
	}
	return out
}
