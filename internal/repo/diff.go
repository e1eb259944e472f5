package repo

import (
	"fmt"
	"os"
	"sort"

	"github.com/jitvcs/jit/internal/diff"
)

// DiffIndexVsHead implements the zero-argument form of the diff command:
// for every path in the current HEAD tree, report either "No Difference
// Found" or the Myers edit script against the staged (index) version.
//
// A path staged in the index but absent from HEAD — a newly added file —
// is not reported at all, since it is never visited (the walk iterates the
// HEAD tree, not the index); a HEAD path missing from the index is reported
// as "No Difference Found". This matches original_source/main.cpp's diff
// callback exactly and is not "fixed" here.
func (r *Repository) DiffIndexVsHead() ([]string, error) {
	tree, err := r.Index.WriteTree()
	if err != nil {
		return nil, err
	}
	treeHash, err := r.Store.Store(tree)
	if err != nil {
		return nil, err
	}
	indexBlobs, err := r.Store.FlattenTree(treeHash)
	if err != nil {
		return nil, err
	}

	current, err := r.Refs.Resolve("HEAD")
	if err != nil {
		return nil, err
	}
	headBlobs := map[string]string{}
	if current != "" {
		commit, err := r.Store.RetrieveCommit(current)
		if err != nil {
			return nil, err
		}
		if commit != nil {
			headBlobs, err = r.Store.FlattenTree(commit.TreeHash)
			if err != nil {
				return nil, err
			}
		}
	}

	return r.diffAgainst(headBlobs, indexBlobs)
}

// DiffHeadVsCommit implements the one-argument form: HEAD's tree overlaid
// against the tree of an arbitrary commit digest.
func (r *Repository) DiffHeadVsCommit(commitDigest string) ([]string, error) {
	targetCommit, err := r.Store.RetrieveCommit(commitDigest)
	if err != nil {
		return nil, err
	}
	if targetCommit == nil {
		return nil, &NotFoundError{Msg: "Hash does not exits"}
	}
	targetBlobs, err := r.Store.FlattenTree(targetCommit.TreeHash)
	if err != nil {
		return nil, err
	}

	current, err := r.Refs.Resolve("HEAD")
	if err != nil {
		return nil, err
	}
	headBlobs := map[string]string{}
	if current != "" {
		headCommit, err := r.Store.RetrieveCommit(current)
		if err != nil {
			return nil, err
		}
		if headCommit != nil {
			headBlobs, err = r.Store.FlattenTree(headCommit.TreeHash)
			if err != nil {
				return nil, err
			}
		}
	}

	return r.diffAgainst(targetBlobs, headBlobs)
}

// DiffFiles implements the two-argument form: a raw textual diff of two
// filesystem files, with no object-store involvement at all.
func DiffFiles(pathA, pathB string) ([]string, error) {
	contentA, err := os.ReadFile(pathA)
	if err != nil {
		return nil, fmt.Errorf("repo: cannot open file: %s: %w", pathA, err)
	}
	contentB, err := os.ReadFile(pathB)
	if err != nil {
		return nil, fmt.Errorf("repo: cannot open file: %s: %w", pathB, err)
	}
	script := diff.Diff(diff.SplitLines(string(contentA)), diff.SplitLines(string(contentB)))
	return diff.Format(script), nil
}

// diffAgainst walks targetBlobs in sorted path order and, for each path,
// reports "No Difference Found" when the path is missing from reference or
// unchanged, otherwise the edit script from target's content to reference's
// content. The "---<path>---" header precedes each entry.
func (r *Repository) diffAgainst(targetBlobs, referenceBlobs map[string]string) ([]string, error) {
	paths := make([]string, 0, len(targetBlobs))
	for p := range targetBlobs {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var out []string
	for _, path := range paths {
		targetHash := targetBlobs[path]
		out = append(out, "---"+path+"---")

		refHash, ok := referenceBlobs[path]
		if !ok || refHash == targetHash {
			out = append(out, "No Difference Found")
			continue
		}

		targetBlob, err := r.Store.RetrieveBlob(targetHash)
		if err != nil {
			return nil, err
		}
		refBlob, err := r.Store.RetrieveBlob(refHash)
		if err != nil {
			return nil, err
		}

		script := diff.Diff(diff.SplitLines(string(targetBlob.Content)), diff.SplitLines(string(refBlob.Content)))
		out = append(out, diff.Format(script)...)
	}
	return out, nil
}
