package repo

import (
	"fmt"

	"github.com/jitvcs/jit/internal/object"
)

// Commit writes the staged tree, creates a commit on top of the current
// HEAD (and, if a merge is pending, on top of MERGE_HEAD as a second
// parent), and advances the current branch if HEAD is attached.
//
// Grounded on original_source/main.cpp's commit callback, including its
// MERGE_HEAD-consuming behavior and the fact that a commit made with HEAD
// detached is stored but does not move any ref (the original only calls
// refs.updateRef when refs.isHeadBranch()).
func (r *Repository) Commit(message string) (string, error) {
	current, err := r.Refs.Resolve("HEAD")
	if err != nil {
		return "", err
	}

	tree, err := r.Index.WriteTree()
	if err != nil {
		return "", err
	}
	treeHash, err := r.Store.Store(tree)
	if err != nil {
		return "", err
	}

	commit := &object.Commit{
		TreeHash: treeHash,
		Author:   r.Config.Author(),
		Message:  message,
	}
	if current != "" {
		commit.ParentHashes = append(commit.ParentHashes, current)
	}

	mergeHead, err := r.Refs.GetMergeHead()
	if err != nil {
		return "", err
	}
	if mergeHead != "" {
		otherParent, err := r.Refs.Resolve(mergeHead)
		if err != nil {
			return "", err
		}
		if otherParent != "" {
			commit.ParentHashes = append(commit.ParentHashes, otherParent)
		}
		if err := r.Refs.UpdateMergeHead(""); err != nil {
			return "", err
		}
	}

	hash, err := r.Store.Store(commit)
	if err != nil {
		return "", err
	}

	isBranch, err := r.Refs.IsHeadBranch()
	if err != nil {
		return "", err
	}
	if isBranch {
		head, err := r.Refs.GetHead()
		if err != nil {
			return "", err
		}
		if err := r.Refs.UpdateRef(head, hash); err != nil {
			return "", fmt.Errorf("repo: advance branch %s: %w", head, err)
		}
	}

	return hash, nil
}
