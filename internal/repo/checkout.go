package repo

import "fmt"

// Checkout switches the working tree, index, and HEAD to target, which may
// be a branch name or a raw commit digest. The branch namespace is checked
// first (spec.md §9 open question 1), so a branch name is never mistaken
// for a literal digest.
func (r *Repository) Checkout(target string) error {
	isBranch, err := r.Refs.IsBranch(target)
	if err != nil {
		return err
	}

	digest := target
	if isBranch {
		digest, err = r.Refs.Resolve(target)
		if err != nil {
			return err
		}
	}

	commit, err := r.Store.RetrieveCommit(digest)
	if err != nil {
		return err
	}
	if commit == nil {
		return &NotFoundError{Msg: fmt.Sprintf("no such branch or commit '%s'", target)}
	}

	if err := r.Store.Reconstruct(commit.TreeHash, r.Root); err != nil {
		return err
	}
	if err := r.Index.ReadTree(r.Root, commit.TreeHash); err != nil {
		return err
	}
	if err := r.Refs.UpdateHead(target); err != nil {
		return err
	}
	return r.Index.Save()
}
