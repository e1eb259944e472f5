package repo

import "fmt"

// MergeResult reports which merge strategy Merge actually took, so the CLI
// can print the right narration (spec.md testable scenario S4 expects
// "performed fast-forward merge" verbatim for the fast-forward case).
type MergeResult struct {
	FastForward bool
}

// MergeBranch merges branchName into the current branch. HEAD must be
// attached to a branch that already has at least one commit —
// original_source's merge callback treats "HEAD resolves to no commit" the
// same whether the cause is a detached HEAD or an empty branch, and this
// preserves that rather than distinguishing the two (spec.md §9 open
// question).
func (r *Repository) MergeBranch(branchName string) (*MergeResult, error) {
	attached, err := r.Refs.IsHeadBranch()
	if err != nil {
		return nil, err
	}
	if !attached {
		return nil, &DetachedHeadError{}
	}

	ourDigest, err := r.Refs.Resolve("HEAD")
	if err != nil {
		return nil, err
	}
	ourHead, err := r.Store.RetrieveCommit(ourDigest)
	if err != nil {
		return nil, err
	}
	if ourHead == nil {
		return nil, &DetachedHeadError{}
	}

	theirDigest, err := r.Refs.Resolve(branchName)
	if err != nil {
		return nil, err
	}
	theirHead, err := r.Store.RetrieveCommit(theirDigest)
	if err != nil {
		return nil, err
	}
	if theirHead == nil {
		return nil, &NotFoundError{Msg: fmt.Sprintf("unknown branch '%s'", branchName)}
	}

	isFF, err := r.Merge.IsAncestor(ourDigest, theirDigest)
	if err != nil {
		return nil, err
	}

	if isFF {
		branchRef, err := r.Refs.GetHead()
		if err != nil {
			return nil, err
		}
		if err := r.Merge.FastForward(branchRef, theirDigest, r.Root); err != nil {
			return nil, err
		}
		return &MergeResult{FastForward: true}, nil
	}

	if err := r.Merge.Divergent(ourDigest, theirDigest, branchName, r.Root); err != nil {
		return nil, err
	}
	return &MergeResult{FastForward: false}, nil
}
