package repo

import "sort"

// ListBranches returns every branch name prefixed with " ", except the
// branch HEAD currently points to (if attached), which is prefixed with
// "+". Mirrors original_source/main.cpp's branch listing.
func (r *Repository) ListBranches() ([]string, error) {
	branches, err := r.Refs.GetRefs()
	if err != nil {
		return nil, err
	}
	sort.Strings(branches)

	head, err := r.Refs.GetHead()
	if err != nil {
		return nil, err
	}
	isBranch, err := r.Refs.IsHeadBranch()
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(branches))
	for _, b := range branches {
		prefix := " "
		if isBranch && b == head {
			prefix = "+"
		}
		out = append(out, prefix+b)
	}
	return out, nil
}

// CreateBranch records a new ref named name pointing at whatever HEAD
// currently resolves to. It does not switch to the new branch.
func (r *Repository) CreateBranch(name string) error {
	current, err := r.Refs.Resolve("HEAD")
	if err != nil {
		return err
	}
	return r.Refs.UpdateRef(name, current)
}
