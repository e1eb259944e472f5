package repo

import "errors"

// ErrAlreadyExists is returned by Init when a .jit directory already exists.
var ErrAlreadyExists = errors.New(".jit directory already exists")

// ErrNotARepository is returned by Discover/Open when no .jit directory is
// found walking up from the start directory.
var ErrNotARepository = errors.New("not a jit repository (or any parent up to /)")

// NotFoundError reports a semantic lookup failure (unknown commit digest,
// unknown branch). Per spec.md §7 these are reported as a message and the
// command exits cleanly rather than aborting with a nonzero status.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// DetachedHeadError is returned by Merge when HEAD does not resolve to a
// commit through an attached branch (spec.md §7 DetachedHeadError).
type DetachedHeadError struct{}

func (e *DetachedHeadError) Error() string { return "head is detached" }
