package repo

import "github.com/jitvcs/jit/internal/objstore"

// Log walks the commit history from HEAD, returning one entry per commit.
// Returns an empty slice (not an error) when the current branch has no
// commits yet.
func (r *Repository) Log() ([]objstore.LogEntry, error) {
	head, err := r.Refs.Resolve("HEAD")
	if err != nil || head == "" {
		return nil, err
	}
	return r.Store.RetrieveLog(head)
}
