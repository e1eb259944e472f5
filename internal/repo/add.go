package repo

// Add stages path into the index and persists the index to disk.
func (r *Repository) Add(path string) error {
	if err := r.Index.Add(path); err != nil {
		return err
	}
	return r.Index.Save()
}
