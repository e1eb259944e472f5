package repo

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/jitvcs/jit/internal/object"
	"github.com/jitvcs/jit/internal/objstore"
)

// StatusResult is the three-way classification original_source/main.cpp's
// status callback produces.
type StatusResult struct {
	New      []string
	Modified []string
	Deleted  []string
}

// Clean reports whether the working tree matches the index exactly.
func (s *StatusResult) Clean() bool {
	return len(s.New) == 0 && len(s.Modified) == 0 && len(s.Deleted) == 0
}

// Status compares the working tree against the index: paths on disk but not
// staged are "new", paths staged but missing from disk are "deleted", and
// staged paths whose on-disk content hash no longer matches the staged
// digest are "modified".
func (r *Repository) Status() (*StatusResult, error) {
	untracked, err := r.walkWorkingTree()
	if err != nil {
		return nil, err
	}
	onDisk := make(map[string]bool, len(untracked))
	for _, p := range untracked {
		onDisk[p] = true
	}

	staged := r.Index.Entries()
	result := &StatusResult{}

	for path, digest := range staged {
		if !onDisk[path] {
			result.Deleted = append(result.Deleted, path)
			continue
		}
		content, err := os.ReadFile(filepath.Join(r.Root, filepath.FromSlash(path)))
		if err != nil {
			return nil, err
		}
		if objstore.Hash(object.NewBlob(content).Serialize()) != digest {
			result.Modified = append(result.Modified, path)
		}
	}
	for _, path := range untracked {
		if _, ok := staged[path]; !ok {
			result.New = append(result.New, path)
		}
	}

	sort.Strings(result.New)
	sort.Strings(result.Modified)
	sort.Strings(result.Deleted)
	return result, nil
}

func (r *Repository) walkWorkingTree() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(r.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == jitDirName {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(r.Root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	return paths, err
}
