// Package repo wires the object store, index, and refs together into the
// per-command operations the CLI exposes: init, add, commit, log, diff,
// status, checkout, branch, merge. Each method here is the thin shell
// spec.md §1 calls an "external collaborator" translating one CLI verb
// into core operations — grounded on original_source/main.cpp's per-command
// callback bodies.
package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/jitvcs/jit/internal/config"
	"github.com/jitvcs/jit/internal/index"
	"github.com/jitvcs/jit/internal/merge"
	"github.com/jitvcs/jit/internal/objstore"
	"github.com/jitvcs/jit/internal/refs"
)

const (
	jitDirName    = ".jit"
	objectsDir    = "objects"
	refsDir       = "refs"
	indexFile     = "index"
	configFile    = "config"
	lockFile      = "lock"
	defaultBranch = "main"
)

// Repository is an opened jit repository: its working tree root, its
// .jit directory, and the component managers layered over it.
type Repository struct {
	Root   string
	JitDir string

	Store  *objstore.ObjectStore
	Index  *index.Index
	Refs   *refs.Refs
	Config *config.Config
	Merge  *merge.Engine

	lock *flock.Flock
}

// Discover walks upward from start looking for a ".jit" directory, the way
// original_source/main.cpp's repoRoot() does, and returns the working tree
// root that contains it.
func Discover(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("repo: resolve %s: %w", start, err)
	}
	for {
		info, statErr := os.Stat(filepath.Join(dir, jitDirName))
		if statErr == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotARepository
		}
		dir = parent
	}
}

// Open builds a Repository over an already-discovered working tree root.
func Open(root string) (*Repository, error) {
	jitDir := filepath.Join(root, jitDirName)

	storage := objstore.NewFilesystemStorage(filepath.Join(jitDir, objectsDir))
	store := objstore.New(storage)

	idx, err := index.New(filepath.Join(jitDir, indexFile), root, store)
	if err != nil {
		return nil, err
	}

	r := refs.New(filepath.Join(jitDir, refsDir))

	cfg, err := config.Load(filepath.Join(jitDir, configFile))
	if err != nil {
		return nil, err
	}

	return &Repository{
		Root:   root,
		JitDir: jitDir,
		Store:  store,
		Index:  idx,
		Refs:   r,
		Config: cfg,
		Merge:  merge.New(store, r),
		lock:   flock.New(filepath.Join(jitDir, lockFile)),
	}, nil
}

// DiscoverAndOpen is the common case: find the repository above cwd and
// open it.
func DiscoverAndOpen(cwd string) (*Repository, error) {
	root, err := Discover(cwd)
	if err != nil {
		return nil, err
	}
	return Open(root)
}

// Init creates a new repository rooted at workingDir: a .jit directory with
// empty objects/refs subdirectories, a "main" branch with no commits yet,
// and HEAD attached to it. It fails if .jit already exists.
func Init(workingDir string) (*Repository, error) {
	jitDir := filepath.Join(workingDir, jitDirName)
	if _, err := os.Stat(jitDir); err == nil {
		return nil, ErrAlreadyExists
	}

	if err := os.MkdirAll(filepath.Join(jitDir, objectsDir), 0o755); err != nil {
		return nil, fmt.Errorf("repo: create objects directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(jitDir, refsDir), 0o755); err != nil {
		return nil, fmt.Errorf("repo: create refs directory: %w", err)
	}
	// An empty branch file: the branch exists (IsBranch is true, so HEAD can
	// attach to it) even though it has no commits yet (Resolve returns "").
	if err := os.WriteFile(filepath.Join(jitDir, refsDir, defaultBranch), nil, 0o644); err != nil {
		return nil, fmt.Errorf("repo: create default branch: %w", err)
	}

	repository, err := Open(workingDir)
	if err != nil {
		return nil, err
	}
	if err := repository.Refs.UpdateHead(defaultBranch); err != nil {
		return nil, err
	}
	return repository, nil
}

// Lock acquires the advisory lock covering the index and refs for the
// duration of a command (spec.md §5: "Implementations may add an advisory
// lock file covering the index and refs; not required for parity").
func (r *Repository) Lock() error {
	if err := r.lock.Lock(); err != nil {
		return fmt.Errorf("repo: acquire lock: %w", err)
	}
	return nil
}

// Unlock releases the advisory lock acquired by Lock.
func (r *Repository) Unlock() error {
	if err := r.lock.Unlock(); err != nil {
		return fmt.Errorf("repo: release lock: %w", err)
	}
	return nil
}
