package objstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jitvcs/jit/internal/object"
)

func TestStoreAndRetrieveBlob(t *testing.T) {
	store := New(newMemoryStorage())

	digest, err := store.Store(object.NewBlob([]byte("payload")))
	require.NoError(t, err)
	require.Len(t, digest, 64) // hex-encoded sha256

	blob, err := store.RetrieveBlob(digest)
	require.NoError(t, err)
	require.NotNil(t, blob)
	require.Equal(t, []byte("payload"), blob.Content)
}

func TestStoreIsIdempotent(t *testing.T) {
	store := New(newMemoryStorage())

	d1, err := store.Store(object.NewBlob([]byte("same")))
	require.NoError(t, err)
	d2, err := store.Store(object.NewBlob([]byte("same")))
	require.NoError(t, err)
	require.Equal(t, d1, d2)
}

func TestRetrieveUnknownDigestReturnsNilNotError(t *testing.T) {
	store := New(newMemoryStorage())
	obj, err := store.Retrieve("0000000000000000000000000000000000000000000000000000000000000000")
	require.NoError(t, err)
	require.Nil(t, obj)
}

func TestRetrieveWrongKindReturnsNil(t *testing.T) {
	store := New(newMemoryStorage())
	digest, err := store.Store(object.NewBlob([]byte("x")))
	require.NoError(t, err)

	tree, err := store.RetrieveTree(digest)
	require.NoError(t, err)
	require.Nil(t, tree)
}

func TestReconstructRoundTrip(t *testing.T) {
	store := New(newMemoryStorage())

	blobHash, err := store.Store(object.NewBlob([]byte("hello\n")))
	require.NoError(t, err)

	tree := object.NewTree()
	tree.Add(object.EntryBlob, "a.txt", blobHash)
	treeHash, err := store.Store(tree)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, store.Reconstruct(treeHash, dir))

	content, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(content))

	flat, err := store.FlattenTree(treeHash)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"a.txt": blobHash}, flat)
}

func TestFlattenTreeNested(t *testing.T) {
	store := New(newMemoryStorage())

	fileHash, err := store.Store(object.NewBlob([]byte("nested")))
	require.NoError(t, err)

	subtree := object.NewTree()
	subtree.Add(object.EntryBlob, "inner.txt", fileHash)
	subtreeHash, err := store.Store(subtree)
	require.NoError(t, err)

	root := object.NewTree()
	root.Add(object.EntryTree, "dir", subtreeHash)
	rootHash, err := store.Store(root)
	require.NoError(t, err)

	flat, err := store.FlattenTree(rootHash)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"dir/inner.txt": fileHash}, flat)
}

func TestRetrieveLogFollowsFirstParentOnly(t *testing.T) {
	store := New(newMemoryStorage())

	base := &object.Commit{TreeHash: "t0", Author: "a", Message: "base"}
	baseHash, err := store.Store(base)
	require.NoError(t, err)

	sideBranch := &object.Commit{TreeHash: "t1", ParentHashes: []string{baseHash}, Author: "a", Message: "side"}
	sideHash, err := store.Store(sideBranch)
	require.NoError(t, err)

	merge := &object.Commit{TreeHash: "t2", ParentHashes: []string{baseHash, sideHash}, Author: "a", Message: "merge"}
	mergeHash, err := store.Store(merge)
	require.NoError(t, err)

	log, err := store.RetrieveLog(mergeHash)
	require.NoError(t, err)
	require.Len(t, log, 2)
	require.Equal(t, "merge", log[0].Message)
	require.Equal(t, "base", log[1].Message)
}
