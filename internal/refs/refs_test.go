package refs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRefs(t *testing.T) *Refs {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "refs"))
}

func TestUpdateHeadAttachesToExistingBranch(t *testing.T) {
	r := newTestRefs(t)
	require.NoError(t, r.UpdateRef("main", ""))

	require.NoError(t, r.UpdateHead("main"))

	isBranch, err := r.IsHeadBranch()
	require.NoError(t, err)
	require.True(t, isBranch)

	head, err := r.GetHead()
	require.NoError(t, err)
	require.Equal(t, "main", head)
}

func TestUpdateHeadDetachesForRawDigest(t *testing.T) {
	r := newTestRefs(t)
	require.NoError(t, r.UpdateHead("deadbeef"))

	isBranch, err := r.IsHeadBranch()
	require.NoError(t, err)
	require.False(t, isBranch)

	head, err := r.GetHead()
	require.NoError(t, err)
	require.Equal(t, "deadbeef", head)
}

func TestResolveHeadThroughBranch(t *testing.T) {
	r := newTestRefs(t)
	require.NoError(t, r.UpdateRef("main", "commit123"))
	require.NoError(t, r.UpdateHead("main"))

	digest, err := r.Resolve("HEAD")
	require.NoError(t, err)
	require.Equal(t, "commit123", digest)
}

func TestResolveHeadDetached(t *testing.T) {
	r := newTestRefs(t)
	require.NoError(t, r.UpdateHead("commit456"))

	digest, err := r.Resolve("HEAD")
	require.NoError(t, err)
	require.Equal(t, "commit456", digest)
}

func TestResolveEmptyBranchReturnsEmptyString(t *testing.T) {
	r := newTestRefs(t)
	require.NoError(t, r.UpdateRef("main", ""))
	require.NoError(t, r.UpdateHead("main"))

	digest, err := r.Resolve("HEAD")
	require.NoError(t, err)
	require.Equal(t, "", digest)
}

func TestUpdateRefCreatesBranchFile(t *testing.T) {
	r := newTestRefs(t)
	require.NoError(t, r.UpdateRef("feature", "abc123"))

	isBranch, err := r.IsBranch("feature")
	require.NoError(t, err)
	require.True(t, isBranch)

	digest, err := r.Resolve("feature")
	require.NoError(t, err)
	require.Equal(t, "abc123", digest)
}

func TestGetRefsListsBranches(t *testing.T) {
	r := newTestRefs(t)
	require.NoError(t, r.UpdateRef("main", "a"))
	require.NoError(t, r.UpdateRef("feature", "b"))

	branches, err := r.GetRefs()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"main", "feature"}, branches)
}

func TestMergeHeadRoundTrip(t *testing.T) {
	r := newTestRefs(t)

	head, err := r.GetMergeHead()
	require.NoError(t, err)
	require.Equal(t, "", head)

	require.NoError(t, r.UpdateMergeHead("theirs-digest"))
	head, err = r.GetMergeHead()
	require.NoError(t, err)
	require.Equal(t, "theirs-digest", head)

	require.NoError(t, r.UpdateMergeHead(""))
	head, err = r.GetMergeHead()
	require.NoError(t, err)
	require.Equal(t, "", head)
}
