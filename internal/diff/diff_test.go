package diff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDiffIdenticalInputsAreAllCommon(t *testing.T) {
	lines := Diff([]string{"a", "b", "c"}, []string{"a", "b", "c"})
	for _, l := range lines {
		require.Equal(t, Common, l.Tag)
	}
	require.Len(t, lines, 3)
}

func TestDiffEmptyInputsProduceNoLines(t *testing.T) {
	require.Empty(t, Diff(nil, nil))
}

func TestDiffPureAddition(t *testing.T) {
	lines := Diff(nil, []string{"x", "y"})
	require.Len(t, lines, 2)
	for _, l := range lines {
		require.Equal(t, Added, l.Tag)
	}
}

func TestDiffPureRemoval(t *testing.T) {
	lines := Diff([]string{"x", "y"}, nil)
	require.Len(t, lines, 2)
	for _, l := range lines {
		require.Equal(t, Removed, l.Tag)
	}
}

func TestDiffReconstructsBothSides(t *testing.T) {
	a := []string{"hello"}
	b := []string{"hello", "world"}
	lines := Diff(a, b)

	var reconstructedA, reconstructedB []string
	for _, l := range lines {
		switch l.Tag {
		case Common:
			reconstructedA = append(reconstructedA, l.Text)
			reconstructedB = append(reconstructedB, l.Text)
		case Removed:
			reconstructedA = append(reconstructedA, l.Text)
		case Added:
			reconstructedB = append(reconstructedB, l.Text)
		}
	}
	require.Equal(t, a, reconstructedA)
	require.Equal(t, b, reconstructedB)
}

func TestFormatPrefixesTag(t *testing.T) {
	lines := []Line{{Tag: Common, Text: "hello"}, {Tag: Added, Text: "world"}}
	require.Equal(t, []string{" hello", "+world"}, Format(lines))
}

func TestSplitLinesDropsTrailingNewlineArtifact(t *testing.T) {
	require.Equal(t, []string{"hello"}, SplitLines("hello\n"))
	require.Equal(t, []string{"hello", "world"}, SplitLines("hello\nworld\n"))
	require.Nil(t, SplitLines(""))
}

// TestDiffSpecScenarioS3 pins the exact scenario spec.md calls S3: a file
// changed from "hello" to "hello\nworld" diffs to a common "hello" line
// followed by an added "world" line.
func TestDiffSpecScenarioS3(t *testing.T) {
	lines := Diff(SplitLines("hello\n"), SplitLines("hello\nworld\n"))
	require.Equal(t, []string{" hello", "+world"}, Format(lines))
}

// TestDiffSpecScenarioS6 pins spec.md's canonical CLRS-style example: the
// classic a/b pair whose shortest edit script has exactly 5 non-common
// lines (3 deletions, 2 insertions).
func TestDiffSpecScenarioS6(t *testing.T) {
	a := []string{"A", "B", "C", "A", "B", "B", "A"}
	b := []string{"C", "B", "A", "B", "A", "C"}
	lines := Diff(a, b)

	var removed, added []Line
	for _, l := range lines {
		switch l.Tag {
		case Removed:
			removed = append(removed, l)
		case Added:
			added = append(added, l)
		}
	}
	require.Len(t, removed, 3)
	require.Len(t, added, 2)

	var reconstructedA, reconstructedB []string
	for _, l := range lines {
		if l.Tag == Common || l.Tag == Removed {
			reconstructedA = append(reconstructedA, l.Text)
		}
		if l.Tag == Common || l.Tag == Added {
			reconstructedB = append(reconstructedB, l.Text)
		}
	}
	if diff := cmp.Diff(a, reconstructedA); diff != "" {
		t.Errorf("reconstructed a mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(b, reconstructedB); diff != "" {
		t.Errorf("reconstructed b mismatch (-want +got):\n%s", diff)
	}
}
