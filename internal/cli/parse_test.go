package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePatternOnly(t *testing.T) {
	opts, err := Parse([]string{"gr", "foo"})
	require.NoError(t, err)
	assert.Equal(t, "foo", opts.Pattern)
	assert.Empty(t, opts.Paths)
}

func TestParsePatternAndPaths(t *testing.T) {
	opts, err := Parse([]string{"gr", "foo", "a.txt", "b.txt"})
	require.NoError(t, err)
	assert.Equal(t, "foo", opts.Pattern)
	assert.Equal(t, []string{"a.txt", "b.txt"}, opts.Paths)
}

func TestParsePermutesOptionsAfterNonOptions(t *testing.T) {
	// GNU-style permutation: options are moved ahead of the non-option
	// arguments, whose relative order is preserved, so the first non-option
	// is still the pattern and the rest are paths.
	opts, err := Parse([]string{"gr", "a.txt", "-l", "foo"})
	require.NoError(t, err)
	assert.True(t, opts.FilesWithMatches)
	assert.Equal(t, "a.txt", opts.Pattern)
	assert.Equal(t, []string{"foo"}, opts.Paths)
}

func TestParseDoubleDashStopsPermutation(t *testing.T) {
	opts, err := Parse([]string{"gr", "-l", "--", "-foo", "a.txt"})
	require.NoError(t, err)
	assert.True(t, opts.FilesWithMatches)
	assert.Equal(t, "-foo", opts.Pattern)
	assert.Equal(t, []string{"a.txt"}, opts.Paths)
}

func TestParseLongOptionWithEquals(t *testing.T) {
	opts, err := Parse([]string{"gr", "--before-context=3", "foo"})
	require.NoError(t, err)
	assert.Equal(t, 3, opts.BeforeContext)
}

func TestParseLongOptionSeparateArg(t *testing.T) {
	opts, err := Parse([]string{"gr", "--context", "2", "foo"})
	require.NoError(t, err)
	assert.Equal(t, 2, opts.BeforeContext)
	assert.Equal(t, 2, opts.AfterContext)
}

func TestParseUnambiguousAbbreviation(t *testing.T) {
	opts, err := Parse([]string{"gr", "--mult", "foo"})
	require.NoError(t, err)
	assert.True(t, opts.Multiline)
}

func TestParseAmbiguousAbbreviation(t *testing.T) {
	// "--co" matches both "context" and "count".
	_, err := Parse([]string{"gr", "--co", "foo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestParseUnambiguousAfterNarrowing(t *testing.T) {
	// "--cou" narrows to "count" alone.
	opts, err := Parse([]string{"gr", "--cou", "foo"})
	require.NoError(t, err)
	assert.True(t, opts.CountOnly)
}

func TestParseUnrecognizedLongOption(t *testing.T) {
	_, err := Parse([]string{"gr", "--bogus", "foo"})
	require.Error(t, err)
}

func TestParseCombinedShortFlags(t *testing.T) {
	opts, err := Parse([]string{"gr", "-lQ", "foo"})
	require.NoError(t, err)
	assert.True(t, opts.FilesWithMatches)
	assert.True(t, opts.Literal)
}

func TestParseShortOptionAttachedArg(t *testing.T) {
	opts, err := Parse([]string{"gr", "-C3", "foo"})
	require.NoError(t, err)
	assert.Equal(t, 3, opts.BeforeContext)
	assert.Equal(t, 3, opts.AfterContext)
}

func TestParseShortOptionSeparateArg(t *testing.T) {
	opts, err := Parse([]string{"gr", "-C", "3", "foo"})
	require.NoError(t, err)
	assert.Equal(t, 3, opts.BeforeContext)
}

func TestParseInvalidNumber(t *testing.T) {
	_, err := Parse([]string{"gr", "-C", "notanumber", "foo"})
	require.Error(t, err)
}

func TestParseMissingPattern(t *testing.T) {
	_, err := Parse([]string{"gr", "-l"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing pattern")
}

func TestParseCountForcesContextToZero(t *testing.T) {
	opts, err := Parse([]string{"gr", "-C", "5", "-c", "foo"})
	require.NoError(t, err)
	assert.Equal(t, 0, opts.BeforeContext)
	assert.Equal(t, 0, opts.AfterContext)
}

func TestParseFilesWithMatchesForcesContextToZero(t *testing.T) {
	opts, err := Parse([]string{"gr", "-A", "5", "-l", "foo"})
	require.NoError(t, err)
	assert.Equal(t, 0, opts.AfterContext)
}

func TestParseHelpSkipsPatternRequirement(t *testing.T) {
	opts, err := Parse([]string{"gr", "-h"})
	require.NoError(t, err)
	assert.True(t, opts.Help)
}

func TestParseVersionSkipsPatternRequirement(t *testing.T) {
	opts, err := Parse([]string{"gr", "--version"})
	require.NoError(t, err)
	assert.True(t, opts.Version)
}
