package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"

	"honnef.co/go/id3v1"
)

func TestApplyFlags(t *testing.T) {
	t.Parallel()

	apply := func(tag *id3v1.Tag, args ...string) bool {
		set := newFlagSet(flag.ContinueOnError)
		require.NoError(t, set.Parse(args))
		changed, err := applyFlags(set, tag)
		require.NoError(t, err)
		return changed
	}

	tag := id3v1.NewTag()
	require.False(t, apply(tag, "file.mp3"))
	require.False(t, apply(tag, "-log", "file.mp3"))
	require.Equal(t, id3v1.NewTag(), tag)

	require.True(t, apply(tag, "-title", "newsong", "-genre", "funk", "file.mp3"))
	require.Equal(t, "newsong", tag.Title())
	require.Equal(t, id3v1.Genre(5), tag.Genre())

	// an explicitly empty value still counts
	require.True(t, apply(tag, "-artist", "", "file.mp3"))

	require.True(t, apply(tag, "-clear", "file.mp3"))
	require.Equal(t, id3v1.NewTag(), tag)

	require.True(t, apply(tag, "-genre", "17", "file.mp3"))
	require.Equal(t, id3v1.Genre(17), tag.Genre())
}

func TestApplyFlagsErrors(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"-genre", "polka"},
		{"-genre", "256"},
		{"-title", "日本語"},
	} {
		set := newFlagSet(flag.ContinueOnError)
		require.NoError(t, set.Parse(args))
		_, err := applyFlags(set, id3v1.NewTag())
		require.Error(t, err, "%v", args)
	}
}
