package meta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDifficulty(t *testing.T) {
	t.Run("search depth table", func(t *testing.T) {
		require.Equal(t, 1, Easy.SearchDepth())
		require.Equal(t, 2, Normal.SearchDepth())
		require.Equal(t, 3, Hard.SearchDepth())
		require.Equal(t, 4, VeryHard.SearchDepth())
	})

	t.Run("parsing names and numbers", func(t *testing.T) {
		for input, want := range map[string]Difficulty{
			"easy":      Easy,
			"Normal":    Normal,
			" HARD ":    Hard,
			"very-hard": VeryHard,
			"veryhard":  VeryHard,
			"1":         Easy,
			"4":         VeryHard,
		} {
			got, err := ParseDifficulty(input)
			require.NoError(t, err, "Input %q should parse", input)
			require.Equal(t, want, got)
		}
	})

	t.Run("rejecting unknown levels", func(t *testing.T) {
		for _, input := range []string{"", "0", "5", "impossible"} {
			_, err := ParseDifficulty(input)
			require.Error(t, err, "Input %q should be rejected", input)
		}
	})

	t.Run("names parse back", func(t *testing.T) {
		for _, d := range Difficulties {
			got, err := ParseDifficulty(d.String())
			require.NoError(t, err)
			require.Equal(t, d, got)
		}
	})
}
