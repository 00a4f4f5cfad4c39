// meta/meta.go
package meta

import (
	"fmt"
	"strconv"
	"strings"
)

// MAX_TURNS caps a game in plies, passes included. A real game ends long before.
const MAX_TURNS = 200

// DEFAULT_SEARCH_DEPTH is the depth of a game tree built without WithDepth.
const DEFAULT_SEARCH_DEPTH = 2

// OPENING_PLIES is the number of random plies played before agents take over in experiments.
const OPENING_PLIES = 4

// Difficulty selects how many plies an automated player searches.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Normal
	Hard
	VeryHard
)

// Difficulties lists every level from weakest to strongest.
var Difficulties = []Difficulty{Easy, Normal, Hard, VeryHard}

var difficultyNames = map[Difficulty]string{
	Easy:     "easy",
	Normal:   "normal",
	Hard:     "hard",
	VeryHard: "very-hard",
}

// SearchDepth maps the level to a search depth: Easy 1, Normal 2, Hard 3, Very-Hard 4.
func (d Difficulty) SearchDepth() int {
	return int(d)
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty accepts a level name (easy, normal, hard, very-hard) or its number 1-4.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		d := Difficulty(n)
		if d < Easy || d > VeryHard {
			return 0, fmt.Errorf("unknown difficulty %q: want 1-4", s)
		}
		return d, nil
	}

	for d, name := range difficultyNames {
		if s == name || s == strings.ReplaceAll(name, "-", "") {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q: want easy, normal, hard or very-hard", s)
}
