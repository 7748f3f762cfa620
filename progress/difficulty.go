package progress

import (
	"fmt"
	"strings"
)

// Difficulty rates how hard a completed task was. The zero value is Easy.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Impossible
)

// Weight returns how many atomic reward units a completion of this
// difficulty is worth.
func (d Difficulty) Weight() int {
	switch d {
	case Medium:
		return 2
	case Hard:
		return 3
	case Impossible:
		return 4
	default:
		return 1
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Impossible:
		return "impossible"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty maps a quest-file or history value to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "impossible":
		return Impossible, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}
