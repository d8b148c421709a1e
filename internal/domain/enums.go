package domain

import (
	"fmt"
	"strings"
)

// Difficulty selects the clue-count band a puzzle is carved to.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty maps a label to its Difficulty, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// MarshalJSON emits the lowercase label so records read as {"d":"medium"}.
func (d Difficulty) MarshalJSON() ([]byte, error) {
	switch d {
	case Easy, Medium, Hard:
		return []byte(`"` + d.String() + `"`), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
}

func (d *Difficulty) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDifficulty(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
