package forms

import (
	"fmt"
	"strconv"
	"strings"
)

// Score bounds for grading.
const (
	ScoreMin = 0
	ScoreMax = 100
)

// ParseScore converts raw grading input into a score. The input accepts
// digits only and the value must land in [0, 100]; anything else is
// rejected here, before any network call is made.
func ParseScore(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("score is required")
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("score must contain digits only")
		}
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("score must be a number")
	}
	if score < ScoreMin || score > ScoreMax {
		return 0, fmt.Errorf("score must be between %d and %d", ScoreMin, ScoreMax)
	}
	return score, nil
}
