package quiz

import "strings"

// IsCorrect compares a learner's answer with the expected one. Comparison
// trims surrounding whitespace and folds case, so "đúng " matches "Đúng".
func IsCorrect(given, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(expected))
}
