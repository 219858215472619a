// Package domain holds the project and task entities together with the
// validation rules every mutation goes through.
package domain

import (
	"fmt"
	"strings"
)

// Size limits, counted in whitespace-delimited words.
const (
	MaxNameWords        = 30
	MaxDescriptionWords = 150
)

// WordCount returns the number of whitespace-delimited tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ValidateProjectName checks that name holds between 1 and 30 words.
func ValidateProjectName(name string) error {
	if n := WordCount(name); n < 1 || n > MaxNameWords {
		return fmt.Errorf("%w: project name must be at most %d words and not empty (got %d)",
			ErrInvalidProjectNameSize, MaxNameWords, n)
	}
	return nil
}

// ValidateProjectDescription checks that desc holds at most 150 words.
// An empty description is valid.
func ValidateProjectDescription(desc string) error {
	if n := WordCount(desc); n > MaxDescriptionWords {
		return fmt.Errorf("%w: project description must be at most %d words (got %d)",
			ErrInvalidProjectDescriptionSize, MaxDescriptionWords, n)
	}
	return nil
}

// ValidateTaskTitle checks that title holds between 1 and 30 words.
func ValidateTaskTitle(title string) error {
	if n := WordCount(title); n < 1 || n > MaxNameWords {
		return fmt.Errorf("%w: task title must be at most %d words and not empty (got %d)",
			ErrInvalidTaskTitleSize, MaxNameWords, n)
	}
	return nil
}

// ValidateTaskDescription checks that desc holds at most 150 words.
func ValidateTaskDescription(desc string) error {
	if n := WordCount(desc); n > MaxDescriptionWords {
		return fmt.Errorf("%w: task description must be at most %d words (got %d)",
			ErrInvalidTaskDescriptionSize, MaxDescriptionWords, n)
	}
	return nil
}

// ValidateTaskStatus checks that status is exactly one of todo, doing, done.
func ValidateTaskStatus(status string) error {
	_, err := ParseStatus(status)
	return err
}
