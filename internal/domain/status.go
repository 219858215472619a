package domain

import (
	"fmt"
	"strings"
)

// Status is the workflow state of a task.
type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// Statuses lists every valid status in workflow order.
var Statuses = []Status{StatusTodo, StatusDoing, StatusDone}

// ParseStatus converts s into a Status. Matching is case-sensitive.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	names := make([]string, len(Statuses))
	for i, st := range Statuses {
		names[i] = string(st)
	}
	return "", fmt.Errorf("%w: %q, must be one of: %s", ErrInvalidTaskStatus, s, strings.Join(names, ", "))
}

func (s Status) String() string {
	return string(s)
}
