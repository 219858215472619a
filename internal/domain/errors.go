package domain

import "errors"

// Validation errors
var (
	ErrInvalidProjectNameSize        = errors.New("invalid project name size")
	ErrInvalidProjectDescriptionSize = errors.New("invalid project description size")
	ErrInvalidTaskTitleSize          = errors.New("invalid task title size")
	ErrInvalidTaskDescriptionSize    = errors.New("invalid task description size")
	ErrInvalidTaskStatus             = errors.New("invalid task status")
	ErrInvalidTaskDeadline           = errors.New("invalid task deadline")
)

// Limit and uniqueness errors
var (
	ErrDuplicateProjectName = errors.New("duplicate project name")
	ErrMaxProjectsReached   = errors.New("maximum number of projects reached")
	ErrMaxTasksReached      = errors.New("maximum number of tasks reached")

	// ErrTaskIDCollision is returned when a freshly generated task identifier
	// is already taken. The existing task is never overwritten.
	ErrTaskIDCollision = errors.New("task identifier collision")
)

// Lookup errors
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
)

var clientErrors = []error{
	ErrInvalidProjectNameSize,
	ErrInvalidProjectDescriptionSize,
	ErrInvalidTaskTitleSize,
	ErrInvalidTaskDescriptionSize,
	ErrInvalidTaskStatus,
	ErrInvalidTaskDeadline,
	ErrDuplicateProjectName,
	ErrMaxProjectsReached,
	ErrMaxTasksReached,
}

// IsNotFound reports whether err is one of the lookup error kinds.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProjectNotFound) || errors.Is(err, ErrTaskNotFound)
}

// IsClientError reports whether err was caused by the caller's input:
// a validation, limit or duplicate kind.
func IsClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
