package domain

import "time"

// TaskFields is the full set of caller-editable task fields.
type TaskFields struct {
	Title       string
	Description string
	Status      string
	Deadline    DeadlineInput
}

type validTaskFields struct {
	title       string
	description string
	status      Status
	deadline    *time.Time
}

// Validate checks every field against the task rules, in field order.
func (f TaskFields) Validate(now time.Time) error {
	_, err := f.validate(now)
	return err
}

func (f TaskFields) validate(now time.Time) (validTaskFields, error) {
	if err := ValidateTaskTitle(f.Title); err != nil {
		return validTaskFields{}, err
	}
	if err := ValidateTaskDescription(f.Description); err != nil {
		return validTaskFields{}, err
	}
	status, err := ParseStatus(f.Status)
	if err != nil {
		return validTaskFields{}, err
	}
	deadline, err := ValidateTaskDeadline(f.Deadline, now)
	if err != nil {
		return validTaskFields{}, err
	}
	return validTaskFields{
		title:       f.Title,
		description: f.Description,
		status:      status,
		deadline:    deadline,
	}, nil
}

// Task is a unit of work owned by exactly one project.
type Task struct {
	id          string
	projectID   uint
	title       string
	description string
	status      Status
	deadline    *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTask validates fields and returns an unsaved task owned by projectID.
func NewTask(id string, projectID uint, fields TaskFields, now time.Time) (*Task, error) {
	v, err := fields.validate(now)
	if err != nil {
		return nil, err
	}
	t := &Task{id: id, projectID: projectID, createdAt: now}
	t.apply(v, now)
	return t, nil
}

// RestoreTask rebuilds a task from stored values without validating them.
// A stored deadline may lie in the past.
func RestoreTask(id string, projectID uint, title, description string, status Status,
	deadline *time.Time, createdAt, updatedAt time.Time) *Task {
	return &Task{
		id:          id,
		projectID:   projectID,
		title:       title,
		description: description,
		status:      status,
		deadline:    deadline,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Task) ID() string { return t.id }
func (t *Task) ProjectID() uint { return t.projectID }
func (t *Task) Title() string { return t.title }
func (t *Task) Description() string { return t.description }
func (t *Task) Status() Status { return t.status }
func (t *Task) CreatedAt() time.Time { return t.createdAt }
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// Deadline returns a copy of the deadline, or nil when none is set.
func (t *Task) Deadline() *time.Time {
	if t.deadline == nil {
		return nil
	}
	d := *t.deadline
	return &d
}

// Replace overwrites title, description, status and deadline in one step.
// Nothing changes if any field is invalid.
func (t *Task) Replace(fields TaskFields, now time.Time) error {
	v, err := fields.validate(now)
	if err != nil {
		return err
	}
	t.apply(v, now)
	return nil
}

// SetStatus changes only the status.
func (t *Task) SetStatus(status string, now time.Time) error {
	st, err := ParseStatus(status)
	if err != nil {
		return err
	}
	t.status = st
	t.updatedAt = now
	return nil
}

// Overdue reports whether the deadline has passed while the task is still open.
func (t *Task) Overdue(now time.Time) bool {
	return IsOverdue(t.status, t.deadline, now)
}

// Close moves an overdue task to done. It returns false, leaving the task
// untouched, when the task is not overdue.
func (t *Task) Close(now time.Time) bool {
	if !t.Overdue(now) {
		return false
	}
	t.status = StatusDone
	t.updatedAt = now
	return true
}

func (t *Task) apply(v validTaskFields, now time.Time) {
	t.title = v.title
	t.description = v.description
	t.status = v.status
	t.deadline = v.deadline
	t.updatedAt = now
}

// IsOverdue is the autoclose predicate: a deadline strictly before now on a
// task that is not done.
func IsOverdue(status Status, deadline *time.Time, now time.Time) bool {
	return deadline != nil && deadline.Before(now) && status != StatusDone
}
