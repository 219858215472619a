// Package service orchestrates validation and persistence for projects and
// tasks. Stores are storage-agnostic; see the repository packages for the
// gorm and in-memory implementations.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todo/internal/model"
)

// ProjectStore persists projects keyed by their unique name.
type ProjectStore interface {
	Create(ctx context.Context, project *model.Project) error
	GetByName(ctx context.Context, name string) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// TaskStore persists tasks keyed by their opaque identifier.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id string) (*model.Task, error)
	ListByProject(ctx context.Context, projectID uint) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
}

func defaultOptions() options {
	return options{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// WithClock replaces the wall clock used for timestamps and deadline checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces the task identifier generator.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
