package service

import (
	"fmt"

	"github.com/google/uuid"

	"todo/internal/domain"
	"todo/internal/model"
)

func toProject(row *model.Project) *domain.Project {
	return domain.RestoreProject(row.ID, row.Name, row.Description, row.CreatedAt, row.UpdatedAt)
}

func toTask(row *model.Task) *domain.Task {
	return domain.RestoreTask(row.ID.String(), row.ProjectID, row.Title, row.Description,
		domain.Status(row.Status), row.Deadline, row.CreatedAt, row.UpdatedAt)
}

func toTaskRow(task *domain.Task) (*model.Task, error) {
	id, err := uuid.Parse(task.ID())
	if err != nil {
		return nil, fmt.Errorf("task identifier %q: %w", task.ID(), err)
	}
	return &model.Task{
		ID:          id,
		ProjectID:   task.ProjectID(),
		Title:       task.Title(),
		Description: task.Description(),
		Status:      string(task.Status()),
		Deadline:    task.Deadline(),
		CreatedAt:   task.CreatedAt(),
		UpdatedAt:   task.UpdatedAt(),
	}, nil
}
