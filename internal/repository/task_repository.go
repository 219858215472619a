package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todo/internal/domain"
	"todo/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrTaskIDCollision, task.ID)
		}
		return err
	}
	return nil
}

// GetByID retrieves a task by its ID. Malformed identifiers cannot match a
// stored task and are reported as not found.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, id)
	}

	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", taskID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, id)
		}
		return nil, result.Error
	}
	return &task, nil
}

// insertionOrder names the column that grows with every insert: the rowid
// on sqlite, the seq serial column on postgres.
func insertionOrder(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "rowid"
	}
	return "seq"
}

// ListByProject retrieves all tasks of a project in insertion order. Tasks
// created in the same instant keep the order they were stored in.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at").
		Order(insertionOrder(r.db)).
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Update rewrites every mutable column of an existing task
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"deadline":    task.Deadline,
			"updated_at":  task.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Delete removes a task by its ID
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrTaskNotFound, id)
	}

	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", taskID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&count).Error
	return count, err
}

// CloseOverdue marks every open task whose deadline is before now as done
// and returns their identifiers. Selection and update share one transaction.
func (r *TaskRepository) CloseOverdue(ctx context.Context, now time.Time) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Task{}).
			Where("deadline < ? AND status <> ?", now, string(domain.StatusDone)).
			Order("deadline").
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		return tx.Model(&model.Task{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"status":     string(domain.StatusDone),
				"updated_at": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
