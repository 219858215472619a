package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todo/internal/domain"
	"todo/internal/model"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project. Name uniqueness is enforced by the unique index,
// so concurrent creates with one name leave exactly one winner.
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateProjectName, project.Name)
		}
		return err
	}
	return nil
}

// GetByName retrieves a project by its unique name
func (r *ProjectRepository) GetByName(ctx context.Context, name string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", domain.ErrProjectNotFound, name)
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).Order("id").Find(&projects).Error
	return projects, err
}

// Update writes name and description of an existing project
func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) error {
	result := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"name":        project.Name,
			"description": project.Description,
			"updated_at":  project.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateProjectName, project.Name)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// Delete removes a project and every task it owns in one transaction
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Project{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrProjectNotFound
		}
		return nil
	})
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Project{}).Count(&count).Error
	return count, err
}
