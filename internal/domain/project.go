package domain

import "time"

// Project is a named container of tasks. Fields are only reachable through
// validated constructors and setters.
type Project struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProject validates name and description and returns an unsaved project.
func NewProject(name, description string, now time.Time) (*Project, error) {
	if err := ValidateProjectName(name); err != nil {
		return nil, err
	}
	if err := ValidateProjectDescription(description); err != nil {
		return nil, err
	}
	return &Project{
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// RestoreProject rebuilds a project from stored values without validating them.
func RestoreProject(id uint, name, description string, createdAt, updatedAt time.Time) *Project {
	return &Project{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Project) ID() uint { return p.id }
func (p *Project) Name() string { return p.name }
func (p *Project) Description() string { return p.description }
func (p *Project) CreatedAt() time.Time { return p.createdAt }
func (p *Project) UpdatedAt() time.Time { return p.updatedAt }

// Rename changes the project name after validating it.
func (p *Project) Rename(name string, now time.Time) error {
	if err := ValidateProjectName(name); err != nil {
		return err
	}
	p.name = name
	p.updatedAt = now
	return nil
}

// Describe replaces the project description after validating it.
func (p *Project) Describe(description string, now time.Time) error {
	if err := ValidateProjectDescription(description); err != nil {
		return err
	}
	p.description = description
	p.updatedAt = now
	return nil
}
