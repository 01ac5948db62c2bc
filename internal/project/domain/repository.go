package domain

import (
	"context"

	"gorm.io/gorm"
)

// ProjectRepository is the port for project persistence.
type ProjectRepository interface {
	// FindByID reads through the given session so in-transaction
	// callers see their own writes.
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Project, error)
	ListAll(ctx context.Context) ([]Project, error)

	// ListByUser returns only the projects assigned to the user.
	ListByUser(ctx context.Context, userID string) ([]Project, error)

	Create(ctx context.Context, db *gorm.DB, p *Project) error
	Update(ctx context.Context, db *gorm.DB, p *Project) error
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

// CategoryRepository stores a project's expense categories.
type CategoryRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]Category, error)
	CreateBatch(ctx context.Context, db *gorm.DB, cats []Category) error
	DeleteByProject(ctx context.Context, db *gorm.DB, projectID string) error
}

// SettingsRepository stores per-project settings.
type SettingsRepository interface {
	FindByProject(ctx context.Context, projectID string) (*Settings, error)
	Upsert(ctx context.Context, db *gorm.DB, s *Settings) error
	DeleteByProject(ctx context.Context, db *gorm.DB, projectID string) error
}
