package domain

import (
	"context"

	"gorm.io/gorm"
)

// UserRepository is the port for user persistence.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, db *gorm.DB, u *User) error
	Update(ctx context.Context, db *gorm.DB, u *User) error
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

// AssignmentRepository manages user/project access grants.
type AssignmentRepository interface {
	// Assign grants or updates a user's role on a project.
	Assign(ctx context.Context, db *gorm.DB, userID, projectID, role string) error
	Remove(ctx context.Context, db *gorm.DB, userID, projectID string) error

	// RemoveByProject drops every grant on a project.
	RemoveByProject(ctx context.Context, db *gorm.DB, projectID string) error
}
