package domain

import (
	"errors"
	"time"
)

// Role values. The first registered user becomes superadmin; everyone
// else starts as a plain user.
const (
	RoleSuperadmin = "superadmin"
	RoleUser       = "user"
)

// User is an operator account. Password holds the bcrypt hash, never
// plaintext.
type User struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Username  string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(128)"`
	Password  string `gorm:"type:varchar(128);not null"`
	Name      string `gorm:"type:varchar(100);not null"`
	Role      string `gorm:"type:varchar(16);not null;default:'user'"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

// UserProject grants a user access to a project with a per-project role
// (viewer/editor).
type UserProject struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_project"`
	ProjectID  string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_project"`
	Role       string    `gorm:"type:varchar(16);not null;default:'viewer'"`
	AssignedAt time.Time `gorm:"autoCreateTime"`
}

func (UserProject) TableName() string {
	return "user_projects"
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSelfDelete         = errors.New("cannot delete yourself")
)
