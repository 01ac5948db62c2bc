package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nitin-trapo/home-construction-ledger/internal/auth/domain"
)

type PostgresUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

func (r *PostgresUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepo) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *PostgresUserRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error
	return count, err
}

func (r *PostgresUserRepo) Create(ctx context.Context, db *gorm.DB, u *domain.User) error {
	return db.WithContext(ctx).Create(u).Error
}

func (r *PostgresUserRepo) Update(ctx context.Context, db *gorm.DB, u *domain.User) error {
	return db.WithContext(ctx).Save(u).Error
}

func (r *PostgresUserRepo) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Delete(&domain.User{}, "id = ?", id).Error
}

// ---------------------------------------------------------

type PostgresAssignmentRepo struct {
	db *gorm.DB
}

func NewAssignmentRepo(db *gorm.DB) *PostgresAssignmentRepo {
	return &PostgresAssignmentRepo{db: db}
}

func (r *PostgresAssignmentRepo) Assign(ctx context.Context, db *gorm.DB, userID, projectID, role string) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(&domain.UserProject{
		UserID:    userID,
		ProjectID: projectID,
		Role:      role,
	}).Error
}

func (r *PostgresAssignmentRepo) Remove(ctx context.Context, db *gorm.DB, userID, projectID string) error {
	return db.WithContext(ctx).
		Delete(&domain.UserProject{}, "user_id = ? AND project_id = ?", userID, projectID).Error
}

func (r *PostgresAssignmentRepo) RemoveByProject(ctx context.Context, db *gorm.DB, projectID string) error {
	return db.WithContext(ctx).
		Delete(&domain.UserProject{}, "project_id = ?", projectID).Error
}
