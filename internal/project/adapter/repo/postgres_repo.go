package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nitin-trapo/home-construction-ledger/internal/project/domain"
)

// ErrProjectNotFound is returned when a project id does not resolve.
var ErrProjectNotFound = errors.New("project not found")

type PostgresProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *PostgresProjectRepo {
	return &PostgresProjectRepo{db: db}
}

func (r *PostgresProjectRepo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Project, error) {
	var project domain.Project
	if err := db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *PostgresProjectRepo) ListAll(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *PostgresProjectRepo) ListByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.WithContext(ctx).
		Select("projects.*").
		Joins("JOIN user_projects up ON up.project_id = projects.id").
		Where("up.user_id = ?", userID).
		Order("projects.created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *PostgresProjectRepo) Create(ctx context.Context, db *gorm.DB, p *domain.Project) error {
	return db.WithContext(ctx).Create(p).Error
}

func (r *PostgresProjectRepo) Update(ctx context.Context, db *gorm.DB, p *domain.Project) error {
	return db.WithContext(ctx).Save(p).Error
}

func (r *PostgresProjectRepo) Delete(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Delete(&domain.Project{}, "id = ?", id).Error
}

// ---------------------------------------------------------

type PostgresCategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *PostgresCategoryRepo {
	return &PostgresCategoryRepo{db: db}
}

func (r *PostgresCategoryRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Category, error) {
	var cats []domain.Category
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&cats).Error
	return cats, err
}

func (r *PostgresCategoryRepo) CreateBatch(ctx context.Context, db *gorm.DB, cats []domain.Category) error {
	if len(cats) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&cats).Error
}

func (r *PostgresCategoryRepo) DeleteByProject(ctx context.Context, db *gorm.DB, projectID string) error {
	return db.WithContext(ctx).Delete(&domain.Category{}, "project_id = ?", projectID).Error
}

// ---------------------------------------------------------

type PostgresSettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *PostgresSettingsRepo {
	return &PostgresSettingsRepo{db: db}
}

func (r *PostgresSettingsRepo) FindByProject(ctx context.Context, projectID string) (*domain.Settings, error) {
	var s domain.Settings
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PostgresSettingsRepo) Upsert(ctx context.Context, db *gorm.DB, s *domain.Settings) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"budget", "project_name", "currency", "date_format",
		}),
	}).Create(s).Error
}

func (r *PostgresSettingsRepo) DeleteByProject(ctx context.Context, db *gorm.DB, projectID string) error {
	return db.WithContext(ctx).Delete(&domain.Settings{}, "project_id = ?", projectID).Error
}
