package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	authdomain "github.com/nitin-trapo/home-construction-ledger/internal/auth/domain"
	ledgerdomain "github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
	"github.com/nitin-trapo/home-construction-ledger/internal/project/domain"
)

// ProjectService manages projects, their categories and settings, and
// the dashboard stats. It reaches into the auth and ledger modules
// through their repository ports: access grants on create/delete, and
// transactions for the budget figures.
type ProjectService struct {
	db             *gorm.DB
	projectRepo    domain.ProjectRepository
	categoryRepo   domain.CategoryRepository
	settingsRepo   domain.SettingsRepository
	assignmentRepo authdomain.AssignmentRepository
	partyRepo      ledgerdomain.PartyRepository
	txRepo         ledgerdomain.TransactionRepository
	attRepo        ledgerdomain.AttachmentRepository
}

func NewProjectService(
	db *gorm.DB,
	projectRepo domain.ProjectRepository,
	categoryRepo domain.CategoryRepository,
	settingsRepo domain.SettingsRepository,
	assignmentRepo authdomain.AssignmentRepository,
	partyRepo ledgerdomain.PartyRepository,
	txRepo ledgerdomain.TransactionRepository,
	attRepo ledgerdomain.AttachmentRepository,
) *ProjectService {
	return &ProjectService{
		db:             db,
		projectRepo:    projectRepo,
		categoryRepo:   categoryRepo,
		settingsRepo:   settingsRepo,
		assignmentRepo: assignmentRepo,
		partyRepo:      partyRepo,
		txRepo:         txRepo,
		attRepo:        attRepo,
	}
}

// ListProjects returns every project for a superadmin, otherwise only
// the caller's assigned projects.
func (s *ProjectService) ListProjects(ctx context.Context, userID string, superadmin bool) ([]domain.Project, error) {
	if superadmin {
		return s.projectRepo.ListAll(ctx)
	}
	return s.projectRepo.ListByUser(ctx, userID)
}

// CreateProject creates a project and seeds its default categories and
// settings in one transaction. assignTo optionally grants a user editor
// access right away.
func (s *ProjectService) CreateProject(ctx context.Context, name string, budget decimal.Decimal, createdBy, assignTo string) (*domain.Project, error) {
	if budget.IsZero() {
		budget = domain.DefaultBudget
	}

	project := &domain.Project{
		ID:        uuid.NewString(),
		Name:      name,
		Budget:    budget,
		CreatedBy: createdBy,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepo.Create(ctx, tx, project); err != nil {
			return err
		}

		cats := make([]domain.Category, len(domain.DefaultCategories))
		for i, c := range domain.DefaultCategories {
			c.ID = c.ID + "_" + project.ID
			c.ProjectID = project.ID
			cats[i] = c
		}
		if err := s.categoryRepo.CreateBatch(ctx, tx, cats); err != nil {
			return err
		}

		settings := &domain.Settings{
			ProjectID:   project.ID,
			Budget:      budget,
			ProjectName: name,
			Currency:    "₹",
			DateFormat:  "dd-MM-yyyy",
		}
		if err := s.settingsRepo.Upsert(ctx, tx, settings); err != nil {
			return err
		}

		if assignTo != "" {
			return s.assignmentRepo.Assign(ctx, tx, assignTo, project.ID, "editor")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project and everything hanging off it:
// attachments, transactions, parties, categories, settings and access
// grants. The schema carries no cascading foreign keys, so the cleanup
// is explicit, child tables first, all in one transaction.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.attRepo.DeleteByProject(ctx, tx, id); err != nil {
			return err
		}
		if err := s.txRepo.DeleteByProject(ctx, tx, id); err != nil {
			return err
		}
		if err := s.partyRepo.DeleteByProject(ctx, tx, id); err != nil {
			return err
		}
		if err := s.categoryRepo.DeleteByProject(ctx, tx, id); err != nil {
			return err
		}
		if err := s.settingsRepo.DeleteByProject(ctx, tx, id); err != nil {
			return err
		}
		if err := s.assignmentRepo.RemoveByProject(ctx, tx, id); err != nil {
			return err
		}
		return s.projectRepo.Delete(ctx, tx, id)
	})
}

// UserProjects lists the projects a given user has been granted access
// to, newest first.
func (s *ProjectService) UserProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	return s.projectRepo.ListByUser(ctx, userID)
}

// CategoryView is a category with its subcategories decoded.
type CategoryView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	Subcategories []string `json:"subcategories"`
}

// Categories lists a project's categories. A project with none stored
// (created before seeding existed) gets the default set.
func (s *ProjectService) Categories(ctx context.Context, projectID string) ([]CategoryView, error) {
	cats, err := s.categoryRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		cats = domain.DefaultCategories
	}

	out := make([]CategoryView, len(cats))
	for i, c := range cats {
		var subs []string
		if err := json.Unmarshal([]byte(c.Subcategories), &subs); err != nil {
			subs = nil
		}
		// Stored ids are suffixed with the project id; strip it back
		// to the stable category key.
		id := c.ID
		if c.ProjectID != "" {
			id = strings.TrimSuffix(id, "_"+c.ProjectID)
		}
		out[i] = CategoryView{ID: id, Name: c.Name, Icon: c.Icon, Subcategories: subs}
	}
	return out, nil
}

// GetSettings returns a project's settings, falling back to defaults
// when none are stored yet.
func (s *ProjectService) GetSettings(ctx context.Context, projectID string) (*domain.Settings, error) {
	settings, err := s.settingsRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &domain.Settings{
			ProjectID:   projectID,
			Budget:      domain.DefaultBudget,
			ProjectName: "My Home Construction",
			Currency:    "₹",
			DateFormat:  "dd-MM-yyyy",
		}, nil
	}
	return settings, nil
}

// UpdateSettings upserts a project's settings and mirrors the name and
// budget onto the project row so both stay in step.
func (s *ProjectService) UpdateSettings(ctx context.Context, projectID string, upd domain.Settings) error {
	upd.ProjectID = projectID
	if upd.Currency == "" {
		upd.Currency = "₹"
	}
	if upd.DateFormat == "" {
		upd.DateFormat = "dd-MM-yyyy"
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.settingsRepo.Upsert(ctx, tx, &upd); err != nil {
			return err
		}

		project, err := s.projectRepo.FindByID(ctx, tx, projectID)
		if err != nil {
			return err
		}
		project.Name = upd.ProjectName
		project.Budget = upd.Budget
		return s.projectRepo.Update(ctx, tx, project)
	})
}

// Stats is the dashboard summary for a project.
type Stats struct {
	TotalSpent    decimal.Decimal
	TotalReceived decimal.Decimal
	Budget        decimal.Decimal
	Remaining     decimal.Decimal
	PercentUsed   int64
	CategoryWise  map[string]decimal.Decimal
}

// ProjectStats aggregates spend against the budget. Spent is the sum of
// all credit amounts (cash out), received the sum of debit amounts
// (income); category totals exclude the income category.
func (s *ProjectService) ProjectStats(ctx context.Context, projectID string) (*Stats, error) {
	settings, err := s.GetSettings(ctx, projectID)
	if err != nil {
		return nil, err
	}

	txns, err := s.txRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalSpent:    decimal.Zero,
		TotalReceived: decimal.Zero,
		Budget:        settings.Budget,
		CategoryWise:  make(map[string]decimal.Decimal),
	}

	for _, t := range txns {
		stats.TotalSpent = stats.TotalSpent.Add(t.Credit)
		stats.TotalReceived = stats.TotalReceived.Add(t.Debit)
		if t.Category != "" && t.Category != "income" {
			stats.CategoryWise[t.Category] = stats.CategoryWise[t.Category].Add(t.Credit)
		}
	}

	stats.Remaining = stats.Budget.Sub(stats.TotalSpent)
	if stats.Budget.IsPositive() {
		stats.PercentUsed = stats.TotalSpent.
			Div(stats.Budget).
			Mul(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	}
	return stats, nil
}
