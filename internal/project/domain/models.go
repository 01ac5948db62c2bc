package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBudget is the budget a project starts with when none is given
// (₹25 lakh, the original product default).
var DefaultBudget = decimal.NewFromInt(2500000)

// Project is the multi-tenancy boundary: every party, transaction,
// category and setting belongs to exactly one project.
type Project struct {
	ID        string          `gorm:"primaryKey;type:varchar(36)"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Budget    decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	CreatedBy string          `gorm:"type:varchar(36)"`
	CreatedAt time.Time
}

func (Project) TableName() string {
	return "projects"
}

// Category is a free-form expense classification with optional
// subcategories, stored as a JSON array of strings.
type Category struct {
	ID            string `gorm:"primaryKey;type:varchar(64)"`
	ProjectID     string `gorm:"type:varchar(36);not null;index"`
	Name          string `gorm:"type:varchar(64);not null"`
	Icon          string `gorm:"type:varchar(16)"`
	Subcategories string `gorm:"type:text"`
}

func (Category) TableName() string {
	return "categories"
}

// Settings holds per-project display preferences and the budget.
type Settings struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	ProjectID   string          `gorm:"type:varchar(36);not null;uniqueIndex"`
	Budget      decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	ProjectName string          `gorm:"type:varchar(100)"`
	Currency    string          `gorm:"type:varchar(8);not null;default:'₹'"`
	DateFormat  string          `gorm:"type:varchar(16);not null;default:'dd-MM-yyyy'"`
}

func (Settings) TableName() string {
	return "settings"
}

// DefaultCategories seeds a new project with the standard
// home-construction expense breakdown.
var DefaultCategories = []Category{
	{ID: "materials", Name: "Materials", Icon: "🧱",
		Subcategories: `["Cement","Sand","Bricks","Steel","Wood","Plumbing","Electrical","Tiles","Paint","Hardware"]`},
	{ID: "labor", Name: "Labor", Icon: "👷",
		Subcategories: `["Mason","Helper","Carpenter","Plumber","Electrician","Painter","Other"]`},
	{ID: "contractor", Name: "Contractor", Icon: "🏗️",
		Subcategories: `["Main Contractor","Sub-Contractor","Architect","Engineer"]`},
	{ID: "transport", Name: "Transport", Icon: "🚚",
		Subcategories: `["Delivery","Equipment Rental"]`},
	{ID: "misc", Name: "Miscellaneous", Icon: "📋",
		Subcategories: `["Permits","Utilities","Security","Food/Tea"]`},
	{ID: "income", Name: "Income/Funds", Icon: "💰",
		Subcategories: `["Self","Bank Loan","Family","Other"]`},
}
