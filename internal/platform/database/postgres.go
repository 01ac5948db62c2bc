package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authdomain "github.com/nitin-trapo/home-construction-ledger/internal/auth/domain"
	ledgerdomain "github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
	projectdomain "github.com/nitin-trapo/home-construction-ledger/internal/project/domain"
)

// NewPostgresDB opens the database connection and configures the pool.
func NewPostgresDB(dsn string, maxIdleConns, maxOpenConns int) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}

// AutoMigrate creates or updates every table the application owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authdomain.User{},
		&authdomain.UserProject{},
		&projectdomain.Project{},
		&projectdomain.Category{},
		&projectdomain.Settings{},
		&ledgerdomain.Party{},
		&ledgerdomain.Transaction{},
		&ledgerdomain.Attachment{},
	)
}
