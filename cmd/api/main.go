package main

import (
	"log"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	authapi "github.com/nitin-trapo/home-construction-ledger/internal/auth/api"
	authrepo "github.com/nitin-trapo/home-construction-ledger/internal/auth/adapter/repo"
	authservice "github.com/nitin-trapo/home-construction-ledger/internal/auth/service"
	ledgerapi "github.com/nitin-trapo/home-construction-ledger/internal/ledger/api"
	ledgerrepo "github.com/nitin-trapo/home-construction-ledger/internal/ledger/adapter/repo"
	ledgerservice "github.com/nitin-trapo/home-construction-ledger/internal/ledger/service"
	"github.com/nitin-trapo/home-construction-ledger/internal/platform/database"
	"github.com/nitin-trapo/home-construction-ledger/internal/platform/logger"
	"github.com/nitin-trapo/home-construction-ledger/internal/platform/server"
	projectapi "github.com/nitin-trapo/home-construction-ledger/internal/project/api"
	projectrepo "github.com/nitin-trapo/home-construction-ledger/internal/project/adapter/repo"
	projectservice "github.com/nitin-trapo/home-construction-ledger/internal/project/service"
)

func main() {
	// Config
	viper.SetConfigFile("configs/config.yaml")
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %s", err)
	}

	// Infra
	appLogger := logger.NewLogger(viper.GetString("server.mode"))

	dsn := viper.GetString("database.dsn")
	maxIdleConns := viper.GetInt("database.max_idle_conns")
	maxOpenConns := viper.GetInt("database.max_open_conns")
	db := database.NewPostgresDB(dsn, maxIdleConns, maxOpenConns)

	if err := database.AutoMigrate(db); err != nil {
		appLogger.Fatal("Database migration failed", zap.Error(err))
	}

	// Wiring
	// -- Auth module --
	userRepo := authrepo.NewUserRepo(db)
	assignmentRepo := authrepo.NewAssignmentRepo(db)
	authSvc := authservice.NewAuthService(
		db, userRepo, assignmentRepo,
		viper.GetString("auth.jwt_secret"),
		time.Duration(viper.GetInt("auth.token_ttl_hours"))*time.Hour,
	)
	authHandler := authapi.NewAuthHandler(authSvc)

	// -- Ledger module --
	partyRepo := ledgerrepo.NewPartyRepo(db)
	txRepo := ledgerrepo.NewTransactionRepo(db)
	attRepo := ledgerrepo.NewAttachmentRepo(db)
	ledgerSvc := ledgerservice.NewLedgerService(db, partyRepo, txRepo, attRepo)
	ledgerHandler := ledgerapi.NewLedgerHandler(ledgerSvc)

	// -- Project module --
	projRepo := projectrepo.NewProjectRepo(db)
	categoryRepo := projectrepo.NewCategoryRepo(db)
	settingsRepo := projectrepo.NewSettingsRepo(db)
	projectSvc := projectservice.NewProjectService(
		db, projRepo, categoryRepo, settingsRepo,
		assignmentRepo, partyRepo, txRepo, attRepo,
	)
	projectHandler := projectapi.NewProjectHandler(projectSvc)

	// Server
	srv := server.NewServer(
		appLogger,
		viper.GetString("server.port"),
		viper.GetString("server.mode"),
		authSvc,
		authHandler,
		ledgerHandler,
		projectHandler,
	)

	if err := srv.Run(); err != nil {
		appLogger.Fatal("Server startup failed", zap.Error(err))
	}
}
