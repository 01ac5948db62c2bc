package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nitin-trapo/home-construction-ledger/internal/auth/adapter/repo"
	"github.com/nitin-trapo/home-construction-ledger/internal/auth/domain"
	"github.com/nitin-trapo/home-construction-ledger/internal/auth/service"
)

func setupService(t *testing.T) *service.AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.UserProject{}))

	return service.NewAuthService(
		db,
		repo.NewUserRepo(db),
		repo.NewAssignmentRepo(db),
		"test-secret",
		time.Hour,
	)
}

func TestRegister_FirstUserBecomesSuperadmin(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	first, token, err := svc.Register(ctx, "owner", "secret123", "Owner", "")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperadmin, first.Role)
	assert.NotEmpty(t, token)

	second, _, err := svc.Register(ctx, "clerk", "secret123", "Clerk", "clerk@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, second.Role)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "owner", "secret123", "Owner", "")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "owner", "other456", "Impostor", "")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "owner", "secret123", "Owner", "")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "owner", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "owner", user.Username)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "owner", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_InactiveAccountRejected(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "owner", "secret123", "Owner", "")
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, user.ID, user.Name, user.Email, user.Role, false)
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "owner", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "owner", "secret123", "Owner", "")
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "owner", claims.Username)
	assert.Equal(t, domain.RoleSuperadmin, claims.Role)
}

func TestParseToken_RejectsTampered(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, token, err := svc.Register(ctx, "owner", "secret123", "Owner", "")
	require.NoError(t, err)

	_, err = svc.ParseToken(token + "x")
	assert.Error(t, err)
}

func TestDeleteUser_SelfDeleteRejected(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "owner", "secret123", "Owner", "")
	require.NoError(t, err)

	err = svc.DeleteUser(ctx, user.ID, user.ID)
	assert.ErrorIs(t, err, domain.ErrSelfDelete)
}

func TestAssignProject_UpsertsRole(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "clerk", "secret123", "Clerk", "")
	require.NoError(t, err)

	require.NoError(t, svc.AssignProject(ctx, user.ID, "proj-1", ""))
	require.NoError(t, svc.AssignProject(ctx, user.ID, "proj-1", "viewer"))
	require.NoError(t, svc.RemoveProject(ctx, user.ID, "proj-1"))
}
