package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nitin-trapo/home-construction-ledger/internal/auth/domain"
)

// Claims is the JWT payload: who the user is and what they may do.
type Claims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles accounts, sessions and project access grants.
type AuthService struct {
	db             *gorm.DB
	userRepo       domain.UserRepository
	assignmentRepo domain.AssignmentRepository
	jwtSecret      []byte
	tokenTTL       time.Duration
}

func NewAuthService(
	db *gorm.DB,
	userRepo domain.UserRepository,
	assignmentRepo domain.AssignmentRepository,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		db:             db,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		jwtSecret:      []byte(jwtSecret),
		tokenTTL:       tokenTTL,
	}
}

// IssueToken signs a JWT for the user.
func (s *AuthService) IssueToken(u *domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseToken validates a JWT and returns its claims.
func (s *AuthService) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Register creates an account. The very first account becomes
// superadmin; everyone after that is a plain user.
func (s *AuthService) Register(ctx context.Context, username, password, name, email string) (*domain.User, string, error) {
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, "", domain.ErrUsernameTaken
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, "", err
	}
	role := domain.RoleUser
	if count == 0 {
		role = domain.RoleSuperadmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Password: string(hash),
		Name:     name,
		Role:     role,
		IsActive: true,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Create(ctx, tx, user)
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user)
	return user, token, err
}

// Login checks the credentials and issues a token. Inactive accounts
// cannot log in.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	return user, token, err
}

// GetUser fetches one account.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// ListUsers returns every account.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// CreateUser is the admin path for adding an account with an explicit role.
func (s *AuthService) CreateUser(ctx context.Context, username, password, name, email, role string) (*domain.User, error) {
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	}
	if role == "" {
		role = domain.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Password: string(hash),
		Name:     name,
		Role:     role,
		IsActive: true,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Create(ctx, tx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser edits an account's profile, role and active flag.
func (s *AuthService) UpdateUser(ctx context.Context, id, name, email, role string, isActive bool) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Email = email
	if role != "" {
		user.Role = role
	}
	user.IsActive = isActive

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Update(ctx, tx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account. Deleting your own account is rejected.
func (s *AuthService) DeleteUser(ctx context.Context, id, callerID string) error {
	if id == callerID {
		return domain.ErrSelfDelete
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.userRepo.Delete(ctx, tx, id)
	})
}

// AssignProject grants a user access to a project.
func (s *AuthService) AssignProject(ctx context.Context, userID, projectID, role string) error {
	if role == "" {
		role = "editor"
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.assignmentRepo.Assign(ctx, tx, userID, projectID, role)
	})
}

// RemoveProject revokes a user's access to a project.
func (s *AuthService) RemoveProject(ctx context.Context, userID, projectID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.assignmentRepo.Remove(ctx, tx, userID, projectID)
	})
}
