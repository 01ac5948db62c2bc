package api

import (
	"time"

	"github.com/nitin-trapo/home-construction-ledger/internal/auth/domain"
)

type registerReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createUserReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Role     string `json:"role" binding:"omitempty,oneof=superadmin user"`
}

type updateUserReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Role     string `json:"role" binding:"omitempty,oneof=superadmin user"`
	IsActive bool   `json:"isActive"`
}

type assignProjectReq struct {
	Role string `json:"role" binding:"omitempty,oneof=viewer editor"`
}

// userResp never carries the password hash.
type userResp struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResp(u domain.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

type sessionResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}
