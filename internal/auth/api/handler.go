package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nitin-trapo/home-construction-ledger/internal/auth/domain"
	"github.com/nitin-trapo/home-construction-ledger/internal/auth/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// RegisterPublicRoutes wires login/register, which need no token.
func (h *AuthHandler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
}

// RegisterRoutes wires the authenticated user-management surface.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/auth/me", h.Me)

	admin := AdminOnly()
	r.GET("/users", admin, h.ListUsers)
	r.POST("/users", admin, h.CreateUser)
	r.PUT("/users/:id", admin, h.UpdateUser)
	r.DELETE("/users/:id", admin, h.DeleteUser)
	r.POST("/users/:id/projects/:projectId", admin, h.AssignProject)
	r.DELETE("/users/:id/projects/:projectId", admin, h.RemoveProject)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrSelfDelete):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, token, err := h.svc.Register(c.Request.Context(), req.Username, req.Password, req.Name, req.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResp{User: toUserResp(*user), Token: token})
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResp{User: toUserResp(*user), Token: token})
}

// Me GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.GetUser(c.Request.Context(), c.GetString(ContextUserID))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResp(*user))
}

// ListUsers GET /users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]userResp, len(users))
	for i, u := range users {
		out[i] = toUserResp(u)
	}
	c.JSON(http.StatusOK, out)
}

// CreateUser POST /users
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.svc.CreateUser(c.Request.Context(), req.Username, req.Password, req.Name, req.Email, req.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResp(*user))
}

// UpdateUser PUT /users/:id
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.svc.UpdateUser(c.Request.Context(), c.Param("id"), req.Name, req.Email, req.Role, req.IsActive)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResp(*user))
}

// DeleteUser DELETE /users/:id
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	err := h.svc.DeleteUser(c.Request.Context(), c.Param("id"), c.GetString(ContextUserID))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AssignProject POST /users/:id/projects/:projectId
func (h *AuthHandler) AssignProject(c *gin.Context) {
	var req assignProjectReq
	// Body is optional; missing role falls back to editor.
	_ = c.ShouldBindJSON(&req)

	err := h.svc.AssignProject(c.Request.Context(), c.Param("id"), c.Param("projectId"), req.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveProject DELETE /users/:id/projects/:projectId
func (h *AuthHandler) RemoveProject(c *gin.Context) {
	err := h.svc.RemoveProject(c.Request.Context(), c.Param("id"), c.Param("projectId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
