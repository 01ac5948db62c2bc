package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authapi "github.com/nitin-trapo/home-construction-ledger/internal/auth/api"
	authdomain "github.com/nitin-trapo/home-construction-ledger/internal/auth/domain"
	ledgerdomain "github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
	"github.com/nitin-trapo/home-construction-ledger/internal/project/adapter/repo"
	"github.com/nitin-trapo/home-construction-ledger/internal/project/domain"
	"github.com/nitin-trapo/home-construction-ledger/internal/project/service"
)

type ProjectHandler struct {
	svc *service.ProjectService
}

func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// RegisterRoutes wires the project module. Creating and deleting
// projects is superadmin-only; the rest follows project assignment.
func (h *ProjectHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := authapi.AdminOnly()

	r.GET("/projects", h.ListProjects)
	r.POST("/projects", admin, h.CreateProject)
	r.DELETE("/projects/:projectId", admin, h.DeleteProject)

	r.GET("/users/:id/projects", admin, h.UserProjects)

	r.GET("/projects/:projectId/categories", h.Categories)
	r.GET("/projects/:projectId/settings", h.GetSettings)
	r.PUT("/projects/:projectId/settings", h.UpdateSettings)
	r.GET("/projects/:projectId/stats", h.Stats)
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, repo.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// ListProjects GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID := c.GetString(authapi.ContextUserID)
	superadmin := c.GetString(authapi.ContextUserRole) == authdomain.RoleSuperadmin

	projects, err := h.svc.ListProjects(c.Request.Context(), userID, superadmin)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]projectResp, len(projects))
	for i, p := range projects {
		out[i] = toProjectResp(p)
	}
	c.JSON(http.StatusOK, out)
}

// UserProjects GET /users/:id/projects
func (h *ProjectHandler) UserProjects(c *gin.Context) {
	projects, err := h.svc.UserProjects(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]projectResp, len(projects))
	for i, p := range projects {
		out[i] = toProjectResp(p)
	}
	c.JSON(http.StatusOK, out)
}

// CreateProject POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	project, err := h.svc.CreateProject(
		c.Request.Context(),
		req.Name,
		req.Budget.Decimal,
		c.GetString(authapi.ContextUserID),
		req.AssignToUser,
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResp(*project))
}

// DeleteProject DELETE /projects/:projectId
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.svc.DeleteProject(c.Request.Context(), c.Param("projectId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Categories GET /projects/:projectId/categories
func (h *ProjectHandler) Categories(c *gin.Context) {
	cats, err := h.svc.Categories(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// GetSettings GET /projects/:projectId/settings
func (h *ProjectHandler) GetSettings(c *gin.Context) {
	settings, err := h.svc.GetSettings(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, settingsResp{
		Budget:      ledgerdomain.NewAmount(settings.Budget),
		ProjectName: settings.ProjectName,
		Currency:    settings.Currency,
		DateFormat:  settings.DateFormat,
	})
}

// UpdateSettings PUT /projects/:projectId/settings
func (h *ProjectHandler) UpdateSettings(c *gin.Context) {
	var req settingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	err := h.svc.UpdateSettings(c.Request.Context(), c.Param("projectId"), domain.Settings{
		Budget:      req.Budget.Decimal,
		ProjectName: req.ProjectName,
		Currency:    req.Currency,
		DateFormat:  req.DateFormat,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Stats GET /projects/:projectId/stats
func (h *ProjectHandler) Stats(c *gin.Context) {
	stats, err := h.svc.ProjectStats(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		writeError(c, err)
		return
	}

	categoryWise := make(map[string]ledgerdomain.Amount, len(stats.CategoryWise))
	for k, v := range stats.CategoryWise {
		categoryWise[k] = ledgerdomain.NewAmount(v)
	}

	c.JSON(http.StatusOK, statsResp{
		TotalSpent:    ledgerdomain.NewAmount(stats.TotalSpent),
		TotalReceived: ledgerdomain.NewAmount(stats.TotalReceived),
		Budget:        ledgerdomain.NewAmount(stats.Budget),
		Remaining:     ledgerdomain.NewAmount(stats.Remaining),
		PercentUsed:   stats.PercentUsed,
		CategoryWise:  categoryWise,
	})
}
