package v1

import (
	"net/http"
	"strconv"

	"go-manpower-backend/internal/delivery/http/middleware"
	"go-manpower-backend/internal/delivery/http/response"
	"go-manpower-backend/internal/domain"
	"go-manpower-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := protected.Group("/applications")
	{
		applications.POST("/jobs/:id/apply", middleware.RequireRoles(domain.RoleJobSeeker), handler.Apply)
		applications.GET("/me", middleware.RequireRoles(domain.RoleJobSeeker), handler.ListMine)
		applications.PATCH("/:id/status", middleware.RequireRoles(domain.RoleEmployer), handler.UpdateStatus)
	}

	// Applicant listing lives under the owning job
	protected.GET("/jobs/:id/applicants", middleware.RequireRoles(domain.RoleEmployer), handler.ListApplicants)
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	// Body is optional; an empty cover letter is fine
	var req ApplyRequest
	_ = c.ShouldBindJSON(&req)

	userID := c.GetInt64(string(domain.KeyUserID))

	app, err := h.applicationUC.ApplyToJob(c.Request.Context(), userID, jobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	apps, err := h.applicationUC.GetMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My applications", apps)
}

func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	employerID := c.GetInt64(string(domain.KeyUserID))

	applicants, err := h.applicationUC.ListApplicants(c.Request.Context(), employerID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicants", applicants)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Status is required"))
		return
	}

	employerID := c.GetInt64(string(domain.KeyUserID))

	if err := h.applicationUC.UpdateApplicationStatus(c.Request.Context(), employerID, applicationID, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
