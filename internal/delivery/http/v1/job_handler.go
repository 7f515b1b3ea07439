package v1

import (
	"net/http"
	"strconv"

	"go-manpower-backend/internal/delivery/http/middleware"
	"go-manpower-backend/internal/delivery/http/response"
	"go-manpower-backend/internal/domain"
	"go-manpower-backend/pkg/apperror"
	"go-manpower-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - job search needs no authentication
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.Search)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	// PROTECTED routes - employers manage their postings, admins moderate
	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", middleware.RequireRoles(domain.RoleEmployer), handler.Create)
		protectedJobs.PUT("/:id", middleware.RequireRoles(domain.RoleEmployer, domain.RoleAdmin), handler.Update)
		protectedJobs.DELETE("/:id", middleware.RequireRoles(domain.RoleEmployer, domain.RoleAdmin), handler.Delete)
	}
}

type CreateJobRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	DurationDays   int      `json:"duration_days" binding:"required,gt=0"`
	Salary         *float64 `json:"salary" binding:"required,gte=0"`
	RequiredSkills []string `json:"required_skills" binding:"omitempty,dive,required,valid_skill"`
}

type UpdateJobRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Location     *string  `json:"location"`
	DurationDays *int     `json:"duration_days" binding:"omitempty,gt=0"`
	Salary       *float64 `json:"salary" binding:"omitempty,gte=0"`
	IsActive     *bool    `json:"is_active"`
}

// Search lists jobs matching the optional query filters; every filter is
// optional and they combine with AND.
func (h *JobHandler) Search(c *gin.Context) {
	filter := domain.JobSearchFilter{
		Location: c.Query("location"),
		Skill:    c.Query("skill"),
		Query:    c.Query("q"),
	}

	if v := c.Query("minSalary"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.Error(apperror.BadRequest("minSalary must be a number"))
			return
		}
		filter.MinSalary = &f
	}
	if v := c.Query("maxDuration"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.Error(apperror.BadRequest("maxDuration must be an integer"))
			return
		}
		filter.MaxDuration = &n
	}

	jobs, err := h.jobUC.SearchJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", jobs)
}

func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	employerID := c.GetInt64(string(domain.KeyUserID))

	job := &domain.Job{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		DurationDays: req.DurationDays,
		Salary:       *req.Salary,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), employerID, job, req.RequiredSkills); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	if req.Title == nil && req.Description == nil && req.Location == nil &&
		req.DurationDays == nil && req.Salary == nil && req.IsActive == nil {
		c.Error(apperror.BadRequest("No updates provided"))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))
	actorRole := c.GetString(string(domain.KeyUserRole))

	upd := domain.JobUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		DurationDays: req.DurationDays,
		Salary:       req.Salary,
		IsActive:     req.IsActive,
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), actorID, actorRole, id, upd)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	actorID := c.GetInt64(string(domain.KeyUserID))
	actorRole := c.GetString(string(domain.KeyUserRole))

	if err := h.jobUC.DeleteJob(c.Request.Context(), actorID, actorRole, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job removed", nil)
}
