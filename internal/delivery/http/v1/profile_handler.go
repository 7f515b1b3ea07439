package v1

import (
	"net/http"

	"go-manpower-backend/internal/delivery/http/middleware"
	"go-manpower-backend/internal/delivery/http/response"
	"go-manpower-backend/internal/domain"
	"go-manpower-backend/pkg/apperror"
	"go-manpower-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := protected.Group("/profiles", middleware.RequireRoles(domain.RoleJobSeeker))
	{
		profiles.GET("/me", handler.GetMine)
		profiles.PUT("/me", handler.UpsertMine)
	}
}

type UpsertProfileRequest struct {
	Availability *string  `json:"availability"`
	Experience   *string  `json:"experience"`
	Skills       []string `json:"skills" binding:"omitempty,dive,required,valid_skill"`
}

// UpsertMine replaces the caller's profile and skill set. The identity always
// comes from the token, never from the body.
func (h *ProfileHandler) UpsertMine(c *gin.Context) {
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatError(err)))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.profileUC.UpsertProfile(c.Request.Context(), userID, req.Availability, req.Experience, req.Skills)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", profile)
}

func (h *ProfileHandler) GetMine(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.profileUC.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}
