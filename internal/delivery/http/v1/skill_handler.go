package v1

import (
	"net/http"

	"go-manpower-backend/internal/delivery/http/response"
	"go-manpower-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

// NewSkillHandler exposes the skill tag registry for autocomplete widgets.
func NewSkillHandler(public *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	public.GET("/skills", handler.ListSkills)
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill list", skills)
}
