package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostlane/internal/services"
	"hostlane/pkg/utils"
)

// PlanController serves the public, read-only side of the catalog.
// Inactive plans are hidden here; the admin endpoints see everything.
type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

func (p *PlanController) GetAllPlans(c *gin.Context) {
	plans := p.planService.GetAllPlans(c.Request.Context(), false)
	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

func (p *PlanController) GetPlansByCategory(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		utils.RespondError(c, http.StatusBadRequest, "Category is required")
		return
	}

	plans := p.planService.GetPlansByCategory(c.Request.Context(), category, false)
	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

func (p *PlanController) GetPlanById(c *gin.Context) {
	planId := c.Param("id")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	plan, err := p.planService.GetPlanByID(c.Request.Context(), planId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}
