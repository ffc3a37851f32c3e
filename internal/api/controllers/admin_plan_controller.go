package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hostlane/internal/models/request_models"
	"hostlane/internal/models/response_models"
	"hostlane/internal/services"
	"hostlane/pkg/utils"
)

type AdminPlanController struct {
	planService services.PlanServiceInterface
	copywriter  services.CopywriterService
}

func NewAdminPlanController(planService services.PlanServiceInterface, copywriter services.CopywriterService) *AdminPlanController {
	return &AdminPlanController{
		planService: planService,
		copywriter:  copywriter,
	}
}

func (a *AdminPlanController) ListAllPlans(c *gin.Context) {
	plans := a.planService.GetAllPlans(c.Request.Context(), true)
	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

func (a *AdminPlanController) CreatePlan(c *gin.Context) {
	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan payload: "+err.Error())
		return
	}

	plan, err := a.planService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Plan created successfully")
}

func (a *AdminPlanController) UpdatePlan(c *gin.Context) {
	planId := c.Param("id")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	var req request_models.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan payload: "+err.Error())
		return
	}

	plan, err := a.planService.UpdatePlan(c.Request.Context(), planId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan updated successfully")
}

func (a *AdminPlanController) DeletePlan(c *gin.Context) {
	planId := c.Param("id")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	if err := a.planService.DeletePlan(c.Request.Context(), planId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan deleted successfully")
}

func (a *AdminPlanController) AddFeature(c *gin.Context) {
	planId := c.Param("id")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	var req request_models.AddFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid feature payload: "+err.Error())
		return
	}

	if err := a.planService.AddFeature(c.Request.Context(), planId, req.Feature); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Feature added successfully")
}

func (a *AdminPlanController) RemoveFeature(c *gin.Context) {
	planId := c.Param("id")
	featureId, err := strconv.ParseUint(c.Param("featureId"), 10, 32)
	if planId == "" || err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID and numeric feature ID are required")
		return
	}

	if err := a.planService.RemoveFeature(c.Request.Context(), planId, uint(featureId)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feature removed successfully")
}

func (a *AdminPlanController) ClearFeatures(c *gin.Context) {
	planId := c.Param("id")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	if err := a.planService.ClearFeatures(c.Request.Context(), planId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Features cleared successfully")
}

func (a *AdminPlanController) GenerateDescription(c *gin.Context) {
	planId := c.Param("id")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	var req request_models.GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid payload: "+err.Error())
		return
	}

	description, err := a.copywriter.GenerateDescription(c.Request.Context(), planId, req.Tone)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	planUUID, _ := uuid.Parse(planId)
	resp := response_models.GeneratedDescriptionResponse{
		PlanID:      planUUID,
		Description: description,
	}
	utils.RespondSuccess(c, resp, "Description generated successfully")
}
