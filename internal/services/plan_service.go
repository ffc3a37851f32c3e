package services

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"hostlane/internal/models/db_models"
	"hostlane/internal/models/request_models"
	"hostlane/internal/models/response_models"
	"hostlane/internal/repositories"
	"hostlane/pkg/utils"
)

type PlanServiceInterface interface {
	GetAllPlans(ctx context.Context, includeInactive bool) []response_models.PlanResponse
	GetPlanByID(ctx context.Context, planID string) (response_models.PlanResponse, error)
	GetPlansByCategory(ctx context.Context, category string, includeInactive bool) []response_models.PlanResponse
	CreatePlan(ctx context.Context, req request_models.CreatePlanRequest) (response_models.PlanResponse, error)
	UpdatePlan(ctx context.Context, planID string, req request_models.UpdatePlanRequest) (response_models.PlanResponse, error)
	DeletePlan(ctx context.Context, planID string) error
	AddFeature(ctx context.Context, planID string, feature string) error
	RemoveFeature(ctx context.Context, planID string, featureID uint) error
	ClearFeatures(ctx context.Context, planID string) error
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{planRepo: planRepo}
}

func toPlanResponse(plan *db_models.Plan) response_models.PlanResponse {
	features := make([]string, 0, len(plan.Features))
	for _, f := range plan.Features {
		features = append(features, f.Feature)
	}
	return response_models.PlanResponse{
		ID:          plan.ID,
		Category:    string(plan.Category),
		Name:        plan.Name,
		Description: plan.Description,
		CPU:         plan.CPU,
		RAM:         plan.RAM,
		Storage:     plan.Storage,
		Bandwidth:   plan.Bandwidth,
		OS:          plan.OS,
		PricePKR:    plan.PricePKR,
		IsActive:    plan.IsActive,
		ThemeColor:  plan.ThemeColor,
		Label:       plan.Label,
		Features:    features,
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
}

func toPlanResponses(plans []db_models.Plan) []response_models.PlanResponse {
	out := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, toPlanResponse(&plans[i]))
	}
	return out
}

// Read paths mask store failures as an empty catalog / not-found so the
// storefront renders instead of erroring; the failure is still logged.
// Write paths propagate.

func (p *PlanService) GetAllPlans(ctx context.Context, includeInactive bool) []response_models.PlanResponse {
	plans, err := p.planRepo.GetAllPlans(ctx, includeInactive)
	if err != nil {
		log.Errorf("GetAllPlans failed, returning empty catalog: %v", err)
		return []response_models.PlanResponse{}
	}
	return toPlanResponses(plans)
}

func (p *PlanService) GetPlanByID(ctx context.Context, planID string) (response_models.PlanResponse, error) {
	plan, err := p.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		log.Errorf("GetPlanByID failed, masking as not-found: %v", err)
		return response_models.PlanResponse{}, utils.ErrPlanNotFound
	}
	if plan == nil {
		return response_models.PlanResponse{}, utils.ErrPlanNotFound
	}
	return toPlanResponse(plan), nil
}

func (p *PlanService) GetPlansByCategory(ctx context.Context, category string, includeInactive bool) []response_models.PlanResponse {
	cat := db_models.PlanCategory(category)
	if !cat.Valid() {
		return []response_models.PlanResponse{}
	}

	plans, err := p.planRepo.GetPlansByCategory(ctx, cat, includeInactive)
	if err != nil {
		log.Errorf("GetPlansByCategory failed, returning empty catalog: %v", err)
		return []response_models.PlanResponse{}
	}
	return toPlanResponses(plans)
}

func (p *PlanService) CreatePlan(ctx context.Context, req request_models.CreatePlanRequest) (response_models.PlanResponse, error) {
	features := make([]db_models.PlanFeature, 0, len(req.Features))
	for _, f := range req.Features {
		features = append(features, db_models.PlanFeature{Feature: f})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	plan := &db_models.Plan{
		Category:    db_models.PlanCategory(req.Category),
		Name:        req.Name,
		Description: req.Description,
		CPU:         req.CPU,
		RAM:         req.RAM,
		Storage:     req.Storage,
		Bandwidth:   req.Bandwidth,
		OS:          req.OS,
		PricePKR:    req.PricePKR,
		IsActive:    isActive,
		ThemeColor:  req.ThemeColor,
		Label:       req.Label,
		Features:    features,
	}

	created, err := p.planRepo.CreatePlan(ctx, plan)
	if err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}
	return toPlanResponse(created), nil
}

func (p *PlanService) UpdatePlan(ctx context.Context, planID string, req request_models.UpdatePlanRequest) (response_models.PlanResponse, error) {
	update := repositories.PlanUpdate{
		Name:        req.Name,
		Description: req.Description,
		CPU:         req.CPU,
		RAM:         req.RAM,
		Storage:     req.Storage,
		Bandwidth:   req.Bandwidth,
		OS:          req.OS,
		PricePKR:    req.PricePKR,
		IsActive:    req.IsActive,
		ThemeColor:  req.ThemeColor,
		Label:       req.Label,
		Features:    req.Features,
	}
	if req.Category != nil {
		cat := db_models.PlanCategory(*req.Category)
		update.Category = &cat
	}

	updated, err := p.planRepo.UpdatePlan(ctx, planID, update)
	if err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}
	if updated == nil {
		return response_models.PlanResponse{}, utils.ErrPlanNotFound
	}
	return toPlanResponse(updated), nil
}

func (p *PlanService) DeletePlan(ctx context.Context, planID string) error {
	if _, err := uuid.Parse(planID); err != nil {
		return utils.ErrPlanNotFound
	}

	deleted, err := p.planRepo.DeletePlan(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrPlanNotFound
	}
	return nil
}

func (p *PlanService) AddFeature(ctx context.Context, planID string, feature string) error {
	plan, err := p.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}
	if err := p.planRepo.AddPlanFeature(ctx, planID, feature); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlanService) RemoveFeature(ctx context.Context, planID string, featureID uint) error {
	if err := p.planRepo.RemovePlanFeature(ctx, planID, featureID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlanService) ClearFeatures(ctx context.Context, planID string) error {
	if err := p.planRepo.ClearPlanFeatures(ctx, planID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
