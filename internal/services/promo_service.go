package services

import (
	"context"
	"time"

	"hostlane/internal/models/db_models"
	"hostlane/internal/models/request_models"
	"hostlane/internal/models/response_models"
	"hostlane/internal/repositories"
	"hostlane/pkg/utils"
)

type PromoServiceInterface interface {
	// Validate returns a business result: an invalid code is Valid=false
	// with a message, never an error. Errors mean the store failed.
	Validate(ctx context.Context, code string, planID string) (response_models.PromoValidationResponse, error)
	CreatePromo(ctx context.Context, req request_models.CreatePromoRequest) (response_models.PromoCodeResponse, error)
	ListPromos(ctx context.Context) ([]response_models.PromoCodeResponse, error)
}

type PromoService struct {
	promoRepo repositories.IPromoRepository
	planRepo  repositories.IPlanRepository
}

func NewPromoService(promoRepo repositories.IPromoRepository, planRepo repositories.IPlanRepository) PromoServiceInterface {
	return &PromoService{
		promoRepo: promoRepo,
		planRepo:  planRepo,
	}
}

func rejected(message string) response_models.PromoValidationResponse {
	return response_models.PromoValidationResponse{Valid: false, Message: message}
}

func (s *PromoService) Validate(ctx context.Context, code string, planID string) (response_models.PromoValidationResponse, error) {

	plan, err := s.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return rejected("internal error"), utils.ErrDatabaseError
	}
	if plan == nil || !plan.IsActive {
		return rejected("plan not found"), nil
	}

	promo, err := s.promoRepo.FindByCode(ctx, code)
	if err != nil {
		return rejected("internal error"), utils.ErrDatabaseError
	}
	if promo == nil {
		return rejected("promo code not found"), nil
	}

	if !promo.IsActive {
		return rejected("promo code is no longer active"), nil
	}

	now := time.Now().Unix()
	if promo.ValidFrom != nil && now < *promo.ValidFrom {
		return rejected("promo code is not valid yet"), nil
	}
	if promo.ExpiresAt != nil && now > *promo.ExpiresAt {
		return rejected("promo code has expired"), nil
	}

	if promo.MinOrderMinor > 0 && plan.PricePKR < promo.MinOrderMinor {
		return rejected("plan price is below the minimum for this code"), nil
	}

	return response_models.PromoValidationResponse{
		Valid:    true,
		Message:  "promo code applied",
		Discount: promo.DiscountPercent,
	}, nil
}

func toPromoResponse(promo *db_models.PromoCode) response_models.PromoCodeResponse {
	return response_models.PromoCodeResponse{
		ID:              promo.ID,
		Code:            promo.Code,
		DiscountPercent: promo.DiscountPercent,
		MinOrderMinor:   promo.MinOrderMinor,
		IsActive:        promo.IsActive,
		ValidFrom:       promo.ValidFrom,
		ExpiresAt:       promo.ExpiresAt,
		CreatedAt:       promo.CreatedAt,
	}
}

func (s *PromoService) CreatePromo(ctx context.Context, req request_models.CreatePromoRequest) (response_models.PromoCodeResponse, error) {

	existing, err := s.promoRepo.FindByCode(ctx, req.Code)
	if err != nil {
		return response_models.PromoCodeResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.PromoCodeResponse{}, utils.ErrPromoCodeExists
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	promo := &db_models.PromoCode{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		MinOrderMinor:   req.MinOrderMinor,
		IsActive:        isActive,
		ValidFrom:       req.ValidFrom,
		ExpiresAt:       req.ExpiresAt,
	}
	if err := s.promoRepo.Insert(ctx, promo); err != nil {
		return response_models.PromoCodeResponse{}, utils.ErrDatabaseError
	}

	return toPromoResponse(promo), nil
}

func (s *PromoService) ListPromos(ctx context.Context) ([]response_models.PromoCodeResponse, error) {
	promos, err := s.promoRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PromoCodeResponse, 0, len(promos))
	for i := range promos {
		out = append(out, toPromoResponse(&promos[i]))
	}
	return out, nil
}
