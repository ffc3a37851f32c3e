package request_models

type ValidatePromoRequest struct {
	Code   string `json:"code" binding:"required"`
	PlanID string `json:"planId" binding:"required,uuid"`
}

type CreatePromoRequest struct {
	Code            string `json:"code" binding:"required,min=3,max=50"`
	DiscountPercent int    `json:"discount_percent" binding:"required,gt=0,lte=100"`
	MinOrderMinor   int64  `json:"min_order_minor" binding:"omitempty,gte=0"`
	IsActive        *bool  `json:"is_active"`
	ValidFrom       *int64 `json:"valid_from"`
	ExpiresAt       *int64 `json:"expires_at"`
}
