package response_models

import "github.com/google/uuid"

// PromoValidationResponse is a business result, not an error: an invalid
// code still answers 200 with Valid=false and a human-readable message.
type PromoValidationResponse struct {
	Valid    bool   `json:"valid"`
	Message  string `json:"message"`
	Discount int    `json:"discount"` // percent, 0 when invalid
}

type PromoCodeResponse struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent int       `json:"discount_percent"`
	MinOrderMinor   int64     `json:"min_order_minor"`
	IsActive        bool      `json:"is_active"`
	ValidFrom       *int64    `json:"valid_from,omitempty"`
	ExpiresAt       *int64    `json:"expires_at,omitempty"`
	CreatedAt       int64     `json:"created_at"`
}
