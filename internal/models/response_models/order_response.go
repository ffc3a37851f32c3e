package response_models

import "github.com/google/uuid"

type OrderResponse struct {
	OrderID         uuid.UUID `json:"orderId"`
	PlanID          uuid.UUID `json:"planId"`
	PlanName        string    `json:"planName"`
	Location        string    `json:"location"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentProofURL string    `json:"paymentProofUrl,omitempty"`
	PromoCode       string    `json:"promoCode,omitempty"`
	Subtotal        int64     `json:"subtotal"`
	Discount        int64     `json:"discount"`
	Total           int64     `json:"total"`
	Status          string    `json:"status"`
	CreatedAt       int64     `json:"created_at"`
}

type CreateCheckoutResponse struct {
	OrderCode    int64  `json:"order_code"`
	Amount       int64  `json:"amount"`
	PaymentURL   string `json:"payment_url"`
	ProviderName string `json:"provider"`
}

type UploadResponse struct {
	Success     bool   `json:"success"`
	URL         string `json:"url"`
	FileName    string `json:"fileName"`
	StorageType string `json:"storageType"`
}
