package request_models

type CreateOrderRequest struct {
	PlanID           string `json:"planId" binding:"required,uuid"`
	Location         string `json:"location" binding:"required"`
	PaymentMethod    string `json:"paymentMethod" binding:"required"`
	PaymentProofURL  string `json:"paymentProofUrl" binding:"required"`
	PaymentProofName string `json:"paymentProofName"`
	PromoCode        string `json:"promoCode"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed rejected"`
}

type CreateCheckoutRequest struct {
	OrderID string `json:"orderId" binding:"required,uuid"`
}
