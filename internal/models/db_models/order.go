package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusRejected  OrderStatus = "rejected"
)

type Order struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	PlanID    uuid.UUID `gorm:"type:uuid;index;not null"`

	// Snapshot of what the customer saw at checkout.
	PlanName         string `gorm:"size:100"`
	Location         string `gorm:"size:100;not null"`
	PaymentMethod    string `gorm:"size:50;not null"`
	PaymentProofURL  string `gorm:"size:1024"`
	PaymentProofName string `gorm:"size:255"`
	PromoCode        string `gorm:"size:50"`

	SubtotalMinor int64 `gorm:"not null"`
	DiscountMinor int64 `gorm:"default:0"`
	TotalMinor    int64 `gorm:"not null"`

	Status OrderStatus `gorm:"size:20;index;default:pending"`
	PaidAt *int64

	// Set when the customer pays online instead of uploading a proof.
	Provider    string `gorm:"size:20"`
	ProviderRef string `gorm:"size:100;index"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
	Plan    Plan    `gorm:"foreignKey:PlanID"`
}
