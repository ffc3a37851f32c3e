package db_models

type PromoCode struct {
	BaseModel
	Code            string `gorm:"size:50;uniqueIndex;not null"`
	DiscountPercent int    `gorm:"not null"`
	MinOrderMinor   int64  `gorm:"default:0"`
	IsActive        bool   `gorm:"default:true"`
	ValidFrom       *int64
	ExpiresAt       *int64
}
