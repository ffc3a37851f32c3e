package db_models

import "github.com/google/uuid"

type PlanCategory string

const (
	CategoryRDP PlanCategory = "rdp"
	CategoryVPS PlanCategory = "vps"
)

func (c PlanCategory) Valid() bool {
	return c == CategoryRDP || c == CategoryVPS
}

type Plan struct {
	BaseModel
	Category    PlanCategory `gorm:"size:10;index;not null"`
	Name        string       `gorm:"size:100;not null"`
	Description string       `gorm:"type:text"`
	CPU         string       `gorm:"size:100"`
	RAM         string       `gorm:"size:100"`
	Storage     string       `gorm:"size:100"`
	Bandwidth   string       `gorm:"size:100"`
	OS          string       `gorm:"size:100"`
	PricePKR    int64        `gorm:"not null"` // minor units
	IsActive    bool         `gorm:"default:true"`
	ThemeColor  string       `gorm:"size:30"`
	Label       string       `gorm:"size:50"`

	Features []PlanFeature `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// PlanFeature rows are replaced wholesale when a plan's feature list is
// updated; the serial primary key preserves insertion order.
type PlanFeature struct {
	ID      uint      `gorm:"primaryKey"`
	PlanID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Feature string    `gorm:"size:255;not null"`
}
