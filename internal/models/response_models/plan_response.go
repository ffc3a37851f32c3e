package response_models

import "github.com/google/uuid"

type PlanResponse struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"` // "rdp" | "vps"
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CPU         string    `json:"cpu,omitempty"`
	RAM         string    `json:"ram,omitempty"`
	Storage     string    `json:"storage,omitempty"`
	Bandwidth   string    `json:"bandwidth,omitempty"`
	OS          string    `json:"os,omitempty"`
	PricePKR    int64     `json:"price_pkr"` // minor units
	IsActive    bool      `json:"is_active"`
	ThemeColor  string    `json:"theme_color,omitempty"`
	Label       string    `json:"label,omitempty"`
	Features    []string  `json:"features"` // never null, possibly empty
	CreatedAt   int64     `json:"created_at"`
	UpdatedAt   int64     `json:"updated_at"`
}

type GeneratedDescriptionResponse struct {
	PlanID      uuid.UUID `json:"plan_id"`
	Description string    `json:"description"`
}
