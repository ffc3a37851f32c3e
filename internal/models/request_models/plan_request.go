package request_models

type CreatePlanRequest struct {
	Category    string   `json:"category" binding:"required,oneof=rdp vps"`
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Description string   `json:"description"`
	CPU         string   `json:"cpu"`
	RAM         string   `json:"ram"`
	Storage     string   `json:"storage"`
	Bandwidth   string   `json:"bandwidth"`
	OS          string   `json:"os"`
	PricePKR    int64    `json:"price_pkr" binding:"required,gt=0"`
	IsActive    *bool    `json:"is_active"`
	ThemeColor  string   `json:"theme_color"`
	Label       string   `json:"label"`
	Features    []string `json:"features"`
}

// UpdatePlanRequest carries partial updates: nil fields are left untouched,
// a non-nil Features replaces the whole feature list.
type UpdatePlanRequest struct {
	Category    *string   `json:"category" binding:"omitempty,oneof=rdp vps"`
	Name        *string   `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string   `json:"description"`
	CPU         *string   `json:"cpu"`
	RAM         *string   `json:"ram"`
	Storage     *string   `json:"storage"`
	Bandwidth   *string   `json:"bandwidth"`
	OS          *string   `json:"os"`
	PricePKR    *int64    `json:"price_pkr" binding:"omitempty,gt=0"`
	IsActive    *bool     `json:"is_active"`
	ThemeColor  *string   `json:"theme_color"`
	Label       *string   `json:"label"`
	Features    *[]string `json:"features"`
}

type AddFeatureRequest struct {
	Feature string `json:"feature" binding:"required,min=1,max=255"`
}

type GenerateDescriptionRequest struct {
	Tone string `json:"tone" binding:"omitempty,oneof=professional friendly technical"`
}
