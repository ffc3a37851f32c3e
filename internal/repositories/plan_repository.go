package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostlane/internal/models/db_models"
)

// PlanUpdate carries partial updates. Nil fields are not written; a
// non-nil Features replaces the entire feature set.
type PlanUpdate struct {
	Category    *db_models.PlanCategory
	Name        *string
	Description *string
	CPU         *string
	RAM         *string
	Storage     *string
	Bandwidth   *string
	OS          *string
	PricePKR    *int64
	IsActive    *bool
	ThemeColor  *string
	Label       *string
	Features    *[]string
}

type IPlanRepository interface {
	GetAllPlans(ctx context.Context, includeInactive bool) ([]db_models.Plan, error)
	GetPlanByID(ctx context.Context, planID string) (*db_models.Plan, error)
	GetPlansByCategory(ctx context.Context, category db_models.PlanCategory, includeInactive bool) ([]db_models.Plan, error)
	CreatePlan(ctx context.Context, plan *db_models.Plan) (*db_models.Plan, error)
	UpdatePlan(ctx context.Context, planID string, update PlanUpdate) (*db_models.Plan, error)
	DeletePlan(ctx context.Context, planID string) (bool, error)

	AddPlanFeature(ctx context.Context, planID string, feature string) error
	RemovePlanFeature(ctx context.Context, planID string, featureID uint) error
	ClearPlanFeatures(ctx context.Context, planID string) error
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func featurePreload(db *gorm.DB) *gorm.DB {
	return db.Order("plan_features.id ASC")
}

// normalizeFeatures keeps the contract that Features is a slice, never nil.
func normalizeFeatures(plans []db_models.Plan) {
	for i := range plans {
		if plans[i].Features == nil {
			plans[i].Features = []db_models.PlanFeature{}
		}
	}
}

func (p *PlanRepository) GetAllPlans(ctx context.Context, includeInactive bool) ([]db_models.Plan, error) {

	query := p.db.WithContext(ctx).Preload("Features", featurePreload).Order("name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var plans []db_models.Plan
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}

	normalizeFeatures(plans)
	return plans, nil
}

func (p *PlanRepository) GetPlanByID(ctx context.Context, planID string) (*db_models.Plan, error) {

	var plan db_models.Plan
	err := p.db.WithContext(ctx).Preload("Features", featurePreload).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if plan.Features == nil {
		plan.Features = []db_models.PlanFeature{}
	}
	return &plan, nil
}

func (p *PlanRepository) GetPlansByCategory(ctx context.Context, category db_models.PlanCategory, includeInactive bool) ([]db_models.Plan, error) {

	query := p.db.WithContext(ctx).
		Preload("Features", featurePreload).
		Where("category = ?", category).
		Order("name ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var plans []db_models.Plan
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}

	normalizeFeatures(plans)
	return plans, nil
}

// CreatePlan inserts the plan row and its feature rows as one transaction
// and returns the record re-read from the store.
func (p *PlanRepository) CreatePlan(ctx context.Context, plan *db_models.Plan) (*db_models.Plan, error) {

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(plan).Error
	})
	if err != nil {
		return nil, err
	}

	return p.GetPlanByID(ctx, plan.ID.String())
}

func (p *PlanRepository) UpdatePlan(ctx context.Context, planID string, update PlanUpdate) (*db_models.Plan, error) {

	assignments := map[string]interface{}{}
	if update.Category != nil {
		assignments["category"] = *update.Category
	}
	if update.Name != nil {
		assignments["name"] = *update.Name
	}
	if update.Description != nil {
		assignments["description"] = *update.Description
	}
	if update.CPU != nil {
		assignments["cpu"] = *update.CPU
	}
	if update.RAM != nil {
		assignments["ram"] = *update.RAM
	}
	if update.Storage != nil {
		assignments["storage"] = *update.Storage
	}
	if update.Bandwidth != nil {
		assignments["bandwidth"] = *update.Bandwidth
	}
	if update.OS != nil {
		assignments["os"] = *update.OS
	}
	if update.PricePKR != nil {
		assignments["price_pkr"] = *update.PricePKR
	}
	if update.IsActive != nil {
		assignments["is_active"] = *update.IsActive
	}
	if update.ThemeColor != nil {
		assignments["theme_color"] = *update.ThemeColor
	}
	if update.Label != nil {
		assignments["label"] = *update.Label
	}
	// updated_at moves even when only features change.
	assignments["updated_at"] = time.Now().Unix()

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.Plan
		if err := tx.First(&existing, "id = ?", planID).Error; err != nil {
			return err
		}

		if err := tx.Model(&db_models.Plan{}).Where("id = ?", planID).Updates(assignments).Error; err != nil {
			return err
		}

		if update.Features != nil {
			if err := tx.Where("plan_id = ?", planID).Delete(&db_models.PlanFeature{}).Error; err != nil {
				return err
			}
			for _, feature := range *update.Features {
				row := db_models.PlanFeature{PlanID: existing.ID, Feature: feature}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return p.GetPlanByID(ctx, planID)
}

// DeletePlan hard-deletes the plan; the FK constraint cascades to features.
func (p *PlanRepository) DeletePlan(ctx context.Context, planID string) (bool, error) {

	result := p.db.WithContext(ctx).Where("id = ?", planID).Delete(&db_models.Plan{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (p *PlanRepository) AddPlanFeature(ctx context.Context, planID string, feature string) error {

	planUUID, err := uuid.Parse(planID)
	if err != nil {
		return err
	}

	row := db_models.PlanFeature{PlanID: planUUID, Feature: feature}
	return p.db.WithContext(ctx).Create(&row).Error
}

func (p *PlanRepository) RemovePlanFeature(ctx context.Context, planID string, featureID uint) error {
	return p.db.WithContext(ctx).
		Where("plan_id = ? AND id = ?", planID, featureID).
		Delete(&db_models.PlanFeature{}).Error
}

func (p *PlanRepository) ClearPlanFeatures(ctx context.Context, planID string) error {
	return p.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Delete(&db_models.PlanFeature{}).Error
}
