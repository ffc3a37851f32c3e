package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"hostlane/internal/models/db_models"
)

type IPromoRepository interface {
	FindByCode(ctx context.Context, code string) (*db_models.PromoCode, error)
	Insert(ctx context.Context, promo *db_models.PromoCode) error
	GetAll(ctx context.Context) ([]db_models.PromoCode, error)
}

type PromoRepository struct {
	db *gorm.DB
}

func NewPromoRepository(db *gorm.DB) IPromoRepository {
	return &PromoRepository{db: db}
}

func (p *PromoRepository) FindByCode(ctx context.Context, code string) (*db_models.PromoCode, error) {

	var promo db_models.PromoCode
	err := p.db.WithContext(ctx).First(&promo, "code = ?", strings.ToUpper(code)).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &promo, nil
}

func (p *PromoRepository) Insert(ctx context.Context, promo *db_models.PromoCode) error {
	promo.Code = strings.ToUpper(promo.Code)
	return p.db.WithContext(ctx).Create(promo).Error
}

func (p *PromoRepository) GetAll(ctx context.Context) ([]db_models.PromoCode, error) {
	var promos []db_models.PromoCode
	if err := p.db.WithContext(ctx).Order("created_at DESC").Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}
