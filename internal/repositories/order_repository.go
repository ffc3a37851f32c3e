package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hostlane/internal/models/db_models"
)

type IOrderRepository interface {
	Insert(ctx context.Context, order *db_models.Order) error
	FindByID(ctx context.Context, orderID string) (*db_models.Order, error)
	FindByProviderRef(ctx context.Context, providerRef string) (*db_models.Order, error)
	ListByAccount(ctx context.Context, accountID string) ([]db_models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status db_models.OrderStatus) (bool, error)
	SetProvider(ctx context.Context, orderID string, provider string, providerRef string, method string, metadata []byte) error
	MarkPaid(ctx context.Context, order *db_models.Order, paidAt int64) error
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

func (o *OrderRepository) Insert(ctx context.Context, order *db_models.Order) error {
	return o.db.WithContext(ctx).Create(order).Error
}

func (o *OrderRepository) FindByID(ctx context.Context, orderID string) (*db_models.Order, error) {
	var order db_models.Order
	err := o.db.WithContext(ctx).First(&order, "id = ?", orderID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &order, nil
}

func (o *OrderRepository) FindByProviderRef(ctx context.Context, providerRef string) (*db_models.Order, error) {
	var order db_models.Order
	err := o.db.WithContext(ctx).First(&order, "provider_ref = ?", providerRef).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &order, nil
}

func (o *OrderRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := o.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *OrderRepository) UpdateStatus(ctx context.Context, orderID string, status db_models.OrderStatus) (bool, error) {
	result := o.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (o *OrderRepository) SetProvider(ctx context.Context, orderID string, provider string, providerRef string, method string, metadata []byte) error {
	return o.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"provider":       provider,
			"provider_ref":   providerRef,
			"payment_method": method,
			"metadata":       metadata,
		}).Error
}

// MarkPaid flips a pending order to paid exactly once.
func (o *OrderRepository) MarkPaid(ctx context.Context, order *db_models.Order, paidAt int64) error {
	return o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(order).
			Where("status = ?", db_models.OrderStatusPending).
			Updates(map[string]interface{}{
				"status":  db_models.OrderStatusPaid,
				"paid_at": paidAt,
			}).Error
	})
}
