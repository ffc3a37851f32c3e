package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"hostlane/internal/models/db_models"
	"hostlane/internal/models/request_models"
	"hostlane/pkg/utils"
)

func activePlan(priceMinor int64) *db_models.Plan {
	return &db_models.Plan{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Category:  db_models.CategoryVPS,
		Name:      "Starter VPS",
		PricePKR:  priceMinor,
		IsActive:  true,
	}
}

func TestValidateUnknownCodeIsRejectedNotError(t *testing.T) {
	plan := activePlan(500000)
	svc := NewPromoService(newFakePromoRepo(), newFakePlanRepo(plan))

	result, err := svc.Validate(context.Background(), "NOSUCH", plan.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Fatal("unknown code validated")
	}
	if result.Discount != 0 {
		t.Fatalf("rejected code carries discount %d", result.Discount)
	}
	if result.Message == "" {
		t.Fatal("rejection has no message")
	}
}

func TestValidateInactiveCode(t *testing.T) {
	plan := activePlan(500000)
	promo := &db_models.PromoCode{Code: "SAVE10", DiscountPercent: 10, IsActive: false}
	svc := NewPromoService(newFakePromoRepo(promo), newFakePlanRepo(plan))

	result, err := svc.Validate(context.Background(), "SAVE10", plan.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Fatal("inactive code validated")
	}
}

func TestValidateExpiredCode(t *testing.T) {
	plan := activePlan(500000)
	past := time.Now().Add(-time.Hour).Unix()
	promo := &db_models.PromoCode{Code: "SAVE10", DiscountPercent: 10, IsActive: true, ExpiresAt: &past}
	svc := NewPromoService(newFakePromoRepo(promo), newFakePlanRepo(plan))

	result, err := svc.Validate(context.Background(), "SAVE10", plan.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Fatal("expired code validated")
	}
}

func TestValidateNotYetValidCode(t *testing.T) {
	plan := activePlan(500000)
	future := time.Now().Add(time.Hour).Unix()
	promo := &db_models.PromoCode{Code: "SAVE10", DiscountPercent: 10, IsActive: true, ValidFrom: &future}
	svc := NewPromoService(newFakePromoRepo(promo), newFakePlanRepo(plan))

	result, err := svc.Validate(context.Background(), "SAVE10", plan.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Fatal("not-yet-valid code validated")
	}
}

func TestValidateMinimumOrderAmount(t *testing.T) {
	plan := activePlan(200000)
	promo := &db_models.PromoCode{Code: "BIG20", DiscountPercent: 20, IsActive: true, MinOrderMinor: 300000}
	svc := NewPromoService(newFakePromoRepo(promo), newFakePlanRepo(plan))

	result, err := svc.Validate(context.Background(), "BIG20", plan.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Fatal("code validated below its minimum order amount")
	}
}

func TestValidateSuccessReturnsPercent(t *testing.T) {
	plan := activePlan(500000)
	promo := &db_models.PromoCode{Code: "SAVE10", DiscountPercent: 10, IsActive: true}
	svc := NewPromoService(newFakePromoRepo(promo), newFakePlanRepo(plan))

	result, err := svc.Validate(context.Background(), "SAVE10", plan.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("valid code rejected: %s", result.Message)
	}
	if result.Discount != 10 {
		t.Fatalf("discount = %d, want 10", result.Discount)
	}
}

func TestValidateUnknownPlanIsRejected(t *testing.T) {
	promo := &db_models.PromoCode{Code: "SAVE10", DiscountPercent: 10, IsActive: true}
	svc := NewPromoService(newFakePromoRepo(promo), newFakePlanRepo())

	result, err := svc.Validate(context.Background(), "SAVE10", uuid.NewString())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Fatal("code validated against a missing plan")
	}
}

// A store outage is an error, not a rejection; the handler answers 500
// instead of telling the customer the code is bad.
func TestValidateStoreErrorIsDistinctFromRejection(t *testing.T) {
	plan := activePlan(500000)
	promoRepo := newFakePromoRepo()
	promoRepo.err = errStoreDown
	svc := NewPromoService(promoRepo, newFakePlanRepo(plan))

	_, err := svc.Validate(context.Background(), "SAVE10", plan.ID.String())
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("err = %v, want ErrDatabaseError", err)
	}
}

func TestCreatePromoRejectsDuplicateCode(t *testing.T) {
	plan := activePlan(500000)
	promo := &db_models.PromoCode{Code: "SAVE10", DiscountPercent: 10, IsActive: true}
	svc := NewPromoService(newFakePromoRepo(promo), newFakePlanRepo(plan))

	_, err := svc.CreatePromo(context.Background(), request_models.CreatePromoRequest{Code: "SAVE10", DiscountPercent: 15})
	if !errors.Is(err, utils.ErrPromoCodeExists) {
		t.Fatalf("err = %v, want ErrPromoCodeExists", err)
	}
}

func TestCreatePromoDefaultsActive(t *testing.T) {
	svc := NewPromoService(newFakePromoRepo(), newFakePlanRepo())

	created, err := svc.CreatePromo(context.Background(), request_models.CreatePromoRequest{Code: "NEW15", DiscountPercent: 15})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.IsActive {
		t.Fatal("new promo is not active by default")
	}
	if created.DiscountPercent != 15 {
		t.Fatalf("discount = %d, want 15", created.DiscountPercent)
	}
}
