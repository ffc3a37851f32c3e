package services

import (
	"context"
	"errors"

	"hostlane/internal/models/db_models"
	"hostlane/internal/repositories"
)

var errStoreDown = errors.New("store down")

// In-memory repository fakes. Each fake returns its configured error from
// every method when err is set, which is how the tests simulate a store
// outage.

type fakePlanRepo struct {
	plans map[string]*db_models.Plan
	err   error

	updates []repositories.PlanUpdate
	deletes []string
}

func newFakePlanRepo(plans ...*db_models.Plan) *fakePlanRepo {
	m := make(map[string]*db_models.Plan, len(plans))
	for _, p := range plans {
		m[p.ID.String()] = p
	}
	return &fakePlanRepo{plans: m}
}

func (f *fakePlanRepo) GetAllPlans(ctx context.Context, includeInactive bool) ([]db_models.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Plan
	for _, p := range f.plans {
		if includeInactive || p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) GetPlanByID(ctx context.Context, planID string) (*db_models.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.plans[planID], nil
}

func (f *fakePlanRepo) GetPlansByCategory(ctx context.Context, category db_models.PlanCategory, includeInactive bool) ([]db_models.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Plan
	for _, p := range f.plans {
		if p.Category != category {
			continue
		}
		if includeInactive || p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) CreatePlan(ctx context.Context, plan *db_models.Plan) (*db_models.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.plans[plan.ID.String()] = plan
	return plan, nil
}

func (f *fakePlanRepo) UpdatePlan(ctx context.Context, planID string, update repositories.PlanUpdate) (*db_models.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	plan, ok := f.plans[planID]
	if !ok {
		return nil, nil
	}
	f.updates = append(f.updates, update)
	if update.Name != nil {
		plan.Name = *update.Name
	}
	if update.PricePKR != nil {
		plan.PricePKR = *update.PricePKR
	}
	if update.Description != nil {
		plan.Description = *update.Description
	}
	if update.Features != nil {
		plan.Features = plan.Features[:0]
		for _, feat := range *update.Features {
			plan.Features = append(plan.Features, db_models.PlanFeature{Feature: feat})
		}
	}
	return plan, nil
}

func (f *fakePlanRepo) DeletePlan(ctx context.Context, planID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.plans[planID]; !ok {
		return false, nil
	}
	delete(f.plans, planID)
	f.deletes = append(f.deletes, planID)
	return true, nil
}

func (f *fakePlanRepo) AddPlanFeature(ctx context.Context, planID string, feature string) error {
	if f.err != nil {
		return f.err
	}
	if plan, ok := f.plans[planID]; ok {
		plan.Features = append(plan.Features, db_models.PlanFeature{Feature: feature})
	}
	return nil
}

func (f *fakePlanRepo) RemovePlanFeature(ctx context.Context, planID string, featureID uint) error {
	return f.err
}

func (f *fakePlanRepo) ClearPlanFeatures(ctx context.Context, planID string) error {
	if f.err != nil {
		return f.err
	}
	if plan, ok := f.plans[planID]; ok {
		plan.Features = plan.Features[:0]
	}
	return nil
}

type fakePromoRepo struct {
	promos map[string]*db_models.PromoCode
	err    error
}

func newFakePromoRepo(promos ...*db_models.PromoCode) *fakePromoRepo {
	m := make(map[string]*db_models.PromoCode, len(promos))
	for _, p := range promos {
		m[p.Code] = p
	}
	return &fakePromoRepo{promos: m}
}

func (f *fakePromoRepo) FindByCode(ctx context.Context, code string) (*db_models.PromoCode, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.promos[code], nil
}

func (f *fakePromoRepo) Insert(ctx context.Context, promo *db_models.PromoCode) error {
	if f.err != nil {
		return f.err
	}
	f.promos[promo.Code] = promo
	return nil
}

func (f *fakePromoRepo) GetAll(ctx context.Context) ([]db_models.PromoCode, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.PromoCode
	for _, p := range f.promos {
		out = append(out, *p)
	}
	return out, nil
}

type fakeOrderRepo struct {
	inserted []*db_models.Order
	err      error
}

func (f *fakeOrderRepo) Insert(ctx context.Context, order *db_models.Order) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, order)
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, orderID string) (*db_models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.inserted {
		if o.ID.String() == orderID {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByProviderRef(ctx context.Context, providerRef string) (*db_models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.inserted {
		if o.ProviderRef == providerRef {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) ListByAccount(ctx context.Context, accountID string) ([]db_models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Order
	for _, o := range f.inserted {
		if o.AccountID.String() == accountID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID string, status db_models.OrderStatus) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, o := range f.inserted {
		if o.ID.String() == orderID {
			o.Status = status
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrderRepo) SetProvider(ctx context.Context, orderID string, provider string, providerRef string, method string, metadata []byte) error {
	if f.err != nil {
		return f.err
	}
	for _, o := range f.inserted {
		if o.ID.String() == orderID {
			o.Provider = provider
			o.ProviderRef = providerRef
			o.PaymentMethod = method
		}
	}
	return nil
}

func (f *fakeOrderRepo) MarkPaid(ctx context.Context, order *db_models.Order, paidAt int64) error {
	if f.err != nil {
		return f.err
	}
	if order.Status == db_models.OrderStatusPending {
		order.Status = db_models.OrderStatusPaid
		order.PaidAt = &paidAt
	}
	return nil
}

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
	err      error
}

func newFakeAccountRepo(accounts ...*db_models.Account) *fakeAccountRepo {
	m := make(map[string]*db_models.Account, len(accounts))
	for _, a := range accounts {
		m[a.ID.String()] = a
	}
	return &fakeAccountRepo{accounts: m}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if f.err != nil {
		return f.err
	}
	f.accounts[account.ID.String()] = account
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, accountID string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.accounts[accountID], nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdatePasswordByEmail(ctx context.Context, email string, passwordHash string) error {
	if f.err != nil {
		return f.err
	}
	for _, a := range f.accounts {
		if a.Email == email {
			a.PasswordHash = passwordHash
		}
	}
	return nil
}

type fakeMailService struct {
	orderMails  []string
	resetMails  []string
	resetTokens []string
	err         error
}

func (f *fakeMailService) SendOrderReceived(to, orderID, planName string, totalMinor int64) error {
	if f.err != nil {
		return f.err
	}
	f.orderMails = append(f.orderMails, to)
	return nil
}

func (f *fakeMailService) SendPasswordReset(to, token string) error {
	if f.err != nil {
		return f.err
	}
	f.resetMails = append(f.resetMails, to)
	f.resetTokens = append(f.resetTokens, token)
	return nil
}
