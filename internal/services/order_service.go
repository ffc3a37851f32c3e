package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"hostlane/internal/checkout"
	"hostlane/internal/models/db_models"
	"hostlane/internal/models/request_models"
	"hostlane/internal/models/response_models"
	"hostlane/internal/repositories"
	"hostlane/pkg/utils"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, accountID string, req request_models.CreateOrderRequest) (response_models.OrderResponse, error)
	ListOrders(ctx context.Context, accountID string) ([]response_models.OrderResponse, error)
	UpdateStatus(ctx context.Context, orderID string, status db_models.OrderStatus) error
}

type OrderService struct {
	orderRepo    repositories.IOrderRepository
	planRepo     repositories.IPlanRepository
	accountRepo  repositories.AccountRepository
	promoService PromoServiceInterface
	mailService  IMailService
}

func NewOrderService(
	orderRepo repositories.IOrderRepository,
	planRepo repositories.IPlanRepository,
	accountRepo repositories.AccountRepository,
	promoService PromoServiceInterface,
	mailService IMailService,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:    orderRepo,
		planRepo:     planRepo,
		accountRepo:  accountRepo,
		promoService: promoService,
		mailService:  mailService,
	}
}

func toOrderResponse(order *db_models.Order) response_models.OrderResponse {
	return response_models.OrderResponse{
		OrderID:         order.ID,
		PlanID:          order.PlanID,
		PlanName:        order.PlanName,
		Location:        order.Location,
		PaymentMethod:   order.PaymentMethod,
		PaymentProofURL: order.PaymentProofURL,
		PromoCode:       order.PromoCode,
		Subtotal:        order.SubtotalMinor,
		Discount:        order.DiscountMinor,
		Total:           order.TotalMinor,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
	}
}

// CreateOrder runs the same submission guards the checkout flow uses and
// recomputes the totals server-side; client-supplied amounts are never
// trusted.
func (o *OrderService) CreateOrder(ctx context.Context, accountID string, req request_models.CreateOrderRequest) (response_models.OrderResponse, error) {

	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return response_models.OrderResponse{}, utils.ErrAccountNotFound
	}

	plan, err := o.planRepo.GetPlanByID(ctx, req.PlanID)
	if err != nil {
		return response_models.OrderResponse{}, utils.ErrDatabaseError
	}
	if plan == nil || !plan.IsActive {
		return response_models.OrderResponse{}, utils.ErrPlanNotFound
	}

	session := checkout.NewSession(checkout.PlanInfo{
		ID:         plan.ID.String(),
		Name:       plan.Name,
		PriceMinor: plan.PricePKR,
	})
	session.Location = req.Location
	session.PaymentMethod = req.PaymentMethod
	session.PaymentProofURL = req.PaymentProofURL
	session.PaymentProofName = req.PaymentProofName

	auth := checkout.AuthState{Authenticated: true, AccountID: accountID}
	if _, err := session.SubmitCheck(auth); err != nil {
		return response_models.OrderResponse{}, err
	}

	if req.PromoCode != "" {
		result, err := o.promoService.Validate(ctx, req.PromoCode, req.PlanID)
		if err != nil {
			return response_models.OrderResponse{}, err
		}
		if !result.Valid {
			// The code was applied at checkout but no longer holds; the
			// customer has to re-review the total rather than be charged
			// a different amount silently.
			return response_models.OrderResponse{}, fmt.Errorf("%w: %s", utils.ErrPromoRejected, result.Message)
		}
		session.ApplyPromo(req.PromoCode, utils.DiscountAmount(plan.PricePKR, result.Discount))
	}

	order := &db_models.Order{
		AccountID:        accountUUID,
		PlanID:           plan.ID,
		PlanName:         plan.Name,
		Location:         req.Location,
		PaymentMethod:    req.PaymentMethod,
		PaymentProofURL:  req.PaymentProofURL,
		PaymentProofName: req.PaymentProofName,
		PromoCode:        session.PromoCode,
		SubtotalMinor:    session.Subtotal(),
		DiscountMinor:    session.DiscountMinor,
		TotalMinor:       session.Total(),
		Status:           db_models.OrderStatusPending,
	}

	if err := o.orderRepo.Insert(ctx, order); err != nil {
		return response_models.OrderResponse{}, utils.ErrDatabaseError
	}

	o.notifyOrderReceived(ctx, accountID, order)

	return toOrderResponse(order), nil
}

// Confirmation mail is best-effort: the order stands even if SMTP is down.
func (o *OrderService) notifyOrderReceived(ctx context.Context, accountID string, order *db_models.Order) {
	if o.mailService == nil {
		return
	}
	account, err := o.accountRepo.FindByID(ctx, accountID)
	if err != nil || account == nil {
		log.Errorf("order %s: could not load account for confirmation mail: %v", order.ID, err)
		return
	}
	if err := o.mailService.SendOrderReceived(account.Email, order.ID.String(), order.PlanName, order.TotalMinor); err != nil {
		log.Errorf("order %s: confirmation mail failed: %v", order.ID, err)
	}
}

func (o *OrderService) ListOrders(ctx context.Context, accountID string) ([]response_models.OrderResponse, error) {
	orders, err := o.orderRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out, nil
}

func (o *OrderService) UpdateStatus(ctx context.Context, orderID string, status db_models.OrderStatus) error {
	updated, err := o.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !updated {
		return utils.ErrOrderNotFound
	}
	return nil
}
