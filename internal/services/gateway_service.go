package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/payOSHQ/payos-lib-golang"
	log "github.com/sirupsen/logrus"

	"hostlane/internal/config"
	"hostlane/internal/models/db_models"
	"hostlane/internal/models/response_models"
	"hostlane/internal/repositories"
	"hostlane/pkg/utils"
)

const gatewayProviderName = "payos"

// GatewayService lets a customer pay an order online instead of
// uploading a manual payment proof.
type GatewayService interface {
	CreateCheckoutForOrder(ctx context.Context, accountID string, orderID string) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(c *gin.Context)
}

type gatewayService struct {
	orderRepo repositories.IOrderRepository
	cfg       config.PayOSConfig
}

func NewGatewayService(orderRepo repositories.IOrderRepository, cfg config.PayOSConfig) (GatewayService, error) {
	if cfg.ClientID == "" || cfg.APIKey == "" || cfg.ChecksumKey == "" {
		return nil, errors.New("missing payOS credentials")
	}
	return &gatewayService{orderRepo: orderRepo, cfg: cfg}, nil
}

func (g *gatewayService) CreateCheckoutForOrder(ctx context.Context, accountID string, orderID string) (*response_models.CreateCheckoutResponse, error) {

	order, err := g.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil || order.AccountID.String() != accountID {
		return nil, utils.ErrOrderNotFound
	}
	if order.Status != db_models.OrderStatusPending {
		return nil, fmt.Errorf("%w: status is %s", utils.ErrOrderNotPayable, order.Status)
	}
	if order.TotalMinor <= 0 {
		return nil, fmt.Errorf("%w: amount is %d", utils.ErrOrderNotPayable, order.TotalMinor)
	}

	// payOS expects an int64 order code; unix seconds plus a short random
	// keeps it unique enough within the 13-digit limit.
	orderCode := time.Now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)
	providerRef := fmt.Sprintf("payos:%d", orderCode)

	if err := payos.Key(g.cfg.ClientID, g.cfg.APIKey, g.cfg.ChecksumKey); err != nil {
		return nil, fmt.Errorf("payos client init: %w", err)
	}

	item := payos.Item{
		Name:     order.PlanName,
		Price:    int(order.TotalMinor),
		Quantity: 1,
	}
	body := payos.CheckoutRequestType{
		OrderCode:   orderCode,
		Amount:      int(order.TotalMinor),
		Items:       []payos.Item{item},
		Description: fmt.Sprintf("Hosting order %s", order.ID),
		CancelUrl:   g.cfg.CancelURL,
		ReturnUrl:   g.cfg.ReturnURL,
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	meta, _ := json.Marshal(map[string]any{"payos_link": resp})
	if err := g.orderRepo.SetProvider(ctx, orderID, gatewayProviderName, providerRef, "gateway", meta); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:    orderCode,
		Amount:       order.TotalMinor,
		PaymentURL:   resp.CheckoutUrl,
		ProviderName: gatewayProviderName,
	}, nil
}

func (g *gatewayService) HandleWebhook(c *gin.Context) {

	if err := payos.Key(g.cfg.ClientID, g.cfg.APIKey, g.cfg.ChecksumKey); err != nil {
		log.Errorf("payos key init failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gateway unavailable"})
		return
	}

	var body payos.WebhookType
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Errorf("invalid webhook payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	data, err := payos.VerifyPaymentWebhookData(body)
	if err != nil {
		log.Errorf("webhook verification failed: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to verify webhook data"})
		return
	}

	providerRef := fmt.Sprintf("payos:%d", data.OrderCode)
	order, err := g.orderRepo.FindByProviderRef(c.Request.Context(), providerRef)
	if err != nil {
		log.Errorf("webhook: lookup failed for %s: %v", providerRef, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process webhook"})
		return
	}
	if order == nil {
		// Ack to avoid a retry storm; log for investigation.
		log.Errorf("webhook: no order for provider ref %s", providerRef)
		c.JSON(http.StatusOK, gin.H{"message": "ignored"})
		return
	}

	// Idempotent: MarkPaid only moves pending orders.
	if order.Status == db_models.OrderStatusPending {
		if err := g.orderRepo.MarkPaid(c.Request.Context(), order, time.Now().Unix()); err != nil {
			log.Errorf("webhook: failed to mark order %s paid: %v", order.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
