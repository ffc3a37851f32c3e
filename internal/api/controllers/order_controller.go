package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostlane/internal/models/db_models"
	"hostlane/internal/models/request_models"
	"hostlane/internal/services"
	"hostlane/pkg/utils"
)

type OrderController struct {
	orderService   services.OrderServiceInterface
	gatewayService services.GatewayService
}

func NewOrderController(orderService services.OrderServiceInterface, gatewayService services.GatewayService) *OrderController {
	return &OrderController{
		orderService:   orderService,
		gatewayService: gatewayService,
	}
}

func accountID(c *gin.Context) string {
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (o *OrderController) CreateOrder(c *gin.Context) {
	account := accountID(c)
	if account == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid order payload: "+err.Error())
		return
	}

	order, err := o.orderService.CreateOrder(c.Request.Context(), account, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, order, "Order submitted successfully")
}

func (o *OrderController) ListMyOrders(c *gin.Context) {
	account := accountID(c)
	if account == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	orders, err := o.orderService.ListOrders(c.Request.Context(), account)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, orders, "Orders fetched successfully")
}

// UpdateOrderStatus is the admin verdict on a manual payment proof.
func (o *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderId := c.Param("id")
	if orderId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Order ID is required")
		return
	}

	var req request_models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid status payload: "+err.Error())
		return
	}

	if err := o.orderService.UpdateStatus(c.Request.Context(), orderId, db_models.OrderStatus(req.Status)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Order status updated successfully")
}

func (o *OrderController) CreateCheckout(c *gin.Context) {
	account := accountID(c)
	if account == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid checkout payload: "+err.Error())
		return
	}

	checkout, err := o.gatewayService.CreateCheckoutForOrder(c.Request.Context(), account, req.OrderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout link created successfully")
}

func (o *OrderController) PaymentWebhook(c *gin.Context) {
	o.gatewayService.HandleWebhook(c)
}
