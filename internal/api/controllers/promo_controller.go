package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostlane/internal/models/request_models"
	"hostlane/internal/services"
	"hostlane/pkg/utils"
)

type PromoController struct {
	promoService services.PromoServiceInterface
}

func NewPromoController(promoService services.PromoServiceInterface) *PromoController {
	return &PromoController{
		promoService: promoService,
	}
}

// ValidatePromo answers 200 for both accepted and rejected codes; the
// verdict lives in the body. Only a store failure is an HTTP error.
func (p *PromoController) ValidatePromo(c *gin.Context) {
	var req request_models.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid promo payload: "+err.Error())
		return
	}

	result, err := p.promoService.Validate(c.Request.Context(), req.Code, req.PlanID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Promo code checked")
}

func (p *PromoController) CreatePromo(c *gin.Context) {
	var req request_models.CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid promo payload: "+err.Error())
		return
	}

	promo, err := p.promoService.CreatePromo(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, promo, "Promo code created successfully")
}

func (p *PromoController) ListPromos(c *gin.Context) {
	promos, err := p.promoService.ListPromos(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, promos, "Promo codes fetched successfully")
}
