package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"

	"hermes/internal/models/request_models"
	"hermes/internal/services"
	"hermes/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

func (p *PaymentController) CreatePayment(c *gin.Context) {

	var request request_models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userid := c.GetString("user_id")
	if userid == "" {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	userId, err := uuid.Parse(userid)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "invalid user_id")
		return
	}

	payment, err := p.paymentService.CreatePayment(c.Request.Context(), userId, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payment, "Payment initiated successfully")
}

func (p *PaymentController) GetPayment(c *gin.Context) {

	reference := c.Param("reference")

	payment, err := p.paymentService.GetPaymentByReference(c.Request.Context(), reference)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payment, "Payment fetched successfully")
}

func (p *PaymentController) UpdatePaymentStatus(c *gin.Context) {

	reference := c.Param("reference")

	var request request_models.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	payment, err := p.paymentService.UpdatePaymentStatus(c.Request.Context(), reference, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payment, "Payment status updated successfully")
}
