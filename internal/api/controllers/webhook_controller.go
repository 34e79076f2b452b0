package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"hermes/internal/models/request_models"
	"hermes/internal/services"
	"hermes/pkg/utils"
)

type WebhookController struct {
	webhookService services.WebhookServiceInterface
}

func NewWebhookController(webhookService services.WebhookServiceInterface) *WebhookController {
	return &WebhookController{
		webhookService: webhookService,
	}
}

// HandlePaymentWebhook is the provider-facing intake endpoint. Any non-2xx
// response prompts the provider to redeliver per its own retry policy.
func (w *WebhookController) HandlePaymentWebhook(c *gin.Context) {

	var payload request_models.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if err := w.webhookService.ProcessWebhook(c.Request.Context(), payload); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"received": true}, "Webhook processed successfully")
}
