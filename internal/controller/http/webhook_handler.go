package http

import (
	"net/http"

	"immo-media/internal/entity"
	"immo-media/internal/usecase"
	"immo-media/pkg/logger"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	webhookUseCase usecase.WebhookUseCase
	logger         *logger.Logger
}

func NewWebhookHandler(webhookUseCase usecase.WebhookUseCase, logger *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhookUseCase: webhookUseCase,
		logger:         logger,
	}
}

// Campay godoc
// @Summary      Campay payment callback
// @Description  Applies SUCCESSFUL or FAILED to the matching transaction. Always acknowledged unless the body is malformed.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        payload body entity.WebhookPayload true "Campay notification"
// @Success      200  {object}  SuccessResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /webhooks/campay [post]
func (h *WebhookHandler) Campay(c *gin.Context) {
	var payload entity.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Error("Malformed Campay webhook: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	outcome, err := h.webhookUseCase.HandleCampay(c.Request.Context(), payload)
	if err != nil {
		// acknowledged anyway so Campay does not redeliver forever
		h.logger.Error("Campay webhook for %s not applied: %v", payload.Reference, err)
	} else {
		h.logger.Info("Campay webhook for %s: %s", payload.Reference, outcome)
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Webhook reçu",
	})
}
