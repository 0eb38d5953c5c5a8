package http

import (
	"net/http"

	"immo-media/internal/usecase"
	"immo-media/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
	logger         *logger.Logger
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		logger:         logger,
	}
}

type InitiatePaymentRequest struct {
	// pointers so that an explicit 0 or "" passes the required check
	Amount      *int    `json:"montant" binding:"required"`
	Phone       string  `json:"telephone" binding:"required"`
	Description *string `json:"description" binding:"required"`
	Type        string  `json:"type_transaction" binding:"required"`
	BienID      string  `json:"id_bien"`
	UserID      string  `json:"id_utilisateur"`
}

// Initiate godoc
// @Summary      Start a mobile money payment
// @Description  Sends a collect request to Campay and records a pending transaction.
// @Tags         paiements
// @Accept       json
// @Produce      json
// @Param        request body InitiatePaymentRequest true "Payment"
// @Success      200  {object}  SuccessResponse{data=PaymentData}
// @Failure      422  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /paiements/initier [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: err.Error()})
		return
	}

	transaction, err := h.paymentUseCase.Initiate(c.Request.Context(), usecase.InitiatePaymentInput{
		Amount:      *req.Amount,
		Phone:       req.Phone,
		Description: *req.Description,
		Type:        req.Type,
		BienID:      req.BienID,
		UserID:      req.UserID,
	})
	if err != nil {
		h.logger.Error("Payment initiation failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Paiement initié avec succès",
		Data: PaymentData{
			ID:        transaction.ID,
			Reference: transaction.Reference,
			Status:    string(transaction.Status),
			Amount:    transaction.Amount,
			Phone:     req.Phone,
		},
	})
}

// CheckStatus godoc
// @Summary      Check a payment at Campay
// @Description  Returns Campay's transaction payload unchanged. Local records are not touched.
// @Tags         paiements
// @Produce      json
// @Param        reference path string true "Campay reference"
// @Success      200  {object}  SuccessResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /paiements/verifier/{reference} [get]
func (h *PaymentHandler) CheckStatus(c *gin.Context) {
	reference := c.Param("reference")

	status, err := h.paymentUseCase.CheckStatus(c.Request.Context(), reference)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    status,
	})
}
