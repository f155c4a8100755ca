package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rqapp/rq-mobile-api/internal/domain"
)

type billingUsecaser interface {
	VerifyReceipt(receiptData string, productID *string) domain.ReceiptVerification
}

type BillingHandler struct {
	billingUsecase billingUsecaser
	logger         *slog.Logger
}

func NewBillingHandler(billingUsecase billingUsecaser, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		logger:         logger.With("component", "billing_handler"),
	}
}

type receiptVerifyRequest struct {
	ReceiptData string  `json:"receiptData" binding:"required"`
	ProductID   *string `json:"productId"`
}

// POST /api/v2/mobile/billing/ios/verify
// Verification always succeeds in this mock.
func (h *BillingHandler) VerifyReceipt(c *gin.Context) {
	var req receiptVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, slugBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, h.billingUsecase.VerifyReceipt(req.ReceiptData, req.ProductID))
}
