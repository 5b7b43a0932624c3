package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ticketbay/checkout-gateway/internal/models"
	"github.com/ticketbay/checkout-gateway/internal/service"
	"github.com/ticketbay/checkout-gateway/internal/telemetry"
)

type CheckoutHandler struct {
	manager *service.CheckoutManager
}

func NewCheckoutHandler(manager *service.CheckoutManager) *CheckoutHandler {
	return &CheckoutHandler{manager: manager}
}

func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var req models.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		telemetry.Logger.Error("Error decoding purchase request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	url, err := h.manager.CreateSession(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *CheckoutHandler) GetSessionStatus(c *gin.Context) {
	status, err := h.manager.GetSessionStatus(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// writeError maps the service's error kinds to transport responses. Invalid
// requests carry their specific message; everything else degrades to a generic
// 500 so processor detail never crosses to the client.
func writeError(c *gin.Context, err error) {
	var appErr *models.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case models.KindInvalidRequest:
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
			return
		case models.KindProcessor:
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": appErr.Message}})
			return
		}
	}

	telemetry.Logger.Error("unclassified handler error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "internal error"}})
}
