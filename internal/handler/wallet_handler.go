package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
	"github.com/Mario2280/Dating-App-Front-sub000/pkg/wallet"
)

type WalletHandler struct {
	provider wallet.Provider
	payments *repository.PaymentRepository
}

func NewWalletHandler(provider wallet.Provider, payments *repository.PaymentRepository) *WalletHandler {
	return &WalletHandler{provider: provider, payments: payments}
}

// Balance proxies the wallet provider for the given wallet id.
func (h *WalletHandler) Balance(c *gin.Context) {
	walletID := c.Query("wallet_id")
	if walletID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wallet_id is required"})
		return
	}
	bal, err := h.provider.Balance(c.Request.Context(), walletID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "wallet provider unavailable"})
		return
	}
	c.JSON(http.StatusOK, bal)
}

// GetSelection returns the stored payment type and method.
func (h *WalletHandler) GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, h.payments.Get(c.Request.Context()))
}

// PutSelection stores the chosen payment type and method.
func (h *WalletHandler) PutSelection(c *gin.Context) {
	var sel models.PaymentSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.payments.Save(c.Request.Context(), sel); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sel)
}
