package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/paystack"
)

type initializePaymentRequest struct {
	Amount      int    `json:"amount" binding:"required,gt=0"` // minor currency units
	Email       string `json:"email" binding:"required,email"`
	StoreItemID string `json:"storeItemId" binding:"required"`
}

type verifyPaymentRequest struct {
	Reference string `json:"reference" binding:"required"`
}

// InitializePayment starts a charge for a store item. The amount is passed to
// the provider unmodified; clients and the provider both speak minor units.
func (h *Handler) InitializePayment(c *gin.Context) {
	var req initializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	ctx := c.Request.Context()

	item, err := h.store.GetStoreItem(ctx, req.StoreItemID)
	if err != nil {
		log.Printf("InitializePayment store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to initialize payment"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Store item not found"})
		return
	}

	resp, err := h.payments.Initialize(ctx, paystack.InitializeRequest{
		Amount: req.Amount,
		Email:  req.Email,
		Metadata: map[string]string{
			"storeItemId": item.ID,
			"itemTitle":   item.Title,
		},
	})
	if err != nil {
		log.Printf("InitializePayment gateway error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to initialize payment"})
		return
	}
	if !resp.Status {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payment initialization failed", "error": resp.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            true,
		"authorization_url": resp.Data.AuthorizationURL,
		"access_code":       resp.Data.AccessCode,
		"reference":         resp.Data.Reference,
	})
}

// VerifyPayment relays the provider's verification result. No local record of
// the transaction is kept.
func (h *Handler) VerifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payment reference is required"})
		return
	}

	resp, err := h.payments.Verify(c.Request.Context(), req.Reference)
	if err != nil {
		log.Printf("VerifyPayment gateway error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify payment"})
		return
	}

	if !resp.Status || resp.Data.Status != "success" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Payment verification failed",
			"status":  false,
			"data":    resp.Data,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"data": gin.H{
			"reference": resp.Data.Reference,
			"amount":    resp.Data.Amount, // minor units, relayed as-is
			"status":    resp.Data.Status,
			"metadata":  resp.Data.Metadata,
		},
	})
}
