package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListStoreItems(c *gin.Context) {
	items, err := h.store.GetStoreItems(c.Request.Context())
	if err != nil {
		log.Printf("ListStoreItems error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch store items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) FeaturedStoreItems(c *gin.Context) {
	items, err := h.store.GetFeaturedStoreItems(c.Request.Context())
	if err != nil {
		log.Printf("FeaturedStoreItems error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch featured store items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetStoreItem(c *gin.Context) {
	item, err := h.store.GetStoreItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("GetStoreItem error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch store item"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Store item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// Download redirects to an item's stored download reference.
func (h *Handler) Download(c *gin.Context) {
	item, err := h.store.GetStoreItem(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		log.Printf("Download error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Download failed"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
		return
	}
	if item.DownloadURL == "" {
		c.JSON(http.StatusNotFound, gin.H{"message": "Download not available"})
		return
	}

	c.Redirect(http.StatusFound, item.DownloadURL)
}
