package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/models"
)

// CreateContact records a contact form submission. There is no read endpoint;
// submissions are write-only from the API's perspective.
func (h *Handler) CreateContact(c *gin.Context) {
	var data models.InsertContact
	if !bindJSON(c, &data, "Invalid contact data") {
		return
	}

	contact, err := h.store.CreateContact(c.Request.Context(), data)
	if err != nil {
		log.Printf("CreateContact error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit contact form"})
		return
	}

	c.JSON(http.StatusCreated, contact)
}
