package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/models"
)

func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.store.GetComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("ListComments error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// CreateComment attaches a comment to the post named in the URL path. The
// postId in the body, if any, is ignored.
func (h *Handler) CreateComment(c *gin.Context) {
	var data models.InsertComment
	if !bindJSON(c, &data, "Invalid comment data") {
		return
	}
	data.PostID = c.Param("id")

	comment, err := h.store.CreateComment(c.Request.Context(), data)
	if err != nil {
		log.Printf("CreateComment error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}
