package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/models"
)

// ListPosts returns all posts newest first, optionally filtered by the
// category query parameter (case-insensitive).
func (h *Handler) ListPosts(c *gin.Context) {
	ctx := c.Request.Context()

	var posts []models.Post
	var err error
	if category := c.Query("category"); category != "" {
		posts, err = h.store.GetPostsByCategory(ctx, category)
	} else {
		posts, err = h.store.GetPosts(ctx)
	}
	if err != nil {
		log.Printf("ListPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) FeaturedPosts(c *gin.Context) {
	posts, err := h.store.GetFeaturedPosts(c.Request.Context())
	if err != nil {
		log.Printf("FeaturedPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch featured posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.store.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("GetPost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) CreatePost(c *gin.Context) {
	var data models.InsertPost
	if !bindJSON(c, &data, "Invalid post data") {
		return
	}
	data.SetDefaults()

	post, err := h.store.CreatePost(c.Request.Context(), data)
	if err != nil {
		log.Printf("CreatePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	var data models.UpdatePost
	if !bindJSON(c, &data, "Invalid post data") {
		return
	}

	post, err := h.store.UpdatePost(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		log.Printf("UpdatePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) DeletePost(c *gin.Context) {
	deleted, err := h.store.DeletePost(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("DeletePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete post"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
