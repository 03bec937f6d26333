package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/models"
)

func (h *Handler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	var projects []models.Project
	var err error
	if category := c.Query("category"); category != "" {
		projects, err = h.store.GetProjectsByCategory(ctx, category)
	} else {
		projects, err = h.store.GetProjects(ctx)
	}
	if err != nil {
		log.Printf("ListProjects error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *Handler) FeaturedProjects(c *gin.Context) {
	projects, err := h.store.GetFeaturedProjects(c.Request.Context())
	if err != nil {
		log.Printf("FeaturedProjects error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch featured projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.store.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("GetProject error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch project"})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var data models.InsertProject
	if !bindJSON(c, &data, "Invalid project data") {
		return
	}
	data.SetDefaults()

	project, err := h.store.CreateProject(c.Request.Context(), data)
	if err != nil {
		log.Printf("CreateProject error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}
