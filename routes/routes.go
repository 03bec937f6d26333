package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/handlers"
	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/middleware"
)

// SetupRouter wires every API endpoint to the handler set. The handler carries
// its own storage and payment dependencies; nothing here is global.
func SetupRouter(h *handlers.Handler) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "Portfolio Backend Running",
			"service": "healthy",
		})
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	api := router.Group("/api")

	// One shared limiter for every mutating route; reads are unthrottled.
	limited := middleware.RateLimit(120, time.Minute)

	// Posts
	api.GET("/posts", h.ListPosts)
	api.GET("/posts/featured", h.FeaturedPosts)
	api.GET("/posts/:id", h.GetPost)
	api.POST("/posts", limited, h.CreatePost)
	api.PUT("/posts/:id", limited, h.UpdatePost)
	api.DELETE("/posts/:id", limited, h.DeletePost)

	// Comments, nested under their post
	api.GET("/posts/:id/comments", h.ListComments)
	api.POST("/posts/:id/comments", limited, h.CreateComment)

	// Projects
	api.GET("/projects", h.ListProjects)
	api.GET("/projects/featured", h.FeaturedProjects)
	api.GET("/projects/:id", h.GetProject)
	api.POST("/projects", limited, h.CreateProject)

	// Contact
	api.POST("/contact", limited, h.CreateContact)

	// Store
	api.GET("/store", h.ListStoreItems)
	api.GET("/store/featured", h.FeaturedStoreItems)
	api.GET("/store/:id", h.GetStoreItem)

	// Payments
	api.POST("/payments/initialize", limited, h.InitializePayment)
	api.POST("/payments/verify", limited, h.VerifyPayment)

	// Downloads
	api.GET("/downloads/:itemId", h.Download)

	// JSON 404 for unknown API routes
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(404, gin.H{
				"message": "Endpoint not found",
				"path":    c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
