package routes

import (
	"net/http"
	"time"

	"homematch/handlers"
	"homematch/middleware"
	"homematch/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAssistantRoutes registers the conversational assistant endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.POST("/chat", hb.ChatHandler)
		api.GET("/session/:sessionID/more", hb.MoreResultsHandler)
		api.DELETE("/session/:sessionID", hb.ResetSessionHandler)
	}
}

// RegisterListingRoutes registers the listing browse endpoints plus the
// admin-guarded mutation endpoints.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		api.GET("", hb.GetListingsHandler)
		api.GET("/:id", hb.GetListingByIDHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.POST("", hb.CreateListingHandler)
		admin.DELETE("/:id", hb.DeleteListingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAssistantRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterHealthRoute(r)
}
