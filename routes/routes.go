package routes

import (
	"net/http"
	"time"

	"tripflow/handlers"
	"tripflow/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTripRoutes registers the planning endpoints.
func RegisterTripRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/trips")
	{
		api.POST("/plan", hb.Trip.PlanTrip)
		api.POST("/plan/async", hb.Trip.PlanTripAsync)
		api.GET("", hb.Trip.ListPlans)
		api.GET("/:id", hb.Trip.GetPlan)
	}
}

// RegisterGeoRoutes registers the map passthrough endpoints.
func RegisterGeoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/geo")
	{
		api.GET("/directions", hb.Geo.GetDirections)
		api.GET("/geocode", hb.Geo.Geocode)
		api.GET("/weather", hb.Geo.GetWeather)
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

	RegisterTripRoutes(r, hb)
	RegisterGeoRoutes(r, hb)
	RegisterHealthRoute(r)
}
