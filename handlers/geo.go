package handlers

import (
	"net/http"

	"tripflow/services/amap"
	"tripflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeoHandler exposes thin passthroughs to the map collaborator. Responses
// are the raw Amap JSON bodies; clients interpret them.
type GeoHandler struct {
	Amap   *amap.Client
	Logger *zap.Logger
}

func NewGeoHandler(client *amap.Client, logger *zap.Logger) *GeoHandler {
	return &GeoHandler{Amap: client, Logger: logger}
}

// GetDirections handles GET /api/geo/directions.
func (h *GeoHandler) GetDirections(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameters", "origin and destination are required")
		return
	}
	mode := c.DefaultQuery("mode", amap.RouteWalking)
	originCity := c.Query("originCity")
	destCity := c.Query("destinationCity")

	raw, err := h.Amap.DirectionByAddress(c.Request.Context(), origin, destination, originCity, destCity, mode)
	if err != nil {
		h.Logger.Error("GetDirections: route planning failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Route planning failed", "Please try again later")
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(raw))
}

// Geocode handles GET /api/geo/geocode.
func (h *GeoHandler) Geocode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter", "address is required")
		return
	}

	raw, err := h.Amap.Geocode(c.Request.Context(), address, c.Query("city"))
	if err != nil {
		h.Logger.Error("Geocode: request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Geocoding request failed", "Please try again later")
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(raw))
}

// GetWeather handles GET /api/geo/weather.
func (h *GeoHandler) GetWeather(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter", "city is required")
		return
	}

	raw, err := h.Amap.Weather(c.Request.Context(), city)
	if err != nil {
		h.Logger.Error("GetWeather: request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Weather request failed", "Please try again later")
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(raw))
}
