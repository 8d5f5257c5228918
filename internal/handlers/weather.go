package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"smart_thermostat/internal/weather"

	"github.com/gin-gonic/gin"
)

const (
	errCoordsRequired = "lat and lon are required unless fallback=true"
	errCoordsInvalid  = "lat and lon must be numbers within range"
	errWeatherFailed  = "failed to fetch weather"
)

// weatherErrorStatus maps provider failures to HTTP status codes.
func weatherErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, weather.ErrInvalidCoordinates):
		return http.StatusBadRequest, errCoordsInvalid
	case errors.Is(err, weather.ErrNotConfigured):
		return http.StatusServiceUnavailable, weather.ErrNotConfigured.Error()
	case errors.Is(err, weather.ErrUnauthorized):
		return http.StatusUnauthorized, "Weather API key invalid"
	case errors.Is(err, weather.ErrRateLimited):
		return http.StatusTooManyRequests, weather.ErrRateLimited.Error()
	case errors.Is(err, weather.ErrTimeout):
		return http.StatusGatewayTimeout, weather.ErrTimeout.Error()
	case errors.Is(err, weather.ErrUnavailable):
		return http.StatusBadGateway, weather.ErrUnavailable.Error()
	default:
		return http.StatusInternalServerError, errWeatherFailed
	}
}

// @Summary      Current outdoor temperature
// @Description  Looks up the temperature at lat/lon, or returns sample data with fallback=true.
// @Tags         weather
// @Produce      json
// @Param        lat       query     number   false  "Latitude"
// @Param        lon       query     number   false  "Longitude"
// @Param        fallback  query     boolean  false  "Return sample data"
// @Success      200       {object}  map[string]interface{}  "temperature, location, fallback"
// @Failure      400       {object}  map[string]string
// @Failure      401       {object}  map[string]string
// @Failure      429       {object}  map[string]string
// @Failure      502       {object}  map[string]string
// @Failure      503       {object}  map[string]string
// @Failure      504       {object}  map[string]string
// @Router       /api/weather [get]
func (h *Handler) getWeather(c *gin.Context) {
	useFallback, _ := strconv.ParseBool(c.Query("fallback"))

	var at weather.Coordinates
	if !useFallback {
		latQ, lonQ := c.Query("lat"), c.Query("lon")
		if latQ == "" || lonQ == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errCoordsRequired})
			return
		}
		lat, errLat := strconv.ParseFloat(latQ, 64)
		lon, errLon := strconv.ParseFloat(lonQ, 64)
		if errLat != nil || errLon != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errCoordsInvalid})
			return
		}
		at = weather.Coordinates{Lat: lat, Lon: lon}
	}

	reading, err := h.services.Weather.Current(c.Request.Context(), at, useFallback)
	if err != nil {
		code, msg := weatherErrorStatus(err)
		if code >= http.StatusInternalServerError {
			h.log.Errorw("weather_lookup_failed", "err", err, "lat", at.Lat, "lon", at.Lon)
		} else {
			h.log.Infow("weather_lookup_rejected", "err", err, "lat", at.Lat, "lon", at.Lon)
		}
		c.JSON(code, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"temperature": reading.TemperatureC,
		"location":    reading.Location,
		"fallback":    reading.Fallback,
	})
}
