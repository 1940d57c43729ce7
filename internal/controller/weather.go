package controller

import (
	"net/http"
	"strings"

	"webland/internal/models"

	"github.com/gin-gonic/gin"
)

// Weather godoc
// @Summary Current weather for a location
// @Description Live data when an API key is configured, otherwise a simulated report. The queried location is remembered as the panel's default.
// @Tags weather
// @Produce json
// @Param location query string true "City name"
// @Success 200 {object} weather.Report
// @Failure 400 {object} APIError
// @Router /api/weather [get]
func (c *Controller) Weather(ctx *gin.Context) {
	location := strings.TrimSpace(ctx.Query("location"))
	if location == "" {
		badRequest(ctx, "location is required")
		return
	}

	report, err := c.weather.Current(ctx.Request.Context(), location)
	if err != nil {
		badRequest(ctx, "invalid location")
		return
	}

	if err := c.settings.Set(models.KeyLastWeatherLocation, location); err != nil {
		c.logger.Error("failed to persist last weather location", "error", err)
	}

	ctx.JSON(http.StatusOK, report)
}
