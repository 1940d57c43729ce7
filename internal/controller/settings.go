package controller

import (
	"net/http"

	"webland/internal/models"

	"github.com/gin-gonic/gin"
)

type settingValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// GetSetting godoc
// @Summary Read a panel setting
// @Description Scalar settings (theme, active feature, last-used inputs). Only whitelisted keys are served.
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} settingValue
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Router /api/settings/{key} [get]
func (c *Controller) GetSetting(ctx *gin.Context) {
	key := ctx.Param("key")
	if !models.SettingsKeys[key] {
		badRequest(ctx, "unknown setting")
		return
	}

	value, ok, err := c.settings.Get(key)
	if err != nil {
		internalError(ctx, "failed to read setting")
		return
	}
	if !ok {
		notFound(ctx, "setting not set")
		return
	}
	ctx.JSON(http.StatusOK, settingValue{Key: key, Value: value})
}

// PutSetting godoc
// @Summary Write a panel setting
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param value body settingValue true "New value"
// @Success 200 {object} settingValue
// @Failure 400 {object} APIError
// @Router /api/settings/{key} [put]
func (c *Controller) PutSetting(ctx *gin.Context) {
	key := ctx.Param("key")
	if !models.SettingsKeys[key] {
		badRequest(ctx, "unknown setting")
		return
	}

	var body settingValue
	if err := ctx.ShouldBindJSON(&body); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}

	if err := c.settings.Set(key, body.Value); err != nil {
		internalError(ctx, "failed to write setting")
		return
	}
	ctx.JSON(http.StatusOK, settingValue{Key: key, Value: body.Value})
}
