package controller

import (
	"net/http"

	"webland/internal/models"

	"github.com/gin-gonic/gin"
)

type translateRequest struct {
	Text   string `json:"text" binding:"required"`
	Source string `json:"source" binding:"required"`
	Target string `json:"target" binding:"required"`
}

// Translate godoc
// @Summary Translate text
// @Description Translates through the configured endpoint, or returns a labeled sample translation without one. The language pair is remembered as the panel's default.
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateRequest true "Text and language pair"
// @Success 200 {object} translate.Result
// @Failure 400 {object} APIError
// @Router /api/translate [post]
func (c *Controller) Translate(ctx *gin.Context) {
	var req translateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}

	result, err := c.translate.Translate(ctx.Request.Context(), req.Text, req.Source, req.Target)
	if err != nil {
		badRequest(ctx, err.Error())
		return
	}

	if err := c.settings.Set(models.KeyLastTranslateSource, req.Source); err != nil {
		c.logger.Error("failed to persist translate source", "error", err)
	}
	if err := c.settings.Set(models.KeyLastTranslateTarget, req.Target); err != nil {
		c.logger.Error("failed to persist translate target", "error", err)
	}

	ctx.JSON(http.StatusOK, result)
}
