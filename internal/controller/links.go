package controller

import (
	"net/http"

	"webland/internal/models"
	"webland/pkg/sanitize"
	"webland/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type linkRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

// ListLinks godoc
// @Summary List crypto links
// @Tags crypto
// @Produce json
// @Success 200 {array} models.Link
// @Router /api/crypto/links [get]
func (c *Controller) ListLinks(ctx *gin.Context) {
	links := c.collections.Links.Load()
	if links == nil {
		links = []models.Link{}
	}
	ctx.JSON(http.StatusOK, links)
}

// CreateLink godoc
// @Summary Save a crypto link
// @Tags crypto
// @Accept json
// @Produce json
// @Param link body linkRequest true "Link data"
// @Success 201 {object} models.Link
// @Failure 400 {object} APIError
// @Router /api/crypto/links [post]
func (c *Controller) CreateLink(ctx *gin.Context) {
	var req linkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}

	title := sanitize.Text(req.Title)
	if title == "" {
		badRequest(ctx, "link title cannot be empty")
		return
	}
	if !validPageURL(req.URL) {
		badRequest(ctx, "invalid link url")
		return
	}

	link := models.Link{
		ID:      uuid.NewString(),
		Title:   title,
		URL:     req.URL,
		Favicon: utils.FaviconURL(req.URL),
	}
	if err := c.collections.Links.Add(link); err != nil {
		internalError(ctx, "failed to save link")
		return
	}
	ctx.JSON(http.StatusCreated, link)
}

// DeleteLink godoc
// @Summary Delete a crypto link
// @Tags crypto
// @Param id path string true "Link ID"
// @Success 204
// @Router /api/crypto/links/{id} [delete]
func (c *Controller) DeleteLink(ctx *gin.Context) {
	if err := c.collections.Links.Remove(ctx.Param("id")); err != nil {
		internalError(ctx, "failed to delete link")
		return
	}
	ctx.Status(http.StatusNoContent)
}
