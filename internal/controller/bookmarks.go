package controller

import (
	"net/http"
	"net/url"

	"webland/internal/models"
	"webland/pkg/sanitize"
	"webland/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type bookmarkRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

func validPageURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ListBookmarks godoc
// @Summary List bookmarks
// @Tags bookmarks
// @Produce json
// @Success 200 {array} models.Bookmark
// @Router /api/bookmarks [get]
func (c *Controller) ListBookmarks(ctx *gin.Context) {
	bookmarks := c.collections.Bookmarks.Load()
	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}
	ctx.JSON(http.StatusOK, bookmarks)
}

// CreateBookmark godoc
// @Summary Create a bookmark
// @Description Saves a page. A URL already bookmarked is rejected and the collection stays unchanged.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param bookmark body bookmarkRequest true "Bookmark data"
// @Success 201 {object} models.Bookmark
// @Failure 400 {object} APIError
// @Failure 409 {object} APIError
// @Router /api/bookmarks [post]
func (c *Controller) CreateBookmark(ctx *gin.Context) {
	var req bookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}

	title := sanitize.Text(req.Title)
	if title == "" {
		badRequest(ctx, "bookmark title cannot be empty")
		return
	}
	if !validPageURL(req.URL) {
		badRequest(ctx, "invalid bookmark url")
		return
	}

	if c.collections.Bookmarks.Contains(func(b models.Bookmark) bool { return b.URL == req.URL }) {
		conflict(ctx, "url already bookmarked")
		return
	}

	bookmark := models.Bookmark{
		ID:      uuid.NewString(),
		Title:   title,
		URL:     req.URL,
		Favicon: utils.FaviconURL(req.URL),
	}
	if err := c.collections.Bookmarks.Add(bookmark); err != nil {
		internalError(ctx, "failed to save bookmark")
		return
	}
	ctx.JSON(http.StatusCreated, bookmark)
}

// DeleteBookmark godoc
// @Summary Delete a bookmark
// @Tags bookmarks
// @Param id path string true "Bookmark ID"
// @Success 204
// @Router /api/bookmarks/{id} [delete]
func (c *Controller) DeleteBookmark(ctx *gin.Context) {
	if err := c.collections.Bookmarks.Remove(ctx.Param("id")); err != nil {
		internalError(ctx, "failed to delete bookmark")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ActiveTab godoc
// @Summary Current browser tab
// @Description Returns the page focused in the host browser, used to prefill the bookmark and link forms.
// @Tags tabs
// @Produce json
// @Success 200 {object} tabs.Tab
// @Failure 503 {object} APIError
// @Router /api/tabs/active [get]
func (c *Controller) ActiveTab(ctx *gin.Context) {
	tab, err := c.tabs.ActiveTab(ctx.Request.Context())
	if err != nil {
		serviceUnavailable(ctx, "no active tab available")
		return
	}
	ctx.JSON(http.StatusOK, tab)
}
