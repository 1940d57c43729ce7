package controller

import (
	"net/http"
	"strings"
	"time"

	"webland/internal/models"
	"webland/pkg/sanitize"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type watchlistAddRequest struct {
	Query string `json:"query" binding:"required"`
}

// SearchCoins godoc
// @Summary Search coins
// @Tags crypto
// @Produce json
// @Param query query string true "Name or symbol"
// @Success 200 {array} prices.Coin
// @Failure 400 {object} APIError
// @Router /api/crypto/search [get]
func (c *Controller) SearchCoins(ctx *gin.Context) {
	query := strings.TrimSpace(ctx.Query("query"))
	if query == "" {
		badRequest(ctx, "query is required")
		return
	}

	coins, err := c.prices.Search(ctx.Request.Context(), query)
	if err != nil {
		internalError(ctx, "coin search failed")
		return
	}
	ctx.JSON(http.StatusOK, coins)
}

// ListWatchlist godoc
// @Summary List watched coins
// @Tags crypto
// @Produce json
// @Success 200 {array} models.WatchlistEntry
// @Router /api/crypto/watchlist [get]
func (c *Controller) ListWatchlist(ctx *gin.Context) {
	entries := c.collections.Watchlist.Load()
	if entries == nil {
		entries = []models.WatchlistEntry{}
	}
	ctx.JSON(http.StatusOK, entries)
}

// AddWatchlistEntry godoc
// @Summary Watch a coin
// @Description Resolves the query against the coin search and tracks the first hit. A coin already watched is rejected.
// @Tags crypto
// @Accept json
// @Produce json
// @Param request body watchlistAddRequest true "Search query"
// @Success 201 {object} models.WatchlistEntry
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Failure 409 {object} APIError
// @Router /api/crypto/watchlist [post]
func (c *Controller) AddWatchlistEntry(ctx *gin.Context) {
	var req watchlistAddRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}

	query := sanitize.Text(req.Query)
	if query == "" {
		badRequest(ctx, "query cannot be empty")
		return
	}

	coins, err := c.prices.Search(ctx.Request.Context(), query)
	if err != nil {
		internalError(ctx, "coin search failed")
		return
	}
	if len(coins) == 0 {
		notFound(ctx, "no coin matches the query")
		return
	}
	coin := coins[0]

	if c.collections.Watchlist.Contains(func(e models.WatchlistEntry) bool { return e.CoinID == coin.ID }) {
		conflict(ctx, "coin already watched")
		return
	}

	entry := models.WatchlistEntry{
		ID:     uuid.NewString(),
		CoinID: coin.ID,
		Symbol: coin.Symbol,
		Name:   coin.Name,
		Image:  coin.Image,
	}

	if quote, err := c.prices.MarketData(ctx.Request.Context(), coin.ID); err == nil {
		entry.Price = quote.Price
		entry.ChangePct24h = quote.ChangePct24h
		entry.Simulated = quote.Simulated
		entry.LastUpdated = time.Now()
	}

	if err := c.collections.Watchlist.Add(entry); err != nil {
		internalError(ctx, "failed to save watchlist entry")
		return
	}
	ctx.JSON(http.StatusCreated, entry)
}

// RemoveWatchlistEntry godoc
// @Summary Stop watching a coin
// @Tags crypto
// @Param id path string true "Entry ID"
// @Success 204
// @Router /api/crypto/watchlist/{id} [delete]
func (c *Controller) RemoveWatchlistEntry(ctx *gin.Context) {
	if err := c.collections.Watchlist.Remove(ctx.Param("id")); err != nil {
		internalError(ctx, "failed to remove watchlist entry")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// RefreshWatchlist godoc
// @Summary Refresh watchlist quotes now
// @Description Runs one refresh cycle outside the schedule.
// @Tags crypto
// @Produce json
// @Success 200 {array} models.WatchlistEntry
// @Failure 503 {object} APIError
// @Router /api/crypto/watchlist/refresh [post]
func (c *Controller) RefreshWatchlist(ctx *gin.Context) {
	if c.watchlistRefresh == nil {
		serviceUnavailable(ctx, "refresh service not available")
		return
	}
	if err := c.watchlistRefresh.Refresh(); err != nil {
		internalError(ctx, "watchlist refresh failed")
		return
	}
	c.ListWatchlist(ctx)
}
