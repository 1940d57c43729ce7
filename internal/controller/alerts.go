package controller

import (
	"net/http"
	"time"

	"webland/internal/models"
	"webland/pkg/sanitize"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type alertCreateRequest struct {
	CoinID      string  `json:"coin_id" binding:"required"`
	CoinName    string  `json:"coin_name"`
	CoinSymbol  string  `json:"coin_symbol"`
	TargetPrice float64 `json:"target_price" binding:"required,gt=0"`
}

// ListAlerts godoc
// @Summary List armed price alerts
// @Tags crypto
// @Produce json
// @Success 200 {array} models.PriceAlert
// @Router /api/crypto/alerts [get]
func (c *Controller) ListAlerts(ctx *gin.Context) {
	alerts := c.collections.Alerts.Load()
	if alerts == nil {
		alerts = []models.PriceAlert{}
	}
	ctx.JSON(http.StatusOK, alerts)
}

// CreateAlert godoc
// @Summary Arm a price alert
// @Description The current price is captured as the reference point; the rule fires once when the price crosses the target from that side, then is deleted. Creating a rule never fires it.
// @Tags crypto
// @Accept json
// @Produce json
// @Param alert body alertCreateRequest true "Coin and target price"
// @Success 201 {object} models.PriceAlert
// @Failure 400 {object} APIError
// @Router /api/crypto/alerts [post]
func (c *Controller) CreateAlert(ctx *gin.Context) {
	var req alertCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}

	coinID := sanitize.Text(req.CoinID)
	if coinID == "" {
		badRequest(ctx, "coin id cannot be empty")
		return
	}

	alert := models.PriceAlert{
		ID:          uuid.NewString(),
		CoinID:      coinID,
		CoinName:    sanitize.Text(req.CoinName),
		CoinSymbol:  sanitize.Text(req.CoinSymbol),
		TargetPrice: req.TargetPrice,
		CreatedAt:   time.Now(),
	}

	// Reference point: the watchlist's cached price when present,
	// otherwise a fresh quote.
	if entry, ok := c.collections.Watchlist.Find(func(e models.WatchlistEntry) bool { return e.CoinID == coinID }); ok && entry.Price > 0 {
		alert.PreviousPrice = entry.Price
		if alert.CoinName == "" {
			alert.CoinName = entry.Name
		}
		if alert.CoinSymbol == "" {
			alert.CoinSymbol = entry.Symbol
		}
	} else if quote, err := c.prices.MarketData(ctx.Request.Context(), coinID); err == nil {
		alert.PreviousPrice = quote.Price
	}

	if alert.PreviousPrice <= 0 {
		badRequest(ctx, "no reference price available for coin")
		return
	}

	if err := c.collections.Alerts.Add(alert); err != nil {
		internalError(ctx, "failed to save alert")
		return
	}
	ctx.JSON(http.StatusCreated, alert)
}

// DeleteAlert godoc
// @Summary Disarm a price alert
// @Tags crypto
// @Param id path string true "Alert ID"
// @Success 204
// @Router /api/crypto/alerts/{id} [delete]
func (c *Controller) DeleteAlert(ctx *gin.Context) {
	if err := c.collections.Alerts.Remove(ctx.Param("id")); err != nil {
		internalError(ctx, "failed to delete alert")
		return
	}
	ctx.Status(http.StatusNoContent)
}
