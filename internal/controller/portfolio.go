package controller

import (
	"net/http"
	"time"

	"webland/internal/models"
	"webland/internal/store"
	"webland/pkg/sanitize"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type positionCreateRequest struct {
	CoinID   string     `json:"coin_id" binding:"required"`
	CoinName string     `json:"coin_name"`
	Amount   float64    `json:"amount" binding:"required,gt=0"`
	BuyPrice float64    `json:"buy_price" binding:"required,gt=0"`
	BuyDate  *time.Time `json:"buy_date"`
	Notes    string     `json:"notes"`
}

type positionUpdateRequest struct {
	Amount   *float64   `json:"amount"`
	BuyPrice *float64   `json:"buy_price"`
	BuyDate  *time.Time `json:"buy_date"`
	Notes    *string    `json:"notes"`
}

// positionView is a position plus its derived valuation. The valuation
// is never persisted; it is recomputed from the cached quote on every
// read.
type positionView struct {
	models.PortfolioPosition
	models.Valuation
}

func viewOf(position models.PortfolioPosition) positionView {
	return positionView{
		PortfolioPosition: position,
		Valuation:         position.Valuation(position.CurrentPrice),
	}
}

// ListPositions godoc
// @Summary List portfolio positions with valuations
// @Tags crypto
// @Produce json
// @Success 200 {array} positionView
// @Router /api/crypto/portfolio [get]
func (c *Controller) ListPositions(ctx *gin.Context) {
	positions := c.collections.Portfolio.Load()
	views := make([]positionView, len(positions))
	for i, position := range positions {
		views[i] = viewOf(position)
	}
	ctx.JSON(http.StatusOK, views)
}

// CreatePosition godoc
// @Summary Add a portfolio position
// @Tags crypto
// @Accept json
// @Produce json
// @Param position body positionCreateRequest true "Position data"
// @Success 201 {object} positionView
// @Failure 400 {object} APIError
// @Router /api/crypto/portfolio [post]
func (c *Controller) CreatePosition(ctx *gin.Context) {
	var req positionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}

	buyDate := time.Now()
	if req.BuyDate != nil {
		buyDate = *req.BuyDate
	}

	position := models.PortfolioPosition{
		ID:       uuid.NewString(),
		CoinID:   sanitize.Text(req.CoinID),
		CoinName: sanitize.Text(req.CoinName),
		Amount:   req.Amount,
		BuyPrice: req.BuyPrice,
		BuyDate:  buyDate,
		Notes:    sanitize.Text(req.Notes),
	}
	if position.CoinID == "" {
		badRequest(ctx, "coin id cannot be empty")
		return
	}

	// Seed the cached quote so the valuation is meaningful before the
	// first refresh cycle.
	if quote, err := c.prices.MarketData(ctx.Request.Context(), position.CoinID); err == nil {
		position.CurrentPrice = quote.Price
		position.Simulated = quote.Simulated
		position.LastUpdated = time.Now()
	}

	if err := c.collections.Portfolio.Add(position); err != nil {
		internalError(ctx, "failed to save position")
		return
	}
	ctx.JSON(http.StatusCreated, viewOf(position))
}

// UpdatePosition godoc
// @Summary Edit a portfolio position
// @Tags crypto
// @Accept json
// @Produce json
// @Param id path string true "Position ID"
// @Param position body positionUpdateRequest true "Fields to change"
// @Success 200 {object} positionView
// @Failure 400 {object} APIError
// @Failure 404 {object} APIError
// @Router /api/crypto/portfolio/{id} [put]
func (c *Controller) UpdatePosition(ctx *gin.Context) {
	var req positionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}
	if (req.Amount != nil && *req.Amount <= 0) || (req.BuyPrice != nil && *req.BuyPrice <= 0) {
		badRequest(ctx, "amount and buy price must be positive")
		return
	}

	id := ctx.Param("id")
	err := c.collections.Portfolio.Update(id, func(position *models.PortfolioPosition) {
		if req.Amount != nil {
			position.Amount = *req.Amount
		}
		if req.BuyPrice != nil {
			position.BuyPrice = *req.BuyPrice
		}
		if req.BuyDate != nil {
			position.BuyDate = *req.BuyDate
		}
		if req.Notes != nil {
			position.Notes = sanitize.Text(*req.Notes)
		}
	})
	if errors.Is(err, store.ErrNotFound) {
		notFound(ctx, "position not found")
		return
	}
	if err != nil {
		internalError(ctx, "failed to update position")
		return
	}

	position, _ := c.collections.Portfolio.Get(id)
	ctx.JSON(http.StatusOK, viewOf(position))
}

// DeletePosition godoc
// @Summary Delete a portfolio position
// @Tags crypto
// @Param id path string true "Position ID"
// @Success 204
// @Router /api/crypto/portfolio/{id} [delete]
func (c *Controller) DeletePosition(ctx *gin.Context) {
	if err := c.collections.Portfolio.Remove(ctx.Param("id")); err != nil {
		internalError(ctx, "failed to delete position")
		return
	}
	ctx.Status(http.StatusNoContent)
}

type portfolioSummary struct {
	TotalValue float64 `json:"total_value"`
	TotalCost  float64 `json:"total_cost"`
	Profit     float64 `json:"profit"`
	ProfitPct  float64 `json:"profit_percentage"`
	Positions  int     `json:"positions"`
}

// PortfolioSummary godoc
// @Summary Portfolio totals
// @Tags crypto
// @Produce json
// @Success 200 {object} portfolioSummary
// @Router /api/crypto/portfolio/summary [get]
func (c *Controller) PortfolioSummary(ctx *gin.Context) {
	positions := c.collections.Portfolio.Load()

	var summary portfolioSummary
	summary.Positions = len(positions)
	for _, position := range positions {
		valuation := position.Valuation(position.CurrentPrice)
		summary.TotalValue += valuation.TotalValue
		summary.TotalCost += valuation.Cost
	}
	summary.Profit = summary.TotalValue - summary.TotalCost
	if summary.TotalCost != 0 {
		summary.ProfitPct = summary.Profit / summary.TotalCost * 100
	}

	ctx.JSON(http.StatusOK, summary)
}

type allocationSlice struct {
	CoinID   string  `json:"coin_id"`
	CoinName string  `json:"coin_name"`
	Value    float64 `json:"value"`
	SharePct float64 `json:"share_percentage"`
}

// PortfolioAllocation godoc
// @Summary Value share by coin
// @Description Groups positions by coin, for the panel's distribution chart.
// @Tags crypto
// @Produce json
// @Success 200 {array} allocationSlice
// @Router /api/crypto/portfolio/allocation [get]
func (c *Controller) PortfolioAllocation(ctx *gin.Context) {
	positions := c.collections.Portfolio.Load()

	byCoin := make(map[string]*allocationSlice)
	order := make([]string, 0)
	var total float64
	for _, position := range positions {
		value := position.Valuation(position.CurrentPrice).TotalValue
		total += value
		if slice, ok := byCoin[position.CoinID]; ok {
			slice.Value += value
			continue
		}
		byCoin[position.CoinID] = &allocationSlice{
			CoinID:   position.CoinID,
			CoinName: position.CoinName,
			Value:    value,
		}
		order = append(order, position.CoinID)
	}

	slices := make([]allocationSlice, 0, len(order))
	for _, coinID := range order {
		slice := *byCoin[coinID]
		if total != 0 {
			slice.SharePct = slice.Value / total * 100
		}
		slices = append(slices, slice)
	}
	ctx.JSON(http.StatusOK, slices)
}

// RefreshPortfolio godoc
// @Summary Refresh portfolio quotes now
// @Tags crypto
// @Produce json
// @Success 200 {array} positionView
// @Failure 503 {object} APIError
// @Router /api/crypto/portfolio/refresh [post]
func (c *Controller) RefreshPortfolio(ctx *gin.Context) {
	if c.portfolioRefresh == nil {
		serviceUnavailable(ctx, "refresh service not available")
		return
	}
	if err := c.portfolioRefresh.Refresh(); err != nil {
		internalError(ctx, "portfolio refresh failed")
		return
	}
	c.ListPositions(ctx)
}
