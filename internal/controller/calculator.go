package controller

import (
	"net/http"
	"strings"
	"time"

	"webland/internal/models"
	"webland/pkg/sanitize"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type calculateRequest struct {
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	CryptoSymbol string  `json:"crypto_symbol" binding:"required"`
	CryptoName   string  `json:"crypto_name"`
	FiatCurrency string  `json:"fiat_currency"`
}

type calculateResponse struct {
	Amount       float64 `json:"amount"`
	Price        float64 `json:"price"`
	CryptoSymbol string  `json:"crypto_symbol"`
	CryptoName   string  `json:"crypto_name"`
	FiatCurrency string  `json:"fiat_currency"`
	Total        float64 `json:"total"`
}

// fiatTotal computes amount * price in decimal arithmetic and rounds to
// cents, so float artifacts never reach the panel.
func fiatTotal(amount, price float64) float64 {
	total, _ := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(price)).
		Round(2).
		Float64()
	return total
}

func (r *calculateRequest) normalize() {
	r.CryptoSymbol = strings.ToLower(sanitize.Text(r.CryptoSymbol))
	r.CryptoName = sanitize.Text(r.CryptoName)
	if r.FiatCurrency == "" {
		r.FiatCurrency = "eur"
	}
	r.FiatCurrency = strings.ToLower(sanitize.Text(r.FiatCurrency))
}

// Calculate godoc
// @Summary Convert a crypto amount to fiat
// @Tags crypto
// @Accept json
// @Produce json
// @Param request body calculateRequest true "Amount, price and currency"
// @Success 200 {object} calculateResponse
// @Failure 400 {object} APIError
// @Router /api/crypto/calculator [post]
func (c *Controller) Calculate(ctx *gin.Context) {
	var req calculateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}
	req.normalize()

	ctx.JSON(http.StatusOK, calculateResponse{
		Amount:       req.Amount,
		Price:        req.Price,
		CryptoSymbol: req.CryptoSymbol,
		CryptoName:   req.CryptoName,
		FiatCurrency: req.FiatCurrency,
		Total:        fiatTotal(req.Amount, req.Price),
	})
}

// CalculatorQuote godoc
// @Summary Current price for the calculator's coin picker
// @Tags crypto
// @Produce json
// @Param coin query string true "Coin ID"
// @Success 200 {object} prices.Quote
// @Failure 400 {object} APIError
// @Router /api/crypto/calculator/quote [get]
func (c *Controller) CalculatorQuote(ctx *gin.Context) {
	coin := strings.TrimSpace(ctx.Query("coin"))
	if coin == "" {
		badRequest(ctx, "coin is required")
		return
	}

	quote, err := c.prices.MarketData(ctx.Request.Context(), coin)
	if err != nil {
		internalError(ctx, "failed to fetch quote")
		return
	}
	ctx.JSON(http.StatusOK, quote)
}

// ListCalculations godoc
// @Summary List saved calculations
// @Tags crypto
// @Produce json
// @Success 200 {array} models.Calculation
// @Router /api/crypto/calculations [get]
func (c *Controller) ListCalculations(ctx *gin.Context) {
	calculations := c.collections.Calculations.Load()
	if calculations == nil {
		calculations = []models.Calculation{}
	}
	ctx.JSON(http.StatusOK, calculations)
}

// SaveCalculation godoc
// @Summary Save a calculation
// @Description Recomputes the total server-side before persisting.
// @Tags crypto
// @Accept json
// @Produce json
// @Param request body calculateRequest true "Amount, price and currency"
// @Success 201 {object} models.Calculation
// @Failure 400 {object} APIError
// @Router /api/crypto/calculations [post]
func (c *Controller) SaveCalculation(ctx *gin.Context) {
	var req calculateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}
	req.normalize()

	calculation := models.Calculation{
		ID:           uuid.NewString(),
		Amount:       req.Amount,
		CryptoSymbol: req.CryptoSymbol,
		CryptoName:   req.CryptoName,
		Price:        req.Price,
		FiatCurrency: req.FiatCurrency,
		Total:        fiatTotal(req.Amount, req.Price),
		Date:         time.Now(),
	}
	if err := c.collections.Calculations.Add(calculation); err != nil {
		internalError(ctx, "failed to save calculation")
		return
	}
	ctx.JSON(http.StatusCreated, calculation)
}

// DeleteCalculation godoc
// @Summary Delete a saved calculation
// @Tags crypto
// @Param id path string true "Calculation ID"
// @Success 204
// @Router /api/crypto/calculations/{id} [delete]
func (c *Controller) DeleteCalculation(ctx *gin.Context) {
	if err := c.collections.Calculations.Remove(ctx.Param("id")); err != nil {
		internalError(ctx, "failed to delete calculation")
		return
	}
	ctx.Status(http.StatusNoContent)
}
