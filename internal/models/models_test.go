package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPortfolioPosition_Valuation(t *testing.T) {
	pos := PortfolioPosition{Amount: 2, BuyPrice: 100}

	val := pos.Valuation(150)
	require.Equal(t, 300.0, val.TotalValue)
	require.Equal(t, 200.0, val.Cost)
	require.Equal(t, 100.0, val.Profit)
	require.Equal(t, 50.0, val.ProfitPct)
}

func TestPortfolioPosition_Valuation_Loss(t *testing.T) {
	pos := PortfolioPosition{Amount: 1, BuyPrice: 100}

	val := pos.Valuation(80)
	require.Equal(t, -20.0, val.Profit)
	require.Equal(t, -20.0, val.ProfitPct)
}

func TestPortfolioPosition_Valuation_ZeroCost(t *testing.T) {
	pos := PortfolioPosition{Amount: 0, BuyPrice: 100}

	val := pos.Valuation(150)
	require.Zero(t, val.TotalValue)
	require.Zero(t, val.ProfitPct)
}

func TestPriceAlert_Crossed(t *testing.T) {
	tests := []struct {
		name     string
		previous float64
		target   float64
		current  float64
		want     bool
	}{
		{"upward cross", 90, 100, 105, true},
		{"downward cross", 110, 100, 95, true},
		{"downward overshoot past target", 110, 100, 105, false},
		{"touches target from below", 90, 100, 100, true},
		{"no cross", 90, 100, 95, false},
		{"created at target never fires", 100, 100, 100, false},
		{"created at target, price moves", 100, 100, 120, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := PriceAlert{PreviousPrice: tt.previous, TargetPrice: tt.target}
			require.Equal(t, tt.want, alert.Crossed(tt.current))
		})
	}
}
