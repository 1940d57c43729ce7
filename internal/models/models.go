package models

import "time"

// Collection keys in the key-value backend. The names predate this
// backend (they were the extension's localStorage keys) and must stay
// stable so existing panels keep their data.
const (
	KeyNotes        = "weblandNotes"
	KeyBookmarks    = "weblandBookmarks"
	KeyTodos        = "weblandTodos"
	KeyWatchlist    = "weblandCryptoWatchlist"
	KeyCryptoNotes  = "weblandCryptoNotes"
	KeyCryptoLinks  = "weblandCryptoLinks"
	KeyCalculations = "weblandCryptoCalculations"
	KeyPortfolio    = "weblandCryptoPortfolio"
	KeyPriceAlerts  = "weblandCryptoPriceAlerts"
)

// Scalar settings keys, stored as raw strings next to the collections.
const (
	KeyTheme               = "theme"
	KeyActiveFeature       = "activeFeature"
	KeyActiveCryptoTab     = "activeCryptoTab"
	KeyLastWeatherLocation = "lastWeatherLocation"
	KeyLastTranslateSource = "lastTranslateSource"
	KeyLastTranslateTarget = "lastTranslateTarget"
)

// SettingsKeys is the whitelist the settings endpoints accept.
var SettingsKeys = map[string]bool{
	KeyTheme:               true,
	KeyActiveFeature:       true,
	KeyActiveCryptoTab:     true,
	KeyLastWeatherLocation: true,
	KeyLastTranslateSource: true,
	KeyLastTranslateTarget: true,
}

type Note struct {
	ID   string    `json:"id"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

func (n Note) RecordID() string { return n.ID }

type Bookmark struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Favicon string `json:"favicon,omitempty"`
}

func (b Bookmark) RecordID() string { return b.ID }

type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Date      time.Time `json:"date"`
}

func (t Todo) RecordID() string { return t.ID }

type Link struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Favicon string `json:"favicon,omitempty"`
}

func (l Link) RecordID() string { return l.ID }

// WatchlistEntry is one tracked coin. CoinID is the price source's
// identifier and is unique within the watchlist; ID is the record id.
type WatchlistEntry struct {
	ID           string    `json:"id"`
	CoinID       string    `json:"coin_id"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	Image        string    `json:"image,omitempty"`
	Price        float64   `json:"price"`
	ChangePct24h float64   `json:"change_pct_24h"`
	Simulated    bool      `json:"simulated"`
	LastUpdated  time.Time `json:"last_updated"`
}

func (w WatchlistEntry) RecordID() string { return w.ID }

type Calculation struct {
	ID           string    `json:"id"`
	Amount       float64   `json:"amount"`
	CryptoSymbol string    `json:"crypto_symbol"`
	CryptoName   string    `json:"crypto_name"`
	Price        float64   `json:"price"`
	FiatCurrency string    `json:"fiat_currency"`
	Total        float64   `json:"total"`
	Date         time.Time `json:"date"`
}

func (c Calculation) RecordID() string { return c.ID }

// PortfolioPosition is one holding. CurrentPrice is a cached quote; the
// valuation numbers are always derived from it, never persisted.
type PortfolioPosition struct {
	ID           string    `json:"id"`
	CoinID       string    `json:"coin_id"`
	CoinName     string    `json:"coin_name"`
	Amount       float64   `json:"amount"`
	BuyPrice     float64   `json:"buy_price"`
	BuyDate      time.Time `json:"buy_date"`
	Notes        string    `json:"notes,omitempty"`
	CurrentPrice float64   `json:"current_price"`
	Simulated    bool      `json:"simulated"`
	LastUpdated  time.Time `json:"last_updated"`
}

func (p PortfolioPosition) RecordID() string { return p.ID }

type Valuation struct {
	TotalValue float64 `json:"total_value"`
	Cost       float64 `json:"cost"`
	Profit     float64 `json:"profit"`
	ProfitPct  float64 `json:"profit_percentage"`
}

// Valuation recomputes the position's worth from amount, buy price and
// the given current price.
func (p PortfolioPosition) Valuation(currentPrice float64) Valuation {
	total := p.Amount * currentPrice
	cost := p.Amount * p.BuyPrice
	profit := total - cost

	var pct float64
	if cost != 0 {
		pct = profit / cost * 100
	}

	return Valuation{
		TotalValue: total,
		Cost:       cost,
		Profit:     profit,
		ProfitPct:  pct,
	}
}

// PriceAlert triggers once when the coin's price crosses TargetPrice
// relative to PreviousPrice (the price observed at rule creation), then
// is deleted.
type PriceAlert struct {
	ID            string    `json:"id"`
	CoinID        string    `json:"coin_id"`
	CoinName      string    `json:"coin_name"`
	CoinSymbol    string    `json:"coin_symbol"`
	TargetPrice   float64   `json:"target_price"`
	PreviousPrice float64   `json:"previous_price"`
	CreatedAt     time.Time `json:"created_at"`
}

func (a PriceAlert) RecordID() string { return a.ID }

// Crossed reports whether current sits on the far side of the target
// from the previously observed price. Touching the target counts; a
// previous price already at the target never fires.
func (a PriceAlert) Crossed(current float64) bool {
	return (a.PreviousPrice < a.TargetPrice && current >= a.TargetPrice) ||
		(a.PreviousPrice > a.TargetPrice && current <= a.TargetPrice)
}
