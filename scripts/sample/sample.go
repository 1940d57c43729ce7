package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

const baseURL = "http://localhost:8385/api"

type note struct {
	Text string `json:"text"`
}

type bookmark struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type watchlistAdd struct {
	Query string `json:"query"`
}

type position struct {
	CoinID   string  `json:"coin_id"`
	CoinName string  `json:"coin_name"`
	Amount   float64 `json:"amount"`
	BuyPrice float64 `json:"buy_price"`
	Notes    string  `json:"notes"`
}

type alert struct {
	CoinID      string  `json:"coin_id"`
	CoinName    string  `json:"coin_name"`
	CoinSymbol  string  `json:"coin_symbol"`
	TargetPrice float64 `json:"target_price"`
}

func main() {
	post("/notes", note{Text: "Review the quarterly budget"})
	post("/notes", note{Text: "Pick up the dry cleaning on Friday"})
	fmt.Println("Created 2 notes")

	post("/todos", note{Text: "Water the plants"})
	post("/todos", note{Text: "Renew the domain registration"})
	fmt.Println("Created 2 todos")

	post("/bookmarks", bookmark{Title: "Go Blog", URL: "https://go.dev/blog/"})
	post("/bookmarks", bookmark{Title: "Hacker News", URL: "https://news.ycombinator.com/"})
	fmt.Println("Created 2 bookmarks")

	post("/crypto/watchlist", watchlistAdd{Query: "bitcoin"})
	post("/crypto/watchlist", watchlistAdd{Query: "ethereum"})
	fmt.Println("Added 2 watchlist entries")

	post("/crypto/portfolio", position{
		CoinID:   "bitcoin",
		CoinName: "Bitcoin",
		Amount:   0.05,
		BuyPrice: 42000,
		Notes:    "DCA buy",
	})
	fmt.Println("Created 1 portfolio position")

	post("/crypto/alerts", alert{
		CoinID:      "bitcoin",
		CoinName:    "Bitcoin",
		CoinSymbol:  "btc",
		TargetPrice: 60000,
	})
	fmt.Println("Created 1 price alert")

	fmt.Println("Sample data created successfully!")
}

func post(path string, payload any) {
	body, _ := json.Marshal(payload)

	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Failed to POST %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("Failed to POST %s: status %d", path, resp.StatusCode)
	}
}
