package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"webland/internal/models"
	"webland/internal/store"
	tickerScheduler "webland/pkg/integrations/scheduler"
	"webland/pkg/types/prices"
	"webland/pkg/types/pubsub"
	"webland/pkg/types/scheduler"

	"github.com/pkg/errors"
)

var ErrInvalidWatchlistRefreshConfig = errors.New("invalid watchlist refresh service config")

// WatchlistRefreshService keeps the watchlist's quotes current. Every
// interval it fetches market data for the tracked coins, merges it into
// the stored entries, publishes the refreshed snapshot, and hands the
// quotes to the alert service.
type WatchlistRefreshService struct {
	ctx       context.Context
	logger    *slog.Logger
	watchlist *store.Collection[models.WatchlistEntry]
	source    prices.Source
	publisher pubsub.Publisher
	alerts    *AlertService
	scheduler scheduler.Scheduler
	interval  time.Duration
}

type WatchlistRefreshOption func(*WatchlistRefreshService)

func WithWatchlistRefreshContext(ctx context.Context) WatchlistRefreshOption {
	return func(s *WatchlistRefreshService) {
		s.ctx = ctx
	}
}

func WithWatchlistRefreshLogger(l *slog.Logger) WatchlistRefreshOption {
	return func(s *WatchlistRefreshService) {
		s.logger = l
	}
}

func WithWatchlistRefreshCollection(c *store.Collection[models.WatchlistEntry]) WatchlistRefreshOption {
	return func(s *WatchlistRefreshService) {
		s.watchlist = c
	}
}

func WithWatchlistRefreshSource(src prices.Source) WatchlistRefreshOption {
	return func(s *WatchlistRefreshService) {
		s.source = src
	}
}

func WithWatchlistRefreshPublisher(p pubsub.Publisher) WatchlistRefreshOption {
	return func(s *WatchlistRefreshService) {
		s.publisher = p
	}
}

func WithWatchlistRefreshAlerts(a *AlertService) WatchlistRefreshOption {
	return func(s *WatchlistRefreshService) {
		s.alerts = a
	}
}

func WithWatchlistRefreshInterval(d time.Duration) WatchlistRefreshOption {
	return func(s *WatchlistRefreshService) {
		s.interval = d
	}
}

func (s *WatchlistRefreshService) IsValid() error {
	switch {
	case s.ctx == nil:
		return errors.Wrap(ErrInvalidWatchlistRefreshConfig, "ctx cannot be nil")
	case s.logger == nil:
		return errors.Wrap(ErrInvalidWatchlistRefreshConfig, "logger cannot be nil")
	case s.watchlist == nil:
		return errors.Wrap(ErrInvalidWatchlistRefreshConfig, "watchlist collection cannot be nil")
	case s.source == nil:
		return errors.Wrap(ErrInvalidWatchlistRefreshConfig, "price source cannot be nil")
	case s.publisher == nil:
		return errors.Wrap(ErrInvalidWatchlistRefreshConfig, "publisher cannot be nil")
	case s.alerts == nil:
		return errors.Wrap(ErrInvalidWatchlistRefreshConfig, "alert service cannot be nil")
	default:
		return nil
	}
}

func NewWatchlistRefreshService(opts ...WatchlistRefreshOption) (*WatchlistRefreshService, error) {
	s := &WatchlistRefreshService{
		interval: scheduler.IntervalRefresh,
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.IsValid(); err != nil {
		return nil, err
	}

	sched, err := tickerScheduler.New(
		tickerScheduler.WithContext(s.ctx),
		tickerScheduler.WithLogger(s.logger),
		tickerScheduler.WithInterval(s.interval),
		tickerScheduler.WithHandler(s.tick),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scheduler")
	}
	s.scheduler = sched

	return s, nil
}

func (s *WatchlistRefreshService) Start() error {
	if err := s.tick(); err != nil {
		s.logger.Error("initial watchlist refresh failed", "error", err)
	}

	return s.scheduler.Start()
}

func (s *WatchlistRefreshService) Stop() {
	s.scheduler.Stop()
}

// Refresh runs one refresh cycle immediately, outside the schedule.
// The per-item refresh endpoint goes through here.
func (s *WatchlistRefreshService) Refresh() error {
	return s.tick()
}

func (s *WatchlistRefreshService) tick() error {
	tracked := s.watchlist.Load()
	if len(tracked) == 0 {
		return nil
	}

	ids := make([]string, len(tracked))
	for i, entry := range tracked {
		ids[i] = entry.CoinID
	}

	quotes, err := s.source.MarketDataBatch(s.ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to fetch watchlist quotes")
	}

	// The fetch can take seconds, so the merge re-reads the list under
	// the collection's lock: entries added or removed in the meantime
	// stay added or removed, and only entries with a quote change.
	now := time.Now()
	priceMap := make(map[string]float64, len(quotes))
	var snapshot []models.WatchlistEntry
	err = s.watchlist.Mutate(func(entries []models.WatchlistEntry) []models.WatchlistEntry {
		for i := range entries {
			quote, ok := quotes[entries[i].CoinID]
			if !ok {
				continue
			}
			entries[i].Price = quote.Price
			entries[i].ChangePct24h = quote.ChangePct24h
			entries[i].Simulated = quote.Simulated
			entries[i].LastUpdated = now
			priceMap[entries[i].CoinID] = quote.Price
		}
		snapshot = entries
		return entries
	})
	if err != nil {
		return errors.Wrap(err, "failed to persist refreshed watchlist")
	}

	if err := s.publish(snapshot); err != nil {
		s.logger.Error("failed to publish watchlist snapshot", "error", err)
	}

	s.alerts.Evaluate(priceMap)

	s.logger.Debug("watchlist refreshed", "coins", len(snapshot))
	return nil
}

func (s *WatchlistRefreshService) publish(entries []models.WatchlistEntry) error {
	snapshot := struct {
		Type  string                  `json:"type"`
		Items []models.WatchlistEntry `json:"items"`
	}{Type: "watchlist", Items: entries}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to marshal watchlist snapshot")
	}
	return s.publisher.Publish(data)
}
