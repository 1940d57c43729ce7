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

var ErrInvalidPortfolioRefreshConfig = errors.New("invalid portfolio refresh service config")

// PortfolioRefreshService keeps each position's cached quote current so
// valuations are derived from a recent price. Refreshed snapshots go
// out on the same stream the watchlist publishes to.
type PortfolioRefreshService struct {
	ctx       context.Context
	logger    *slog.Logger
	portfolio *store.Collection[models.PortfolioPosition]
	source    prices.Source
	publisher pubsub.Publisher
	scheduler scheduler.Scheduler
	interval  time.Duration
}

type PortfolioRefreshOption func(*PortfolioRefreshService)

func WithPortfolioRefreshContext(ctx context.Context) PortfolioRefreshOption {
	return func(s *PortfolioRefreshService) {
		s.ctx = ctx
	}
}

func WithPortfolioRefreshLogger(l *slog.Logger) PortfolioRefreshOption {
	return func(s *PortfolioRefreshService) {
		s.logger = l
	}
}

func WithPortfolioRefreshCollection(c *store.Collection[models.PortfolioPosition]) PortfolioRefreshOption {
	return func(s *PortfolioRefreshService) {
		s.portfolio = c
	}
}

func WithPortfolioRefreshSource(src prices.Source) PortfolioRefreshOption {
	return func(s *PortfolioRefreshService) {
		s.source = src
	}
}

func WithPortfolioRefreshPublisher(p pubsub.Publisher) PortfolioRefreshOption {
	return func(s *PortfolioRefreshService) {
		s.publisher = p
	}
}

func WithPortfolioRefreshInterval(d time.Duration) PortfolioRefreshOption {
	return func(s *PortfolioRefreshService) {
		s.interval = d
	}
}

func (s *PortfolioRefreshService) IsValid() error {
	switch {
	case s.ctx == nil:
		return errors.Wrap(ErrInvalidPortfolioRefreshConfig, "ctx cannot be nil")
	case s.logger == nil:
		return errors.Wrap(ErrInvalidPortfolioRefreshConfig, "logger cannot be nil")
	case s.portfolio == nil:
		return errors.Wrap(ErrInvalidPortfolioRefreshConfig, "portfolio collection cannot be nil")
	case s.source == nil:
		return errors.Wrap(ErrInvalidPortfolioRefreshConfig, "price source cannot be nil")
	case s.publisher == nil:
		return errors.Wrap(ErrInvalidPortfolioRefreshConfig, "publisher cannot be nil")
	default:
		return nil
	}
}

func NewPortfolioRefreshService(opts ...PortfolioRefreshOption) (*PortfolioRefreshService, error) {
	s := &PortfolioRefreshService{
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

func (s *PortfolioRefreshService) Start() error {
	if err := s.tick(); err != nil {
		s.logger.Error("initial portfolio refresh failed", "error", err)
	}

	return s.scheduler.Start()
}

func (s *PortfolioRefreshService) Stop() {
	s.scheduler.Stop()
}

// Refresh runs one refresh cycle immediately, outside the schedule.
func (s *PortfolioRefreshService) Refresh() error {
	return s.tick()
}

func (s *PortfolioRefreshService) tick() error {
	held := s.portfolio.Load()
	if len(held) == 0 {
		return nil
	}

	// A coin can back several positions; fetch each id once.
	idSet := make(map[string]struct{}, len(held))
	ids := make([]string, 0, len(held))
	for _, position := range held {
		if _, seen := idSet[position.CoinID]; seen {
			continue
		}
		idSet[position.CoinID] = struct{}{}
		ids = append(ids, position.CoinID)
	}

	quotes, err := s.source.MarketDataBatch(s.ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to fetch portfolio quotes")
	}

	// Merge under the collection's lock so positions added or removed
	// while the fetch was in flight are not written over.
	now := time.Now()
	var snapshot []models.PortfolioPosition
	err = s.portfolio.Mutate(func(positions []models.PortfolioPosition) []models.PortfolioPosition {
		for i := range positions {
			quote, ok := quotes[positions[i].CoinID]
			if !ok {
				continue
			}
			positions[i].CurrentPrice = quote.Price
			positions[i].Simulated = quote.Simulated
			positions[i].LastUpdated = now
		}
		snapshot = positions
		return positions
	})
	if err != nil {
		return errors.Wrap(err, "failed to persist refreshed portfolio")
	}

	if err := s.publish(snapshot); err != nil {
		s.logger.Error("failed to publish portfolio snapshot", "error", err)
	}

	s.logger.Debug("portfolio refreshed", "positions", len(snapshot))
	return nil
}

func (s *PortfolioRefreshService) publish(positions []models.PortfolioPosition) error {
	snapshot := struct {
		Type  string                     `json:"type"`
		Items []models.PortfolioPosition `json:"items"`
	}{Type: "portfolio", Items: positions}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to marshal portfolio snapshot")
	}
	return s.publisher.Publish(data)
}
