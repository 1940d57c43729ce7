package controller

import (
	"log/slog"

	"webland/internal/models"
	"webland/internal/service"
	"webland/internal/store"
	"webland/pkg/integrations/translate"
	"webland/pkg/integrations/weather"
	"webland/pkg/types/prices"
	"webland/pkg/types/storage"
	"webland/pkg/types/tabs"

	"github.com/pkg/errors"
)

var ErrInvalidControllerConfig = errors.New("invalid controller config")

// Collections bundles the stores the controllers operate on, one per
// persisted collection.
type Collections struct {
	Notes        *store.Collection[models.Note]
	Bookmarks    *store.Collection[models.Bookmark]
	Todos        *store.Collection[models.Todo]
	CryptoNotes  *store.Collection[models.Note]
	Links        *store.Collection[models.Link]
	Watchlist    *store.Collection[models.WatchlistEntry]
	Calculations *store.Collection[models.Calculation]
	Portfolio    *store.Collection[models.PortfolioPosition]
	Alerts       *store.Collection[models.PriceAlert]
}

func (c Collections) IsValid() error {
	switch {
	case c.Notes == nil, c.Bookmarks == nil, c.Todos == nil,
		c.CryptoNotes == nil, c.Links == nil, c.Watchlist == nil,
		c.Calculations == nil, c.Portfolio == nil, c.Alerts == nil:
		return errors.Wrap(ErrInvalidControllerConfig, "all collections must be set")
	default:
		return nil
	}
}

type Controller struct {
	logger      *slog.Logger
	collections Collections
	settings    storage.Backend
	prices      prices.Source
	weather     *weather.Service
	translate   *translate.Service
	tabs        tabs.Accessor

	watchlistRefresh *service.WatchlistRefreshService
	portfolioRefresh *service.PortfolioRefreshService
}

type Option func(*Controller)

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

func WithCollections(collections Collections) Option {
	return func(c *Controller) {
		c.collections = collections
	}
}

func WithSettingsBackend(backend storage.Backend) Option {
	return func(c *Controller) {
		c.settings = backend
	}
}

func WithPriceSource(src prices.Source) Option {
	return func(c *Controller) {
		c.prices = src
	}
}

func WithWeatherService(svc *weather.Service) Option {
	return func(c *Controller) {
		c.weather = svc
	}
}

func WithTranslateService(svc *translate.Service) Option {
	return func(c *Controller) {
		c.translate = svc
	}
}

func WithTabAccessor(accessor tabs.Accessor) Option {
	return func(c *Controller) {
		c.tabs = accessor
	}
}

func WithWatchlistRefresh(svc *service.WatchlistRefreshService) Option {
	return func(c *Controller) {
		c.watchlistRefresh = svc
	}
}

func WithPortfolioRefresh(svc *service.PortfolioRefreshService) Option {
	return func(c *Controller) {
		c.portfolioRefresh = svc
	}
}

func (c *Controller) IsValid() error {
	switch {
	case c.logger == nil:
		return errors.Wrap(ErrInvalidControllerConfig, "logger cannot be nil")
	case c.settings == nil:
		return errors.Wrap(ErrInvalidControllerConfig, "settings backend cannot be nil")
	case c.prices == nil:
		return errors.Wrap(ErrInvalidControllerConfig, "price source cannot be nil")
	case c.weather == nil:
		return errors.Wrap(ErrInvalidControllerConfig, "weather service cannot be nil")
	case c.translate == nil:
		return errors.Wrap(ErrInvalidControllerConfig, "translate service cannot be nil")
	case c.tabs == nil:
		return errors.Wrap(ErrInvalidControllerConfig, "tab accessor cannot be nil")
	default:
		return c.collections.IsValid()
	}
}

func New(opts ...Option) (*Controller, error) {
	c := &Controller{}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.IsValid(); err != nil {
		return nil, err
	}
	return c, nil
}
