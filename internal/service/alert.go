package service

import (
	"fmt"
	"log/slog"

	"webland/internal/models"
	"webland/internal/store"
	"webland/pkg/types/notify"

	"github.com/pkg/errors"
)

var ErrInvalidAlertConfig = errors.New("invalid alert service config")

// AlertService checks price alert rules against fresh quotes. A rule
// fires when the price crosses its target relative to the price seen
// when the rule was created; a fired rule notifies once and is deleted.
type AlertService struct {
	logger *slog.Logger
	alerts *store.Collection[models.PriceAlert]
	sink   notify.Sink
}

type AlertOption func(*AlertService)

func WithAlertLogger(l *slog.Logger) AlertOption {
	return func(s *AlertService) {
		s.logger = l
	}
}

func WithAlertCollection(c *store.Collection[models.PriceAlert]) AlertOption {
	return func(s *AlertService) {
		s.alerts = c
	}
}

func WithAlertSink(sink notify.Sink) AlertOption {
	return func(s *AlertService) {
		s.sink = sink
	}
}

func (s *AlertService) IsValid() error {
	switch {
	case s.logger == nil:
		return errors.Wrap(ErrInvalidAlertConfig, "logger cannot be nil")
	case s.alerts == nil:
		return errors.Wrap(ErrInvalidAlertConfig, "alert collection cannot be nil")
	case s.sink == nil:
		return errors.Wrap(ErrInvalidAlertConfig, "sink cannot be nil")
	default:
		return nil
	}
}

func NewAlertService(opts ...AlertOption) (*AlertService, error) {
	s := &AlertService{}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.IsValid(); err != nil {
		return nil, err
	}
	return s, nil
}

// Evaluate runs every stored rule against the given quotes, keyed by
// coin id. Rules for coins without a quote stay armed. Returns how many
// rules fired.
func (s *AlertService) Evaluate(quotes map[string]float64) int {
	fired := 0
	for _, alert := range s.alerts.Load() {
		current, ok := quotes[alert.CoinID]
		if !ok {
			continue
		}
		if !alert.Crossed(current) {
			continue
		}

		title := fmt.Sprintf("Price Alert: %s", alert.CoinName)
		body := fmt.Sprintf("%s crossed %.2f (now %.2f)", alert.CoinSymbol, alert.TargetPrice, current)
		if err := s.sink.Notify(title, body); err != nil {
			s.logger.Error("alert notification failed", "coin", alert.CoinID, "error", err)
		}

		if err := s.alerts.Remove(alert.ID); err != nil {
			s.logger.Error("failed to remove fired alert", "id", alert.ID, "error", err)
			continue
		}

		s.logger.Info("price alert fired", "coin", alert.CoinID, "target", alert.TargetPrice, "price", current)
		fired++
	}
	return fired
}
