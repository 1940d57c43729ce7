package notify

import (
	"encoding/json"
	"log/slog"
	"time"

	"webland/pkg/types/notify"
	"webland/pkg/types/pubsub"

	"github.com/pkg/errors"
)

var (
	_ notify.Sink = (*SlogSink)(nil)
	_ notify.Sink = (*PubSink)(nil)
	_ notify.Sink = (Fanout)(nil)
)

// SlogSink writes notifications to the structured log. The panel cannot
// raise OS notifications from the backend, so the log is the fallback
// record of every alert that fired.
type SlogSink struct {
	logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Notify(title, body string) error {
	s.logger.Info("notification", "title", title, "body", body)
	return nil
}

// PubSink publishes notifications as JSON events. The SSE notification
// stream delivers them to the panel, which raises the browser
// Notification itself.
type PubSink struct {
	publisher pubsub.Publisher
}

type event struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

func NewPubSink(publisher pubsub.Publisher) *PubSink {
	return &PubSink{publisher: publisher}
}

func (p *PubSink) Notify(title, body string) error {
	payload, err := json.Marshal(event{
		Title:     title,
		Body:      body,
		Timestamp: time.Now(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode notification")
	}
	return errors.Wrap(p.publisher.Publish(payload), "failed to publish notification")
}

// Fanout delivers to every sink and reports the first failure after
// all sinks have been tried.
type Fanout []notify.Sink

func (f Fanout) Notify(title, body string) error {
	var firstErr error
	for _, sink := range f {
		if err := sink.Notify(title, body); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
