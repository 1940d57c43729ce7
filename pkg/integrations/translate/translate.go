package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Result carries one translation. Simulated marks the sample fallback
// returned when no translation endpoint is configured.
type Result struct {
	Text           string `json:"text"`
	TranslatedText string `json:"translated_text"`
	Source         string `json:"source"`
	Target         string `json:"target"`
	Simulated      bool   `json:"simulated"`
}

// Service translates text through a LibreTranslate-compatible endpoint.
// Without an endpoint, or when the call fails, it returns a sample
// translation labeled Simulated.
type Service struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
	logger   *slog.Logger
}

type Option func(*Service)

// WithEndpoint points the service at a LibreTranslate-compatible API.
func WithEndpoint(endpoint string) Option {
	return func(s *Service) {
		s.Endpoint = endpoint
	}
}

func WithAPIKey(key string) Option {
	return func(s *Service) {
		s.APIKey = key
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(options ...Option) *Service {
	s := &Service{
		Client: &http.Client{Timeout: 15 * time.Second},
		logger: slog.Default(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Service) Translate(ctx context.Context, text, source, target string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, fmt.Errorf("text cannot be empty")
	}
	if source == "" || target == "" {
		return Result{}, fmt.Errorf("source and target languages are required")
	}

	if s.Endpoint == "" {
		return s.simulate(text, source, target), nil
	}

	result, err := s.fetch(ctx, text, source, target)
	if err != nil {
		s.logger.Warn("live translation failed, using sample translation", "source", source, "target", target, "error", err)
		return s.simulate(text, source, target), nil
	}
	return result, nil
}

func (s *Service) fetch(ctx context.Context, text, source, target string) (Result, error) {
	payload := map[string]string{
		"q":      text,
		"source": source,
		"target": target,
		"format": "text",
	}
	if s.APIKey != "" {
		payload["api_key"] = s.APIKey
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint+"/translate", bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("translate unexpected status code: %d", resp.StatusCode)
	}

	var result struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("translate failed to decode response: %w", err)
	}
	if result.TranslatedText == "" {
		return Result{}, fmt.Errorf("translate returned empty result")
	}

	return Result{
		Text:           text,
		TranslatedText: result.TranslatedText,
		Source:         source,
		Target:         target,
	}, nil
}

func (s *Service) simulate(text, source, target string) Result {
	return Result{
		Text:           text,
		TranslatedText: fmt.Sprintf("[sample %s>%s] %s", source, target, text),
		Source:         source,
		Target:         target,
		Simulated:      true,
	}
}
