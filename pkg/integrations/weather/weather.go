package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Report is the current weather for one location, in metric units.
type Report struct {
	Location    string    `json:"location"`
	TempC       float64   `json:"temp_c"`
	FeelsLikeC  float64   `json:"feels_like_c"`
	Humidity    int       `json:"humidity"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	WindSpeed   float64   `json:"wind_speed"`
	Simulated   bool      `json:"simulated"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Service fetches current weather from an OpenWeatherMap-compatible
// API. Without an API key, or when the API fails, it fabricates a
// plausible report labeled Simulated. Reports stay fresh for ten
// minutes per location.
type Service struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	logger  *slog.Logger
	rng     *rand.Rand
	reports *cache.Cache
}

type Option func(*Service)

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

// WithSeed makes simulated reports deterministic.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func NewService(options ...Option) *Service {
	s := &Service{
		BaseURL: "https://api.openweathermap.org/data/2.5",
		Client:  &http.Client{Timeout: 10 * time.Second},
		logger:  slog.Default(),
		rng:     rand.New(rand.NewSource(rand.Int63())),
		reports: cache.New(10*time.Minute, 30*time.Minute),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Current returns the weather for a location, serving from the
// ten-minute cache when possible.
func (s *Service) Current(ctx context.Context, location string) (Report, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Report{}, fmt.Errorf("location cannot be empty")
	}

	cacheKey := strings.ToLower(location)
	if cached, found := s.reports.Get(cacheKey); found {
		return cached.(Report), nil
	}

	report, err := s.fetch(ctx, location)
	if err != nil {
		s.logger.Warn("live weather unavailable, using simulated report", "location", location, "error", err)
		report = s.simulate(location)
	}

	s.reports.Set(cacheKey, report, cache.DefaultExpiration)
	return report, nil
}

func (s *Service) fetch(ctx context.Context, location string) (Report, error) {
	if s.APIKey == "" {
		return Report{}, fmt.Errorf("no weather api key configured")
	}

	endpoint := fmt.Sprintf("%s/weather?q=%s&units=metric&appid=%s",
		s.BaseURL, url.QueryEscape(location), url.QueryEscape(s.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Report{}, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("weather unexpected status code: %d", resp.StatusCode)
	}

	var result struct {
		Name string `json:"name"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Report{}, fmt.Errorf("weather failed to decode response: %w", err)
	}

	report := Report{
		Location:   result.Name,
		TempC:      result.Main.Temp,
		FeelsLikeC: result.Main.FeelsLike,
		Humidity:   result.Main.Humidity,
		WindSpeed:  result.Wind.Speed,
		FetchedAt:  time.Now(),
	}
	if len(result.Weather) > 0 {
		report.Condition = result.Weather[0].Main
		report.Description = result.Weather[0].Description
		report.Icon = result.Weather[0].Icon
	}
	return report, nil
}

var simulatedConditions = []struct {
	condition   string
	description string
	icon        string
}{
	{"Clear", "clear sky", "01d"},
	{"Clouds", "scattered clouds", "03d"},
	{"Clouds", "overcast clouds", "04d"},
	{"Rain", "light rain", "10d"},
	{"Drizzle", "drizzle", "09d"},
}

func (s *Service) simulate(location string) Report {
	pick := simulatedConditions[s.rng.Intn(len(simulatedConditions))]
	return Report{
		Location:    location,
		TempC:       float64(s.rng.Intn(30)),
		FeelsLikeC:  float64(s.rng.Intn(30)),
		Humidity:    s.rng.Intn(100),
		Condition:   pick.condition,
		Description: pick.description,
		Icon:        pick.icon,
		WindSpeed:   float64(s.rng.Intn(10)),
		Simulated:   true,
		FetchedAt:   time.Now(),
	}
}
