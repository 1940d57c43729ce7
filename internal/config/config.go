package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"webland/pkg/utils"

	"gopkg.in/yaml.v2"
)

// Config holds every runtime setting for the backend. Values load from
// an optional config.yaml and can be overridden per key through
// environment variables.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Crypto struct {
		VsCurrency string `yaml:"vs_currency"`
		// RefreshInterval is a Go duration string, e.g. "1m".
		RefreshInterval string `yaml:"refresh_interval"`
		CoinsFile       string `yaml:"coins_file"`
	} `yaml:"crypto"`

	Weather struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"weather"`

	Translate struct {
		Endpoint string `yaml:"endpoint"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"translate"`

	Browser struct {
		DebugURL string `yaml:"debug_url"`
	} `yaml:"browser"`
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "8385"
	cfg.Database.Path = "./data/webland.db"
	cfg.Crypto.VsCurrency = "eur"
	cfg.Crypto.RefreshInterval = "1m"
	return cfg
}

// Load builds the config from defaults, an optional yaml file, and
// environment variables, in that order of precedence.
func Load(path string) (*Config, error) {
	utils.LoadEnv()

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("unable to read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unable to parse %s: %w", path, err)
		}
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) overrideWithEnv() {
	c.Server.Host = utils.GetEnv("WEBLAND_HOST", c.Server.Host)
	c.Server.Port = utils.GetEnv("WEBLAND_PORT", c.Server.Port)
	c.Database.Path = utils.GetEnv("WEBLAND_DB_PATH", c.Database.Path)
	c.Crypto.VsCurrency = utils.GetEnv("WEBLAND_VS_CURRENCY", c.Crypto.VsCurrency)
	c.Crypto.CoinsFile = utils.GetEnv("WEBLAND_COINS_FILE", c.Crypto.CoinsFile)
	c.Weather.APIKey = utils.GetEnv("OPENWEATHER_API_KEY", c.Weather.APIKey)
	c.Translate.Endpoint = utils.GetEnv("TRANSLATE_ENDPOINT", c.Translate.Endpoint)
	c.Translate.APIKey = utils.GetEnv("TRANSLATE_API_KEY", c.Translate.APIKey)
	c.Browser.DebugURL = utils.GetEnv("BROWSER_DEBUG_URL", c.Browser.DebugURL)

	c.Crypto.RefreshInterval = utils.GetEnv("WEBLAND_REFRESH_INTERVAL", c.Crypto.RefreshInterval)
}

// RefreshInterval parses the configured refresh cadence.
func (c *Config) RefreshInterval() (time.Duration, error) {
	return time.ParseDuration(c.Crypto.RefreshInterval)
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("invalid server port: %s", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}
	if interval, err := time.ParseDuration(c.Crypto.RefreshInterval); err != nil || interval <= 0 {
		return fmt.Errorf("invalid refresh interval: %s", c.Crypto.RefreshInterval)
	}
	if c.Crypto.VsCurrency == "" {
		return fmt.Errorf("vs currency is required")
	}
	return nil
}

// Addr is the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
