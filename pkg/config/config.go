package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	CORS struct {
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"cors"`
	Routine struct {
		StartGMT string `yaml:"start_gmt"`
		EndGMT   string `yaml:"end_gmt"`
	} `yaml:"routine"`
	Calendar struct {
		FeedURL      string        `yaml:"feed_url"`
		APIKey       string        `yaml:"api_key"`
		FetchTimeout time.Duration `yaml:"fetch_timeout"`
	} `yaml:"calendar"`
	Webhook struct {
		Secret string `yaml:"secret"`
	} `yaml:"webhook"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("CALENDAR_FEED_URL"); v != "" {
		c.Calendar.FeedURL = v
	}
	if v := os.Getenv("CALENDAR_API_KEY"); v != "" {
		c.Calendar.APIKey = v
	}
	if v := os.Getenv("WEBHOOK_SECRET"); v != "" {
		c.Webhook.Secret = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.CORS.AllowOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, ok := strings.Cut(v, ":")
		c.Redis.Host = host
		if ok {
			if p, err := strconv.Atoi(port); err == nil {
				c.Redis.Port = p
			}
		}
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
// The webhook secret is deliberately not required here: a missing secret is
// reported per-request as a server error so the forecast surface stays up.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Calendar.FeedURL == "" {
		return fmt.Errorf("calendar.feed_url is required")
	}
	if c.Routine.StartGMT == "" || c.Routine.EndGMT == "" {
		return fmt.Errorf("routine.start_gmt and routine.end_gmt are required")
	}
	for _, hm := range []string{c.Routine.StartGMT, c.Routine.EndGMT} {
		if _, err := time.Parse("15:04", hm); err != nil {
			return fmt.Errorf("routine window %q must be HH:MM, got: %w", hm, err)
		}
	}
	return nil
}
