package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Client struct {
		BaseURL string        `yaml:"base_url" default:"http://localhost:5000"`
		Timeout time.Duration `yaml:"timeout" default:"10s"`
	} `yaml:"client"`
	Predictor struct {
		ModelPath string  `yaml:"model_path" default:"house_price_model.yaml"`
		Watch     bool    `yaml:"watch" default:"false"`
		Floor     float64 `yaml:"floor" default:"50000"`
	} `yaml:"predictor"`
	RateLimit struct {
		Enabled      bool          `yaml:"enabled" default:"false"`
		Backend      string        `yaml:"backend" default:"memory"`
		Capacity     float64       `yaml:"capacity" default:"20"`
		RefillPerSec float64       `yaml:"refill_per_sec" default:"5"`
		Window       time.Duration `yaml:"window" default:"1m"`
		Redis        struct {
			Addr     string `yaml:"addr" default:"localhost:6379"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix" default:"houseprice"`
		} `yaml:"redis"`
	} `yaml:"ratelimit"`
}

// Default returns a configuration populated only from struct defaults.
func Default() *Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return &c
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML over the struct defaults and validates the result.
// Defaults go in first so an explicit false or 0 in the file wins.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// A missing file is not an error: defaults plus environment are used instead.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		c = Default()
	}

	if v := os.Getenv("PREDICTOR_BASE_URL"); v != "" {
		c.Client.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("HTTP_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("MODEL_PATH"); v != "" {
		c.Predictor.ModelPath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.RateLimit.Redis.Addr = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	u, err := url.Parse(c.Client.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("client.base_url must be an absolute URL, got '%s'", c.Client.BaseURL)
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("client.timeout must be positive")
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be 'json' or 'console', got '%s'", c.Log.Format)
	}
	if c.Predictor.Floor < 0 {
		return fmt.Errorf("predictor.floor cannot be negative")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.Backend != "memory" && c.RateLimit.Backend != "redis" {
			return fmt.Errorf("ratelimit.backend must be 'memory' or 'redis', got '%s'", c.RateLimit.Backend)
		}
		if c.RateLimit.Capacity < 1 {
			return fmt.Errorf("ratelimit.capacity must be at least 1")
		}
		if c.RateLimit.Backend == "memory" && c.RateLimit.RefillPerSec <= 0 {
			return fmt.Errorf("ratelimit.refill_per_sec must be positive")
		}
		if c.RateLimit.Backend == "redis" && c.RateLimit.Window <= 0 {
			return fmt.Errorf("ratelimit.window must be positive")
		}
	}
	return nil
}

// BaseURL returns the prediction service base URL without a trailing slash.
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.Client.BaseURL, "/")
}
