package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int             `yaml:"port"`
	Env            string          `yaml:"env"` // "development" | "production"
	BaseURL        string          `yaml:"base_url"`
	AllowedOrigins []string        `yaml:"allowed_origins"`
	Log            LogConfig       `yaml:"log"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
	Cache          CacheConfig     `yaml:"cache"`
	AI             AIConfig        `yaml:"ai"`
	Redis          RedisConfig     `yaml:"redis"`
	Analytics      AnalyticsConfig `yaml:"analytics"`
	Database       DatabaseConfig  `yaml:"database"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type RateLimitConfig struct {
	Driver string        `yaml:"driver"` // memory | redis
	Window time.Duration `yaml:"window"`
	Limit  int           `yaml:"limit"`
}

type CacheConfig struct {
	Driver     string        `yaml:"driver"` // memory | redis
	TTL        time.Duration `yaml:"ttl"`
	MaxEntries int           `yaml:"max_entries"`
}

// AIConfig selects the roast caption provider. An empty provider or "none"
// serves the built-in captions only.
type AIConfig struct {
	Provider  string        `yaml:"provider"`
	Model     string        `yaml:"model"`
	Endpoint  string        `yaml:"endpoint"`
	APIKey    string        `yaml:"api_key"`
	Timeout   time.Duration `yaml:"timeout"`
	MaxTokens int           `yaml:"max_tokens"`
}

type RedisConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AnalyticsConfig struct {
	Driver    string `yaml:"driver"` // memory | mysql
	MaxEvents int    `yaml:"max_events"`
}

type DatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// Load reads the YAML file at configPath over the defaults, applies
// environment overrides and validates the result. A missing file yields the
// defaults.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	case len(bytes.TrimSpace(content)) > 0:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	}

	applyEnv(&cfg, os.LookupEnv)
	normalize(&cfg)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w in %q", err, path)
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:    defaultPort,
		Env:     defaultEnv,
		BaseURL: defaultBaseURL,
		Log:     LogConfig{Level: defaultLogLevel},
		RateLimit: RateLimitConfig{
			Driver: DriverMemory,
			Window: defaultRateWindow,
			Limit:  defaultRateLimit,
		},
		Cache: CacheConfig{
			Driver:     DriverMemory,
			TTL:        defaultCacheTTL,
			MaxEntries: defaultCacheMax,
		},
		AI: AIConfig{
			Timeout:   defaultAITimeout,
			MaxTokens: defaultAIMaxTokens,
		},
		Redis: RedisConfig{
			Host: defaultRedisHost,
			Port: defaultRedisPort,
		},
		Analytics: AnalyticsConfig{
			Driver:    DriverMemory,
			MaxEvents: defaultAnalyticsMax,
		},
		Database: DatabaseConfig{
			Host: defaultDBHost,
			Port: defaultDBPort,
			User: defaultDBUser,
			Name: defaultDBName,
		},
	}
}

func normalize(cfg *AppConfig) {
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.AllowedOrigins = normalizeOrigins(cfg.AllowedOrigins)

	cfg.RateLimit.Driver = normalizeDriver(cfg.RateLimit.Driver)
	cfg.Cache.Driver = normalizeDriver(cfg.Cache.Driver)
	cfg.Analytics.Driver = normalizeDriver(cfg.Analytics.Driver)

	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
	if cfg.AI.Provider == "" || cfg.AI.Provider == ProviderFallback {
		cfg.AI.Provider = ProviderNone
	}
	if strings.TrimSpace(cfg.AI.Model) == "" {
		switch cfg.AI.Provider {
		case ProviderAnthropic:
			cfg.AI.Model = defaultAnthropicModel
		case ProviderOpenAI, ProviderOpenAICompatible:
			cfg.AI.Model = defaultOpenAIModel
		}
	}
}

func (c *AppConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d, expected 1-65535", c.Port)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("invalid rate_limit.window %s, expected > 0", c.RateLimit.Window)
	}
	if c.RateLimit.Limit < 1 {
		return fmt.Errorf("invalid rate_limit.limit %d, expected >= 1", c.RateLimit.Limit)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("invalid cache.ttl %s, expected > 0", c.Cache.TTL)
	}
	if c.Cache.MaxEntries < 1 {
		return fmt.Errorf("invalid cache.max_entries %d, expected >= 1", c.Cache.MaxEntries)
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("invalid ai.timeout %s, expected > 0", c.AI.Timeout)
	}
	if c.Analytics.MaxEvents < 1 {
		return fmt.Errorf("invalid analytics.max_events %d, expected >= 1", c.Analytics.MaxEvents)
	}
	if c.Redis.Port < 1 || c.Redis.Port > 65535 {
		return fmt.Errorf("invalid redis.port %d, expected 1-65535", c.Redis.Port)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("invalid redis.db %d, expected >= 0", c.Redis.DB)
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database.port %d, expected 1-65535", c.Database.Port)
	}

	for field, driver := range map[string]string{
		"rate_limit.driver": c.RateLimit.Driver,
		"cache.driver":      c.Cache.Driver,
	} {
		if driver != DriverMemory && driver != DriverRedis {
			return fmt.Errorf("invalid %s %q, expected memory or redis", field, driver)
		}
	}
	if c.Analytics.Driver != DriverMemory && c.Analytics.Driver != DriverMySQL {
		return fmt.Errorf("invalid analytics.driver %q, expected memory or mysql", c.Analytics.Driver)
	}

	switch c.AI.Provider {
	case ProviderNone, ProviderAnthropic, ProviderOpenAI:
	case ProviderOpenAICompatible:
		if c.AI.Endpoint == "" {
			return fmt.Errorf("ai.provider %q requires ai.endpoint", c.AI.Provider)
		}
	default:
		return fmt.Errorf("unknown ai.provider %q", c.AI.Provider)
	}
	return nil
}

// IsDev reports whether the server runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env == defaultEnv
}

// UsesRedis reports whether any component is configured for Redis.
func (c *AppConfig) UsesRedis() bool {
	return c.RateLimit.Driver == DriverRedis || c.Cache.Driver == DriverRedis
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeDriver(driver string) string {
	d := strings.ToLower(strings.TrimSpace(driver))
	if d == "" {
		return DriverMemory
	}
	return d
}
