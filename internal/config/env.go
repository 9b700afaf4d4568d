package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none)
// into the process environment. Missing files are skipped and variables that
// are already set are not overridden.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

func applyEnv(cfg *AppConfig, lookup lookupFunc) {
	get := func(key string) string {
		v, ok := lookup(key)
		if !ok {
			return ""
		}
		return strings.TrimSpace(v)
	}

	if v := get("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := get("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := get("BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := get("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := get("AI_PROVIDER"); v != "" {
		cfg.AI.Provider = v
	}
	if v := get("AI_MODEL"); v != "" {
		cfg.AI.Model = v
	}
	if v := get("AI_ENDPOINT"); v != "" {
		cfg.AI.Endpoint = v
	}
	if cfg.AI.APIKey == "" {
		switch strings.ToLower(strings.TrimSpace(cfg.AI.Provider)) {
		case ProviderAnthropic:
			cfg.AI.APIKey = get("ANTHROPIC_API_KEY")
		case ProviderOpenAI, ProviderOpenAICompatible:
			cfg.AI.APIKey = get("OPENAI_API_KEY")
		}
	}
	if v := get("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := get("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
}
