package config

import "time"

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort           = 3000
	defaultEnv            = "development"
	defaultBaseURL        = "http://localhost:3000"
	defaultLogLevel       = "info"
	defaultRateWindow     = 60 * time.Second
	defaultRateLimit      = 10
	defaultCacheTTL       = time.Hour
	defaultCacheMax       = 1000
	defaultAITimeout      = 3 * time.Second
	defaultAIMaxTokens    = 150
	defaultAnalyticsMax   = 10000
	defaultDBHost         = "127.0.0.1"
	defaultDBPort         = 3306
	defaultDBUser         = "root"
	defaultDBName         = "dracula_wtf"
	defaultDBCharset      = "utf8mb4"
	defaultRedisHost      = "localhost"
	defaultRedisPort      = 6379
	defaultAnthropicModel = "claude-3-haiku-20240307"
	defaultOpenAIModel    = "gpt-3.5-turbo"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverMySQL  = "mysql"

	ProviderNone             = "none"
	ProviderFallback         = "fallback"
	ProviderAnthropic        = "anthropic"
	ProviderOpenAI           = "openai"
	ProviderOpenAICompatible = "openai-compatible"
)
