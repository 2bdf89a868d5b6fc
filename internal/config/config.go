package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	NATSURL         string
	NATSConnTimeout time.Duration

	OTELCollectorURL string

	ClickHouseDSN          string
	ClickHouseMaxOpenConns int
	ClickHouseMaxIdleConns int
	ClickHouseConnMaxLife  time.Duration
	ClickHouseUsername     string
	ClickHousePassword     string
	ClickHouseDatabase     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	AdzunaBaseURL string
	AdzunaAppID   string
	AdzunaAppKey  string
	AdzunaCountry string
	AdzunaTimeout time.Duration

	// Keywords x QueryStates is the search grid each polling sweep walks.
	Keywords       []string
	QueryStates    []string
	ResultsPerPage int

	PollingInterval time.Duration

	SkillsPath string
	RawDir     string

	RecomputeLimit    int
	ProcessingTimeout time.Duration
	RetentionDays     int
}

func LoadConfig() (*Config, error) {
	config := &Config{
		NATSURL:         getEnvString("NATS_URL", "nats://localhost:4222"),
		NATSConnTimeout: getEnvDuration("NATS_CONN_TIMEOUT", 10*time.Second),

		OTELCollectorURL: getEnvString("OTEL_COLLECTOR_URL", "localhost:4317"),

		ClickHouseDSN:          getEnvString("CLICKHOUSE_DSN", "localhost:9000"),
		ClickHouseMaxOpenConns: getEnvInt("CLICKHOUSE_MAX_OPEN_CONNS", 10),
		ClickHouseMaxIdleConns: getEnvInt("CLICKHOUSE_MAX_IDLE_CONNS", 5),
		ClickHouseConnMaxLife:  getEnvDuration("CLICKHOUSE_CONN_MAX_LIFE", time.Hour),
		ClickHouseUsername:     getEnvString("CLICKHOUSE_USERNAME", "default"),
		ClickHousePassword:     getEnvString("CLICKHOUSE_PASSWORD", ""),
		ClickHouseDatabase:     getEnvString("CLICKHOUSE_DATABASE", "jobsignals"),

		RedisAddr:     getEnvString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvString("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CacheTTL:      getEnvDuration("CACHE_TTL", 6*time.Hour),

		AdzunaBaseURL: getEnvString("ADZUNA_BASE_URL", "https://api.adzuna.com/v1/api"),
		AdzunaAppID:   getEnvString("ADZUNA_APP_ID", ""),
		AdzunaAppKey:  getEnvString("ADZUNA_APP_KEY", ""),
		AdzunaCountry: getEnvString("ADZUNA_COUNTRY", "us"),
		AdzunaTimeout: getEnvDuration("ADZUNA_TIMEOUT", 30*time.Second),

		Keywords:       getEnvList("SEARCH_KEYWORDS", []string{"Data Analyst", "Business Intelligence", "Analytics"}),
		QueryStates:    getEnvList("SEARCH_STATES", []string{"Texas", "California", "New York"}),
		ResultsPerPage: getEnvInt("RESULTS_PER_PAGE", 50),

		PollingInterval: getEnvDuration("POLLING_INTERVAL", 6*time.Hour),

		SkillsPath: getEnvString("SKILLS_PATH", "config/skills.yml"),
		RawDir:     getEnvString("RAW_DIR", "data/raw"),

		RecomputeLimit:    getEnvInt("RECOMPUTE_LIMIT", 50000),
		ProcessingTimeout: getEnvDuration("PROCESSING_TIMEOUT", 5*time.Minute),
		RetentionDays:     getEnvInt("RETENTION_DAYS", 10),
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists {
		var out []string
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
