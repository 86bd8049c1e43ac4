// Package config loads the process-wide server configuration from the
// environment. Everything is read exactly once at startup; business logic
// receives the resulting struct and never touches the environment itself.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/The-AI-Workshops/jotform-mcp-server/log"
)

// Transport selects how the MCP server talks to its client.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Defaults for optional settings.
const (
	defaultBaseURL = "https://api.jotform.com"
	defaultHost    = "0.0.0.0"
	defaultPort    = 8067

	// minAccountingStartDay..maxAccountingStartDay is the valid range for
	// the day-of-month that opens an accounting month. 28 keeps the value
	// meaningful in February.
	minAccountingStartDay = 1
	maxAccountingStartDay = 28
)

// Config holds every setting the server consumes.
type Config struct {
	// APIKey authenticates against the JotForm API. Required.
	APIKey string
	// BaseURL is the JotForm API endpoint. Override for EU accounts
	// (https://eu-api.jotform.com).
	BaseURL string
	// Debug enables request/response logging in the API client.
	Debug bool

	// AccountingMonthStartDay is the day-of-month that starts an accounting
	// month, in [1,28]. Out-of-range values are clamped to 1.
	AccountingMonthStartDay int
	// SearchConcurrency bounds the per-search fan-out of submission
	// queries. 0 means one worker per target form.
	SearchConcurrency int

	// Transport is "stdio" or "http".
	Transport string
	// Host and Port are used by the HTTP transport.
	Host string
	Port int

	// LogLevel is one of debug, info, warn, error, fatal.
	LogLevel string
}

// ErrMissingAPIKey is returned when JOTFORM_API_KEY is absent or left at the
// placeholder value.
var ErrMissingAPIKey = errors.New("JOTFORM_API_KEY not found or not set in environment variables")

// FromEnv builds a Config from the process environment.
func FromEnv() (*Config, error) {
	apiKey := os.Getenv("JOTFORM_API_KEY")
	if apiKey == "" || apiKey == "YOUR_JOTFORM_API_KEY_HERE" {
		return nil, ErrMissingAPIKey
	}

	cfg := &Config{
		APIKey:                  apiKey,
		BaseURL:                 envOrDefault("JOTFORM_BASE_URL", defaultBaseURL),
		Debug:                   envBool("JOTFORM_DEBUG_MODE"),
		AccountingMonthStartDay: accountingStartDay(),
		SearchConcurrency:       envInt("SEARCH_CONCURRENCY", 0),
		Transport:               transport(),
		Host:                    envOrDefault("MCP_HOST", defaultHost),
		Port:                    envInt("MCP_PORT", defaultPort),
		LogLevel:                envOrDefault("LOG_LEVEL", log.LevelInfo),
	}
	if cfg.SearchConcurrency < 0 {
		cfg.SearchConcurrency = 0
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func accountingStartDay() int {
	day := envInt("ACCOUNTING_MONTH_START_DAY", minAccountingStartDay)
	if day < minAccountingStartDay || day > maxAccountingStartDay {
		log.Warnf("ACCOUNTING_MONTH_START_DAY %d is outside [%d,%d], defaulting to %d",
			day, minAccountingStartDay, maxAccountingStartDay, minAccountingStartDay)
		return minAccountingStartDay
	}
	return day
}

func transport() string {
	switch t := strings.ToLower(os.Getenv("MCP_TRANSPORT")); t {
	case "", TransportHTTP, "sse", "streamable":
		return TransportHTTP
	case TransportStdio:
		return TransportStdio
	default:
		log.Warnf("unsupported MCP_TRANSPORT %q, defaulting to %s", t, TransportHTTP)
		return TransportHTTP
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("invalid %s value %q, using %d", key, v, def)
		return def
	}
	return n
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "t", "y", "yes":
		return true
	default:
		return false
	}
}
