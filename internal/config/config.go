package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the portfolio server
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Content   ContentConfig
	GitHub    GitHubConfig
	Cache     CacheConfig
	Contact   ContactConfig
	Analytics AnalyticsConfig
	Admin     AdminConfig
	Starfield StarfieldConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string
	Port           int
	Mode           string // gin mode: release, debug, test
	AllowedOrigins []string
}

// LogConfig holds slog settings
type LogConfig struct {
	Level  string
	Format string // json or text
}

// ContentConfig points at an optional YAML file overriding the built-in site copy
type ContentConfig struct {
	File string
}

// GitHubConfig holds settings for the project listing
type GitHubConfig struct {
	User         string
	Token        string
	PerPage      int
	Timeout      time.Duration
	RateInterval time.Duration
	BaseURL      string
}

// CacheConfig holds project cache settings. An empty RedisAddress keeps the cache in memory.
type CacheConfig struct {
	TTL           time.Duration
	RedisAddress  string
	RedisPassword string
	RedisDB       int
}

// ContactConfig selects how contact submissions are delivered
type ContactConfig struct {
	Delivery    string // simulate or smtp
	Delay       time.Duration
	SuccessRate float64
	SMTP        SMTPConfig
}

// SMTPConfig holds mail settings used when Delivery is smtp
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// AnalyticsConfig holds visitor tracking settings
type AnalyticsConfig struct {
	Enabled   bool
	DBPath    string
	Retention time.Duration
	Interval  time.Duration
}

// AdminConfig holds admin login credentials
type AdminConfig struct {
	Username string
	Password string
}

// StarfieldConfig holds the seed for decorative backgrounds. Zero means random per process.
type StarfieldConfig struct {
	Seed uint64
}

const (
	DeliverySimulate = "simulate"
	DeliverySMTP     = "smtp"

	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("PORT", 8080),
			Mode: getEnv("GIN_MODE", "release"),

			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Content: ContentConfig{
			File: getEnv("CONTENT_FILE", ""),
		},
		GitHub: GitHubConfig{
			User:         getEnv("GITHUB_USER", "octocat"),
			Token:        getEnv("GITHUB_TOKEN", ""),
			PerPage:      getEnvAsInt("GITHUB_PER_PAGE", 30),
			Timeout:      getEnvAsDuration("GITHUB_TIMEOUT", 10*time.Second),
			RateInterval: getEnvAsDuration("GITHUB_RATE_INTERVAL", 2*time.Second),
			BaseURL:      getEnv("GITHUB_BASE_URL", ""),
		},
		Cache: CacheConfig{
			TTL:           getEnvAsDuration("PROJECTS_CACHE_TTL", 10*time.Minute),
			RedisAddress:  getEnv("REDIS_ADDRESS", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
		},
		Contact: ContactConfig{
			Delivery:    strings.ToLower(getEnv("CONTACT_DELIVERY", DeliverySimulate)),
			Delay:       getEnvAsDuration("CONTACT_DELAY", 2*time.Second),
			SuccessRate: getEnvAsFloat("CONTACT_SUCCESS_RATE", 0.9),
			SMTP: SMTPConfig{
				Host: getEnv("SMTP_HOST", "smtp.gmail.com"),
				Port: getEnv("SMTP_PORT", "587"),
				User: getEnv("SMTP_USER", ""),
				Pass: getEnv("SMTP_PASS", ""),
				To:   getEnv("TO_EMAIL", "hello@portfolio.dev"),
			},
		},
		Analytics: AnalyticsConfig{
			Enabled:   getEnvAsBool("ANALYTICS_ENABLED", true),
			DBPath:    getEnv("ANALYTICS_DB", "data/analytics.db"),
			Retention: getEnvAsDuration("ANALYTICS_RETENTION", 365*24*time.Hour),
			Interval:  getEnvAsDuration("ANALYTICS_CLEANUP_INTERVAL", 24*time.Hour),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", DefaultAdminUsername),
			Password: getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		},
		Starfield: StarfieldConfig{
			Seed: getEnvAsUint64("STARFIELD_SEED", 0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.GitHub.User == "" {
		return fmt.Errorf("github user is required")
	}

	if c.GitHub.PerPage < 1 || c.GitHub.PerPage > 100 {
		return fmt.Errorf("github per_page must be between 1 and 100, got %d", c.GitHub.PerPage)
	}

	switch c.Contact.Delivery {
	case DeliverySimulate:
	case DeliverySMTP:
		if c.Contact.SMTP.User == "" || c.Contact.SMTP.Pass == "" {
			return fmt.Errorf("SMTP credentials not configured")
		}
	default:
		return fmt.Errorf("unknown contact delivery: %q", c.Contact.Delivery)
	}

	if c.Contact.SuccessRate < 0 || c.Contact.SuccessRate > 1 {
		return fmt.Errorf("contact success rate must be within [0,1], got %v", c.Contact.SuccessRate)
	}

	if c.Analytics.Enabled && c.Analytics.DBPath == "" {
		return fmt.Errorf("analytics database path is required when analytics is enabled")
	}

	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// UsingDefaultAdminCredentials reports whether the admin login still has the development defaults
func (c *Config) UsingDefaultAdminCredentials() bool {
	return c.Admin.Username == DefaultAdminUsername || c.Admin.Password == DefaultAdminPassword
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
