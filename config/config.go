package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Remote reference-data store (PostgREST-style API)
	SupabaseURL string
	SupabaseKey string

	// Completion provider
	OpenAIAPIKey string
	OpenAIAPIURL string

	// Grocery-list provider
	InstacartAPIKey string
	InstacartAPIURL string

	// SMS verification provider
	TwilioAccountSID      string
	TwilioAuthToken       string
	TwilioVerifyServiceID string

	// Session tokens
	JWTSecret string

	// User registry
	UserStoreDriver string // "file" or "sqlite"
	UsersFile       string
	UsersDBPath     string

	// Timeout applied to every outbound provider call
	ProviderTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present, matching how the service is run
// in development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerHost:            getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		SupabaseURL:           os.Getenv("SUPABASE_URL"),
		SupabaseKey:           os.Getenv("SUPABASE_KEY"),
		OpenAIAPIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAIAPIURL:          getEnv("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions"),
		InstacartAPIKey:       os.Getenv("INSTACART_API_KEY"),
		InstacartAPIURL:       getEnv("INSTACART_API_URL", "https://api.instacart.com/v2"),
		TwilioAccountSID:      os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:       os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioVerifyServiceID: os.Getenv("TWILIO_VERIFY_SERVICE_SID"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		UserStoreDriver:       getEnv("USER_STORE_DRIVER", "file"),
		UsersFile:             getEnv("USERS_FILE", "data/users.json"),
		UsersDBPath:           getEnv("USERS_DB_PATH", "data/users.db"),
	}

	timeoutSecs := 30
	if v := os.Getenv("PROVIDER_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT_SECONDS: %q", v)
		}
		timeoutSecs = n
	}
	cfg.ProviderTimeout = time.Duration(timeoutSecs) * time.Second

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every setting the service cannot run without is set.
// Provider keys are allowed to be empty; the corresponding bridge degrades
// to its documented failure mode instead of blocking startup.
func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseKey == "" {
		return fmt.Errorf("SUPABASE_KEY is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.UserStoreDriver {
	case "file", "sqlite":
	default:
		return fmt.Errorf("unknown USER_STORE_DRIVER: %q", c.UserStoreDriver)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
