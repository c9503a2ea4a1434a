package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AIConfig holds the narrative-generation settings
type AIConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	Model     string `json:"model"`
	MaxTokens int    `json:"maxTokens"`
	TimeoutMS int    `json:"timeoutMs"`
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// SMTPConfig holds the transactional email settings
type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Login    string `json:"login"`
	Password string `json:"-"` // Never serialize
	Sender   string `json:"sender"`

	// OperatorRecipient receives the admin-facing summary of every
	// submission. When empty the admin email is skipped.
	OperatorRecipient string `json:"operatorRecipient"`
}

// IsEnabled returns true if an SMTP relay is configured
func (c *SMTPConfig) IsEnabled() bool {
	return c.Host != "" && c.Sender != ""
}

// Config is the full service configuration
type Config struct {
	Port     string     `json:"port"`
	DataFile string     `json:"dataFile"`
	LogDir   string     `json:"logDir"`
	AI       AIConfig   `json:"ai"`
	SMTP     SMTPConfig `json:"smtp"`
}

// Load reads configuration from the environment, after loading a .env file
// if one is present. Every setting has a default except credentials.
func Load() *Config {
	// Missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	return &Config{
		Port:     getEnvOrDefault("PORT", "3001"),
		DataFile: getEnvOrDefault("DATA_FILE", "assessments_data.json"),
		LogDir:   getEnvOrDefault("LOG_DIR", "logs"),
		AI: AIConfig{
			APIKey:    os.Getenv("CLAUDE_API_KEY"),
			BaseURL:   getEnvOrDefault("CLAUDE_BASE_URL", "https://api.anthropic.com/v1/messages"),
			Model:     getEnvOrDefault("CLAUDE_MODEL", "claude-3-opus-20240229"),
			MaxTokens: getEnvIntOrDefault("CLAUDE_MAX_TOKENS", 150),
			TimeoutMS: getEnvIntOrDefault("CLAUDE_TIMEOUT_MS", 10000),
		},
		SMTP: SMTPConfig{
			Host:              os.Getenv("MAILGUN_SMTP_SERVER"),
			Port:              getEnvIntOrDefault("MAILGUN_SMTP_PORT", 587),
			Login:             os.Getenv("MAILGUN_SMTP_LOGIN"),
			Password:          os.Getenv("MAILGUN_SMTP_PASSWORD"),
			Sender:            os.Getenv("EMAIL_SENDER_ADDRESS"),
			OperatorRecipient: os.Getenv("EMAIL_RECIPIENT_ADDRESS"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}
