package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Firestore FirestoreConfig `yaml:"firestore"`
	Mail      MailConfig      `yaml:"mail"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// FirestoreConfig contains document store settings
type FirestoreConfig struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"credentials_file"` // empty = application default credentials
}

// MailConfig contains transactional email settings
type MailConfig struct {
	Provider       string `yaml:"provider"` // "brevo", "sendgrid" or "console"
	APIKey         string `yaml:"api_key"`
	Endpoint       string `yaml:"endpoint"` // override for the brevo endpoint, used in tests
	SenderName     string `yaml:"sender_name"`
	SenderEmail    string `yaml:"sender_email"`
	RegistrarName  string `yaml:"registrar_name"`
	RegistrarEmail string `yaml:"registrar_email"` // digest and reminder recipient
}

// AuthConfig contains registrar session settings
type AuthConfig struct {
	TokenSecret       string `yaml:"token_secret"`
	PasswordHash      string `yaml:"password_hash"` // bcrypt hash of the registrar password
	SessionTTLMinutes int    `yaml:"session_ttl_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	RegistrarDigest       string `yaml:"registrar_digest"`
	StaleRequestReminders string `yaml:"stale_request_reminders"`
	StaleAfterDays        int    `yaml:"stale_after_days"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Firestore
	if val := os.Getenv("FIRESTORE_PROJECT_ID"); val != "" {
		c.Firestore.ProjectID = val
	}
	if val := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); val != "" {
		c.Firestore.CredentialsFile = val
	}

	// Mail
	if val := os.Getenv("MAIL_PROVIDER"); val != "" {
		c.Mail.Provider = val
	}
	if val := os.Getenv("BREVO_API_KEY"); val != "" {
		c.Mail.APIKey = val
	}
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Mail.APIKey = val
	}
	if val := os.Getenv("BREVO_SENDER_EMAIL"); val != "" {
		c.Mail.SenderEmail = val
	}
	if val := os.Getenv("REGISTRAR_EMAIL"); val != "" {
		c.Mail.RegistrarEmail = val
	}

	// Auth
	if val := os.Getenv("AUTH_TOKEN_SECRET"); val != "" {
		c.Auth.TokenSecret = val
	}
	if val := os.Getenv("REGISTRAR_PASSWORD_HASH"); val != "" {
		c.Auth.PasswordHash = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Firestore validation
	if c.Firestore.ProjectID == "" {
		return fmt.Errorf("firestore project id is required")
	}

	// Mail validation
	switch c.Mail.Provider {
	case "", "console":
		c.Mail.Provider = "console"
	case "brevo", "sendgrid":
		if c.Mail.APIKey == "" {
			return fmt.Errorf("mail api key is required for provider %q", c.Mail.Provider)
		}
	default:
		return fmt.Errorf("unsupported mail provider: %q", c.Mail.Provider)
	}
	if c.Mail.SenderEmail == "" {
		return fmt.Errorf("mail sender email is required")
	}
	if c.Mail.SenderName == "" {
		c.Mail.SenderName = "School Registrar - Alumni Tracking System"
	}
	if c.Mail.RegistrarName == "" {
		c.Mail.RegistrarName = "School Registrar"
	}

	// Auth validation
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("auth token secret is required")
	}
	if len(c.Auth.TokenSecret) < 32 {
		return fmt.Errorf("auth token secret must be at least 32 characters")
	}
	if c.Auth.PasswordHash == "" {
		return fmt.Errorf("registrar password hash is required")
	}
	if c.Auth.SessionTTLMinutes <= 0 {
		c.Auth.SessionTTLMinutes = 60
	}

	// Scheduler defaults
	if c.Scheduler.RegistrarDigest == "" {
		c.Scheduler.RegistrarDigest = "0 0 7 * * *" // 7 AM UTC
	}
	if c.Scheduler.StaleRequestReminders == "" {
		c.Scheduler.StaleRequestReminders = "0 30 7 * * *" // 7:30 AM UTC
	}
	if c.Scheduler.StaleAfterDays <= 0 {
		c.Scheduler.StaleAfterDays = 7
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
