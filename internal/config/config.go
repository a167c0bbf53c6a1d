// Package config loads process configuration from the environment.
//
// Values come from the OS environment, falling back to a .env file in the
// working directory. Loading fails on unparsable or invalid values.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Port            string        `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	TLSCertFile     string        `envconfig:"TLS_CERT_FILE" validate:"required_with=TLSKeyFile"`
	TLSKeyFile      string        `envconfig:"TLS_KEY_FILE" validate:"required_with=TLSCertFile"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`

	// Landing page
	SiteOwner   string `envconfig:"SITE_OWNER" default:"Himanshu Deshpande" validate:"required"`
	SiteTagline string `envconfig:"SITE_TAGLINE" default:"Electrical engineer. I build small tools for everyday design checks."`
	// SiteLinks entries are "Label|https://url".
	SiteLinks []string `envconfig:"SITE_LINKS" validate:"dive,contains=0x7C"`

	// Notes (disabled when DATABASE_URL is empty)
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Admin session
	TokenKey          string `envconfig:"TOKEN_KEY" validate:"omitempty,min=16"`
	AdminLogin        string `envconfig:"ADMIN_LOGIN" default:"admin"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
	CookieSecure      bool   `envconfig:"COOKIE_SECURE" default:"true"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
	RateLimitRPS       float64  `envconfig:"RATE_LIMIT_RPS" default:"1" validate:"gt=0"`
	RateLimitBurst     int      `envconfig:"RATE_LIMIT_BURST" default:"3" validate:"min=1"`

	// Owner notification for new notes (optional)
	TelegramToken  string `envconfig:"TELEGRAM_TOKEN"`
	TelegramChatID int64  `envconfig:"TELEGRAM_CHAT_ID" validate:"required_with=TelegramToken"`
}

type Link struct {
	Label string
	URL   string
}

func (c *Config) NotesEnabled() bool {
	return c.DatabaseURL != ""
}

func (c *Config) AdminEnabled() bool {
	return c.TokenKey != "" && c.AdminPasswordHash != ""
}

func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

func (c *Config) Links() []Link {
	links := make([]Link, 0, len(c.SiteLinks))
	for _, raw := range c.SiteLinks {
		label, url, ok := strings.Cut(raw, "|")
		if !ok {
			continue
		}
		links = append(links, Link{Label: strings.TrimSpace(label), URL: strings.TrimSpace(url)})
	}
	return links
}

// ErrorType categorizes configuration failures.
type ErrorType string

const (
	ErrParsing    ErrorType = "PARSING_FAILED"
	ErrValidation ErrorType = "VALIDATION_FAILED"
)

type ConfigError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads .env (if present) and the environment. Existing environment
// variables win over .env entries.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &ConfigError{Type: ErrParsing, Message: "failed to process environment configuration", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.AdminPasswordHash != "" && c.TokenKey == "" {
		return &ConfigError{Type: ErrValidation, Message: "invalid fields: TokenKey (required with AdminPasswordHash)"}
	}
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return &ConfigError{
			Type:    ErrValidation,
			Message: "invalid fields: " + strings.Join(fields, ", "),
			Err:     err,
		}
	}
	return &ConfigError{Type: ErrValidation, Message: "configuration validation failed", Err: err}
}
