package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/leavedesk/leavedesk/internal/verify"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv             string        `envconfig:"APP_ENV" default:"development"`
	AppAddr            string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout     time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout    time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout  time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`
	AppShutdownTimeout time.Duration `envconfig:"APP_SHUTDOWN_TIMEOUT" default:"10s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	RateLimitRequests       int           `envconfig:"RATE_LIMIT_REQUESTS" default:"100"`
	RateLimitWindow         time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"15m"`
	LookupRateLimitRequests int           `envconfig:"LOOKUP_RATE_LIMIT_REQUESTS" default:"20"`
	LookupRateLimitWindow   time.Duration `envconfig:"LOOKUP_RATE_LIMIT_WINDOW" default:"1m"`

	CaptchaSecret    string        `envconfig:"CAPTCHA_SECRET"`
	CaptchaVerifyURL string        `envconfig:"CAPTCHA_VERIFY_URL" default:"https://www.google.com/recaptcha/api/siteverify"`
	CaptchaTimeout   time.Duration `envconfig:"CAPTCHA_TIMEOUT" default:"5s"`
	CaptchaMinScore  float64       `envconfig:"CAPTCHA_MIN_SCORE" default:"0.5"`
	CaptchaReplayTTL time.Duration `envconfig:"CAPTCHA_REPLAY_TTL" default:"2m"`

	RedisAddr string `envconfig:"REDIS_ADDR"`

	StaticDir string `envconfig:"STATIC_DIR"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0 {
		return errors.New("rate limit requests and window must be positive")
	}
	if c.LookupRateLimitRequests <= 0 || c.LookupRateLimitWindow <= 0 {
		return errors.New("lookup rate limit requests and window must be positive")
	}
	if c.CaptchaMinScore <= 0 || c.CaptchaMinScore > 1 {
		return errors.New("captcha min score must be greater than 0 and at most 1")
	}
	if c.CaptchaTimeout <= 0 {
		return errors.New("captcha timeout must be positive")
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// VerificationMode derives the bot-verification mode from the captcha secret.
func (c *Config) VerificationMode() verify.Mode {
	if c == nil || c.CaptchaSecret == "" {
		return verify.Disabled()
	}
	return verify.Enabled(c.CaptchaSecret)
}
