package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type ObservabilityConfig struct {
	ServiceName  string
	MetricsAddr  string
	PprofAddr    string
	OTLPEndpoint string
}

type SiteConfig struct {
	SessionSecret    string
	CarouselInterval time.Duration
	SubmitDelay      time.Duration
	NewsletterAck    time.Duration
}

// WebhookConfig enables real form delivery when URL is set.
type WebhookConfig struct {
	URL     string
	Timeout time.Duration
	Retries int
}

type Config struct {
	ServerPort    string
	LogLevel      string
	Observability ObservabilityConfig
	Site          SiteConfig
	Webhook       WebhookConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8091")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVICE_NAME", "northern-oak")
	v.SetDefault("METRICS_ADDR", ":9092")
	v.SetDefault("PPROF_ADDR", ":6060")
	v.SetDefault("OTLP_ENDPOINT", "otel-collector:4318")
	v.SetDefault("SESSION_SECRET", "northern-oak-dev-session-secret")
	v.SetDefault("CAROUSEL_INTERVAL", 5*time.Second)
	v.SetDefault("SUBMIT_DELAY", 1500*time.Millisecond)
	v.SetDefault("NEWSLETTER_ACK", 3*time.Second)
	v.SetDefault("FORM_WEBHOOK_URL", "")
	v.SetDefault("FORM_WEBHOOK_TIMEOUT", 10*time.Second)
	v.SetDefault("FORM_WEBHOOK_RETRIES", 2)
}

// Load reads configuration from the environment. Call godotenv first if a
// .env file should be honoured.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := fromViper(v)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no environment is present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ServerPort: v.GetString("SERVER_PORT"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		Observability: ObservabilityConfig{
			ServiceName:  v.GetString("SERVICE_NAME"),
			MetricsAddr:  v.GetString("METRICS_ADDR"),
			PprofAddr:    v.GetString("PPROF_ADDR"),
			OTLPEndpoint: v.GetString("OTLP_ENDPOINT"),
		},
		Site: SiteConfig{
			SessionSecret:    v.GetString("SESSION_SECRET"),
			CarouselInterval: v.GetDuration("CAROUSEL_INTERVAL"),
			SubmitDelay:      v.GetDuration("SUBMIT_DELAY"),
			NewsletterAck:    v.GetDuration("NEWSLETTER_ACK"),
		},
		Webhook: WebhookConfig{
			URL:     v.GetString("FORM_WEBHOOK_URL"),
			Timeout: v.GetDuration("FORM_WEBHOOK_TIMEOUT"),
			Retries: v.GetInt("FORM_WEBHOOK_RETRIES"),
		},
	}
}

func (c *Config) validate() error {
	if c.ServerPort == "" {
		return errors.New("SERVER_PORT must not be empty")
	}
	if c.Site.CarouselInterval <= 0 {
		return errors.Errorf("CAROUSEL_INTERVAL must be positive, got %s", c.Site.CarouselInterval)
	}
	if c.Site.SubmitDelay < 0 {
		return errors.Errorf("SUBMIT_DELAY must not be negative, got %s", c.Site.SubmitDelay)
	}
	if len(c.Site.SessionSecret) < 16 {
		return errors.New("SESSION_SECRET must be at least 16 characters")
	}
	if c.Webhook.Retries < 0 {
		return errors.Errorf("FORM_WEBHOOK_RETRIES must not be negative, got %d", c.Webhook.Retries)
	}
	return nil
}
