package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("uses defaults when environment is empty", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8091", cfg.ServerPort)
		assert.Equal(t, 5*time.Second, cfg.Site.CarouselInterval)
		assert.Equal(t, 1500*time.Millisecond, cfg.Site.SubmitDelay)
		assert.Equal(t, 3*time.Second, cfg.Site.NewsletterAck)
		assert.Empty(t, cfg.Webhook.URL)
	})

	t.Run("reads overrides from environment", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("CAROUSEL_INTERVAL", "2s")
		t.Setenv("FORM_WEBHOOK_URL", "https://hooks.example.com/forms")
		t.Setenv("FORM_WEBHOOK_RETRIES", "4")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.ServerPort)
		assert.Equal(t, 2*time.Second, cfg.Site.CarouselInterval)
		assert.Equal(t, "https://hooks.example.com/forms", cfg.Webhook.URL)
		assert.Equal(t, 4, cfg.Webhook.Retries)
	})

	t.Run("rejects a non-positive carousel interval", func(t *testing.T) {
		t.Setenv("CAROUSEL_INTERVAL", "0s")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects a short session secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "short")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.validate())
	assert.Equal(t, "northern-oak", cfg.Observability.ServiceName)
}
