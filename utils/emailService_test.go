package utils

import (
	"biotrunk/config"
	"errors"
	"testing"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetMailClient() {
	mailMu.Lock()
	mailClient = nil
	mailMu.Unlock()
}

func TestGetMailClientMissingConfig(t *testing.T) {
	orig := config.AppConfig
	defer func() { config.AppConfig = orig; resetMailClient() }()
	resetMailClient()

	config.AppConfig = &config.Config{}

	_, err := getMailClient()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestGetMailClientOwnsItsTransport(t *testing.T) {
	orig := config.AppConfig
	defer func() { config.AppConfig = orig; resetMailClient() }()
	resetMailClient()

	config.AppConfig = &config.Config{
		EmailSender:    "noreply@biologytrunk.com",
		SendgridAPIKey: "SG.test-key",
	}

	client, err := getMailClient()
	require.NoError(t, err)
	require.NotNil(t, client)

	// The timeout lives on our own transport, not on the library default
	assert.Equal(t, 30*time.Second, client.http.HTTPClient.Timeout)
	assert.Same(t, rest.DefaultClient, sendgrid.DefaultClient)

	// Singleton: second call hands back the same transport
	again, err := getMailClient()
	require.NoError(t, err)
	assert.Same(t, client, again)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "asha...", maskEmail("asha@example.com"))
	assert.Equal(t, "***", maskEmail("a@b"))
}
