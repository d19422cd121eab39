package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("admin.password", "secret")
	v.Set("admin.session_secret", "signing-key")

	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Admin.SessionTTL)
	assert.Equal(t, 399, cfg.Merch.BasePrice)
	assert.Equal(t, 50, cfg.Merch.ServiceCharge)
	assert.Equal(t, "club_events.notifications", cfg.RabbitMQ.QueueName)
	assert.False(t, cfg.IsProduction())
}

func TestParseConfigRequiresAdminSecrets(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	_, err := ParseConfig(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin.password")
	assert.Contains(t, err.Error(), "admin.session_secret")
}
