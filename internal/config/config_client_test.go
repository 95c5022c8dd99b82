package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConfig_ApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &ClientConfig{}

	cfg.applyDefaults()

	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultSessionDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHealthCheckInterval, cfg.Workers.HealthCheckInterval)
	assert.Equal(t, DefaultExportDir, cfg.App.ExportDir)
}

func TestClientConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        "http://backend:9000",
			RequestTimeout: time.Minute,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "/data/session.db"}},
		Workers: ClientWorkers{HealthCheckInterval: 10 * time.Second},
	}

	cfg.applyDefaults()

	assert.Equal(t, "http://backend:9000", cfg.Adapter.BaseURL)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/data/session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Second, cfg.Workers.HealthCheckInterval)
}

func TestClientConfig_Validate_DefaultsAreValid(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
}

func TestClientConfig_Validate_RejectsInMemoryDSN(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()
	cfg.Storage.DB.DSN = ":memory:"

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestClientConfig_Validate_RejectsMissingAddress(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()
	cfg.Adapter.BaseURL = ""

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestClientConfig_Validate_RejectsZeroHealthInterval(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()
	cfg.Workers.HealthCheckInterval = 0

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}
