package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when a value is missing from every
// configuration source. The backend address mirrors the FlashAI server's
// development default.
const (
	DefaultBaseURL             = "http://127.0.0.1:8000"
	DefaultRequestTimeout      = 15 * time.Second
	DefaultSessionDSN          = "flashai-client.db"
	DefaultHealthCheckInterval = 30 * time.Second
	DefaultExportDir           = "."
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version string shown in the UI.
	Version string
	// ExportDir is the directory PDF deck exports are written into.
	ExportDir string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the FlashAI backend endpoint.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local session database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used for the persisted credential.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// HealthCheckInterval defines how often the backend health probe runs.
	HealthCheckInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the backend address and request timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds a client-specific config view from the merged
// structured configuration, fills in defaults for anything left unset, and
// validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:   cfg.App.Version,
			ExportDir: cfg.App.ExportDir,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{HealthCheckInterval: cfg.Workers.HealthCheckInterval},
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultSessionDSN
	}
	if cfg.Workers.HealthCheckInterval <= 0 {
		cfg.Workers.HealthCheckInterval = DefaultHealthCheckInterval
	}
	if cfg.App.ExportDir == "" {
		cfg.App.ExportDir = DefaultExportDir
	}
}
