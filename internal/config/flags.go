package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend address, e.g. http://127.0.0.1:8000 or host:port
//	-d session database path (SQLite file)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-health-interval backend health-check interval (e.g., "30s")
//	-export-dir directory for PDF deck exports
func ParseFlags() *StructuredConfig {
	var backendAddress string
	var sessionDBPath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var healthInterval time.Duration
	var exportDir string

	flag.StringVar(&backendAddress, "a", "", "Backend address, e.g. http://127.0.0.1:8000")
	flag.StringVar(&sessionDBPath, "d", "", "Session database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&healthInterval, "health-interval", 0, "Health-check interval (e.g., 30s)")
	flag.StringVar(&exportDir, "export-dir", "", "Directory for PDF deck exports")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ExportDir: exportDir,
		},
		Adapter: Adapter{
			BaseURL:        backendAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: sessionDBPath,
			},
		},
		Workers: Workers{
			HealthCheckInterval: healthInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
