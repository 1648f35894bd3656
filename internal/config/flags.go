package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN for the local encrypted cache
//	-c/-config json file path with configs
//	-keystore-backend keystore backend (keyring, file, memory)
//	-keystore-service OS keyring service namespace
//	-keystore-path settings database path for the file backend
//	-session-ttl session lifetime (e.g., "1h", "30m")
//	-sweep-interval expired-session sweep interval (e.g., "1m")
func ParseFlags() *StructuredConfig {
	var cacheDSN string
	var jsonConfigPath string
	var keystoreBackend string
	var keystoreService string
	var keystorePath string
	var sessionTTL time.Duration
	var sweepInterval time.Duration

	flag.StringVar(&cacheDSN, "d", "", "Local cache database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&keystoreBackend, "keystore-backend", "", "Keystore backend (keyring, file, memory)")
	flag.StringVar(&keystoreService, "keystore-service", "", "OS keyring service namespace")
	flag.StringVar(&keystorePath, "keystore-path", "", "Settings database path for the file backend")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 1h, 30m)")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired-session sweep interval (e.g., 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionTTL: sessionTTL,
		},
		Storage: Storage{
			Cache: Cache{
				DSN: cacheDSN,
			},
			Keystore: Keystore{
				Backend: keystoreBackend,
				Service: keystoreService,
				Path:    keystorePath,
			},
		},
		Workers:      Workers{SweepInterval: sweepInterval},
		JSONFilePath: jsonConfigPath,
	}
}
