package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a control plane base URL
//	-daemon-url local connection daemon base URL
//	-d local database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-update-channel update checker release channel
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-validate-timeout boot session validation timeout
//	-start-timeout background service start timeout
//	-status-poll-interval daemon status poll base interval
//	-event-poll-interval control plane event poll base interval
//	-jitter-fraction periodic check jitter fraction (0..1)
func ParseFlags() *StructuredConfig {
	var controlURL string
	var daemonURL string
	var databaseDSN string
	var jsonConfigPath string
	var updateChannel string
	var requestTimeout time.Duration
	var validateTimeout time.Duration
	var startTimeout time.Duration
	var statusPollInterval time.Duration
	var eventPollInterval time.Duration
	var jitterFraction float64

	flag.StringVar(&controlURL, "a", "", "Control plane base URL")
	flag.StringVar(&daemonURL, "daemon-url", "", "Connection daemon base URL")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&updateChannel, "update-channel", "", "Update checker release channel")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&validateTimeout, "validate-timeout", 0, "Session validation timeout")
	flag.DurationVar(&startTimeout, "start-timeout", 0, "Background service start timeout")
	flag.DurationVar(&statusPollInterval, "status-poll-interval", 0, "Status poll base interval")
	flag.DurationVar(&eventPollInterval, "event-poll-interval", 0, "Event poll base interval")
	flag.Float64Var(&jitterFraction, "jitter-fraction", 0, "Periodic check jitter fraction")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			UpdateChannel: updateChannel,
		},
		Adapter: Adapter{
			ControlURL:      controlURL,
			DaemonURL:       daemonURL,
			RequestTimeout:  requestTimeout,
			ValidateTimeout: validateTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Launcher: Launcher{
			StartTimeout: startTimeout,
		},
		Checks: Checks{
			StatusPollInterval: statusPollInterval,
			EventPollInterval:  eventPollInterval,
			JitterFraction:     jitterFraction,
		},
		JSONFilePath: jsonConfigPath,
	}
}
