package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		UpdateChannel string `json:"update_channel"`
		Version       string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		ControlURL      string   `json:"control_url"`
		DaemonURL       string   `json:"daemon_url"`
		RequestTimeout  Duration `json:"request_timeout"`
		ValidateTimeout Duration `json:"validate_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Launcher struct {
		StartTimeout Duration `json:"start_timeout"`
	} `json:"launcher,omitempty"`

	Checks struct {
		StatusPollInterval Duration `json:"status_poll_interval"`
		EventPollInterval  Duration `json:"event_poll_interval"`
		JitterFraction     float64  `json:"jitter_fraction"`
	} `json:"checks,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			UpdateChannel: jsonCfg.App.UpdateChannel,
			Version:       jsonCfg.App.Version,
		},
		Adapter: Adapter{
			ControlURL:      jsonCfg.Adapter.ControlURL,
			DaemonURL:       jsonCfg.Adapter.DaemonURL,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			ValidateTimeout: time.Duration(jsonCfg.Adapter.ValidateTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Launcher: Launcher{
			StartTimeout: time.Duration(jsonCfg.Launcher.StartTimeout),
		},
		Checks: Checks{
			StatusPollInterval: time.Duration(jsonCfg.Checks.StatusPollInterval),
			EventPollInterval:  time.Duration(jsonCfg.Checks.EventPollInterval),
			JitterFraction:     jsonCfg.Checks.JitterFraction,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
