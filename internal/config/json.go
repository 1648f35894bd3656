package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		SessionTTL Duration `json:"session_ttl"`
		Version    string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Cache struct {
			DSN string `json:"dsn"`
		} `json:"cache,omitempty"`

		Keystore struct {
			Backend string `json:"backend"`
			Service string `json:"service"`
			Path    string `json:"path"`
		} `json:"keystore,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"workers,omitempty"`
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
			SessionTTL: time.Duration(jsonCfg.App.SessionTTL),
			Version:    jsonCfg.App.Version,
		},
		Storage: Storage{
			Cache: Cache{
				DSN: jsonCfg.Storage.Cache.DSN,
			},
			Keystore: Keystore{
				Backend: jsonCfg.Storage.Keystore.Backend,
				Service: jsonCfg.Storage.Keystore.Service,
				Path:    jsonCfg.Storage.Keystore.Path,
			},
		},
		Workers: Workers{
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
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
