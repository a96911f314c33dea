// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config
// file. Durations accept both Go duration strings ("30s") and nanosecond
// numbers.
type StructuredJSONConfig struct {
	App struct {
		Environment    string `json:"environment"`
		SessionSecret  string `json:"session_secret"`
		AdminUsername  string `json:"admin_username"`
		AdminPassword  string `json:"admin_password"`
		SeedSampleData bool   `json:"seed_sample_data"`
		LogLevel       string `json:"log_level"`
		Version        string `json:"version"`
	} `json:"app,omitempty"`

	Session struct {
		TTL             Duration `json:"ttl"`
		CleanupInterval Duration `json:"cleanup_interval"`
		CookieName      string   `json:"cookie_name"`
	} `json:"session,omitempty"`

	Credentials struct {
		ScryptN    int `json:"scrypt_n"`
		ScryptR    int `json:"scrypt_r"`
		ScryptP    int `json:"scrypt_p"`
		KeyLength  int `json:"key_length"`
		SaltLength int `json:"salt_length"`
	} `json:"credentials,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	WhatsApp struct {
		APIKey  string   `json:"api_key"`
		PhoneID string   `json:"phone_id"`
		BaseURL string   `json:"base_url"`
		Timeout Duration `json:"timeout"`
	} `json:"whatsapp,omitempty"`
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
			Environment:    jsonCfg.App.Environment,
			SessionSecret:  jsonCfg.App.SessionSecret,
			AdminUsername:  jsonCfg.App.AdminUsername,
			AdminPassword:  jsonCfg.App.AdminPassword,
			SeedSampleData: jsonCfg.App.SeedSampleData,
			LogLevel:       jsonCfg.App.LogLevel,
			Version:        jsonCfg.App.Version,
		},
		Session: Session{
			TTL:             time.Duration(jsonCfg.Session.TTL),
			CleanupInterval: time.Duration(jsonCfg.Session.CleanupInterval),
			CookieName:      jsonCfg.Session.CookieName,
		},
		Credentials: Credentials{
			ScryptN:    jsonCfg.Credentials.ScryptN,
			ScryptR:    jsonCfg.Credentials.ScryptR,
			ScryptP:    jsonCfg.Credentials.ScryptP,
			KeyLength:  jsonCfg.Credentials.KeyLength,
			SaltLength: jsonCfg.Credentials.SaltLength,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		WhatsApp: WhatsApp{
			APIKey:  jsonCfg.WhatsApp.APIKey,
			PhoneID: jsonCfg.WhatsApp.PhoneID,
			BaseURL: jsonCfg.WhatsApp.BaseURL,
			Timeout: time.Duration(jsonCfg.WhatsApp.Timeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
