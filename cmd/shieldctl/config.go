package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/marktsai0316/virtual-shields-arduino/internal/shield"
	"github.com/marktsai0316/virtual-shields-arduino/internal/transport"
)

// appConfig is everything the binary needs for one client run.
type appConfig struct {
	Serial             transport.SerialConfig
	Shield             shield.Config
	AllowAutoBlocking  bool
	MaxConnectAttempts int
	MetricsAddr        string
}

func defaultAppConfig() appConfig {
	return appConfig{
		Serial:            transport.DefaultSerialConfig(),
		Shield:            shield.DefaultConfig(),
		AllowAutoBlocking: true,
	}
}

type fileConfig struct {
	Port                 string `toml:"port"`
	Baud                 int    `toml:"baud"`
	SettleDelay          string `toml:"settle_delay"`
	ReadBuffer           int    `toml:"read_buffer"`
	RequestInterval      string `toml:"request_interval"`
	RequestIntervalMS    int64  `toml:"request_interval_ms"`
	PerMessageInterval   string `toml:"per_message_interval"`
	PerMessageIntervalMS int64  `toml:"per_message_interval_ms"`
	MaxSensors           int    `toml:"max_sensors"`
	AllowAutoBlocking    bool   `toml:"allow_auto_blocking"`
	MaxConnectAttempts   int    `toml:"max_connect_attempts"`
	MetricsAddr          string `toml:"metrics_addr"`
}

func loadAppConfig(path string) (appConfig, error) {
	cfg := defaultAppConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return appConfig{}, fmt.Errorf("load shieldctl config: %w", err)
	}

	if meta.IsDefined("port") {
		cfg.Serial.Port = strings.TrimSpace(raw.Port)
	}

	if meta.IsDefined("baud") {
		cfg.Serial.BaudRate = raw.Baud
	}

	if meta.IsDefined("settle_delay") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.SettleDelay))
		if err != nil {
			return appConfig{}, fmt.Errorf("parse settle_delay: %w", err)
		}
		cfg.Serial.SettleDelay = d
	}

	if meta.IsDefined("read_buffer") {
		cfg.Shield.ReadBufferSize = raw.ReadBuffer
	}

	if meta.IsDefined("request_interval") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.RequestInterval))
		if err != nil {
			return appConfig{}, fmt.Errorf("parse request_interval: %w", err)
		}
		cfg.Shield.RequestInterval = d
	}

	if meta.IsDefined("request_interval_ms") {
		cfg.Shield.RequestInterval = time.Duration(raw.RequestIntervalMS) * time.Millisecond
	}

	if meta.IsDefined("per_message_interval") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.PerMessageInterval))
		if err != nil {
			return appConfig{}, fmt.Errorf("parse per_message_interval: %w", err)
		}
		cfg.Shield.PerMessageInterval = d
	}

	if meta.IsDefined("per_message_interval_ms") {
		cfg.Shield.PerMessageInterval = time.Duration(raw.PerMessageIntervalMS) * time.Millisecond
	}

	if meta.IsDefined("max_sensors") {
		cfg.Shield.MaxSensors = raw.MaxSensors
	}

	if meta.IsDefined("allow_auto_blocking") {
		cfg.AllowAutoBlocking = raw.AllowAutoBlocking
	}

	if meta.IsDefined("max_connect_attempts") {
		cfg.MaxConnectAttempts = raw.MaxConnectAttempts
	}

	if meta.IsDefined("metrics_addr") {
		cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	}

	return cfg, nil
}

func writeConfigTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}

const configTemplate = `port = "/dev/ttyACM0"
baud = 115200
settle_delay = "500ms"

read_buffer = 128
request_interval = "1s"
per_message_interval = "25ms"
max_sensors = 10
allow_auto_blocking = true

max_connect_attempts = 0

# Uncomment to expose prometheus counters.
# metrics_addr = "127.0.0.1:9109"
`
