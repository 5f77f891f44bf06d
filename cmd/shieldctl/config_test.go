package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppConfigDefaults(t *testing.T) {
	path := writeTestConfig(t, "")

	cfg, err := loadAppConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Serial.BaudRate != 115200 {
		t.Fatalf("baud got=%d, want 115200", cfg.Serial.BaudRate)
	}
	if cfg.Shield.ReadBufferSize != 128 {
		t.Fatalf("read buffer got=%d, want 128", cfg.Shield.ReadBufferSize)
	}
	if cfg.Shield.RequestInterval != time.Second {
		t.Fatalf("request interval got=%v, want 1s", cfg.Shield.RequestInterval)
	}
	if !cfg.AllowAutoBlocking {
		t.Fatalf("expected auto blocking enabled by default")
	}
	if cfg.MetricsAddr != "" {
		t.Fatalf("metrics addr got=%q, want empty", cfg.MetricsAddr)
	}
}

func TestLoadAppConfigOverrides(t *testing.T) {
	path := writeTestConfig(t, `
port = " /dev/ttyUSB1 "
baud = 57600
settle_delay = "250ms"
read_buffer = 256
request_interval = "2s"
per_message_interval = "40ms"
max_sensors = 4
allow_auto_blocking = false
max_connect_attempts = 5
metrics_addr = "127.0.0.1:9109"
`)

	cfg, err := loadAppConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Serial.Port != "/dev/ttyUSB1" {
		t.Fatalf("port got=%q", cfg.Serial.Port)
	}
	if cfg.Serial.BaudRate != 57600 {
		t.Fatalf("baud got=%d", cfg.Serial.BaudRate)
	}
	if cfg.Serial.SettleDelay != 250*time.Millisecond {
		t.Fatalf("settle delay got=%v", cfg.Serial.SettleDelay)
	}
	if cfg.Shield.ReadBufferSize != 256 {
		t.Fatalf("read buffer got=%d", cfg.Shield.ReadBufferSize)
	}
	if cfg.Shield.RequestInterval != 2*time.Second {
		t.Fatalf("request interval got=%v", cfg.Shield.RequestInterval)
	}
	if cfg.Shield.PerMessageInterval != 40*time.Millisecond {
		t.Fatalf("per message interval got=%v", cfg.Shield.PerMessageInterval)
	}
	if cfg.Shield.MaxSensors != 4 {
		t.Fatalf("max sensors got=%d", cfg.Shield.MaxSensors)
	}
	if cfg.AllowAutoBlocking {
		t.Fatalf("expected auto blocking disabled")
	}
	if cfg.MaxConnectAttempts != 5 {
		t.Fatalf("max connect attempts got=%d", cfg.MaxConnectAttempts)
	}
	if cfg.MetricsAddr != "127.0.0.1:9109" {
		t.Fatalf("metrics addr got=%q", cfg.MetricsAddr)
	}
}

func TestLoadAppConfigIntervalMillis(t *testing.T) {
	path := writeTestConfig(t, `
request_interval_ms = 1200
per_message_interval_ms = 10
`)

	cfg, err := loadAppConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Shield.RequestInterval != 1200*time.Millisecond {
		t.Fatalf("request interval got=%v", cfg.Shield.RequestInterval)
	}
	if cfg.Shield.PerMessageInterval != 10*time.Millisecond {
		t.Fatalf("per message interval got=%v", cfg.Shield.PerMessageInterval)
	}
}

func TestLoadAppConfigBadDuration(t *testing.T) {
	path := writeTestConfig(t, `
request_interval = "soon"
`)

	if _, err := loadAppConfig(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestWriteConfigTemplateRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := writeConfigTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := writeConfigTemplate(path, false); err == nil {
		t.Fatalf("expected overwrite refusal")
	}
	if err := writeConfigTemplate(path, true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	cfg, err := loadAppConfig(path)
	if err != nil {
		t.Fatalf("template should load: %v", err)
	}
	if cfg.Serial.Port != "/dev/ttyACM0" {
		t.Fatalf("template port got=%q", cfg.Serial.Port)
	}
}
