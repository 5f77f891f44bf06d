package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marktsai0316/virtual-shields-arduino/internal/logging"
	"github.com/marktsai0316/virtual-shields-arduino/internal/observability"
	"github.com/marktsai0316/virtual-shields-arduino/internal/protocol"
	"github.com/marktsai0316/virtual-shields-arduino/internal/shield"
	"github.com/marktsai0316/virtual-shields-arduino/internal/transport"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// demoTag is the sensor tag announced by the loopback companion and
// logged by the built-in telemetry sensor.
const demoTag byte = 'A'

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shieldctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "path to a TOML config file")
		port        = flag.String("port", "", "serial port path, e.g. /dev/ttyACM0")
		baud        = flag.Int("baud", 0, "serial baud rate")
		loopback    = flag.Bool("loopback", false, "talk to an in-memory companion instead of a serial port")
		runFor      = flag.Duration("run-for", 0, "exit after this duration; 0 runs until a signal")
		writeConfig = flag.String("write-config", "", "write a config template to this path and exit")
	)
	flag.Parse()

	logging.ConfigureRuntime()

	if *writeConfig != "" {
		return writeConfigTemplate(*writeConfig, false)
	}

	cfg := defaultAppConfig()
	if *configPath != "" {
		loaded, err := loadAppConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *port != "" {
		cfg.Serial.Port = *port
	}
	if *baud > 0 {
		cfg.Serial.BaudRate = *baud
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if *runFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *runFor)
		defer cancel()
	}

	if cfg.MetricsAddr != "" {
		observability.RegisterMetrics()
		go serveMetrics(ctx, cfg.MetricsAddr)
	}

	tr, err := openTransport(ctx, cfg, *loopback)
	if err != nil {
		return err
	}
	defer tr.Close()

	client, err := shield.New(tr, cfg.Shield)
	if err != nil {
		return err
	}
	client.AllowAutoBlocking = cfg.AllowAutoBlocking
	client.OnConnect = func(*shield.Event) {
		log.Info().Msg("companion connected")
	}
	client.OnRefresh = func(*shield.Event) {
		log.Debug().Msg("companion refresh")
	}
	client.OnSuspend = func(*shield.Event) {
		log.Info().Msg("companion suspended")
	}
	client.OnResume = func(*shield.Event) {
		log.Info().Msg("companion resumed")
	}

	if err := client.AddSensor(shield.SensorHandler{
		Tag: demoTag,
		Handle: func(fields protocol.Fields, ev *shield.Event) {
			log.Info().
				Int32("id", ev.ID).
				Str("tag", ev.Tag).
				Float64("value", ev.Value).
				Msg("telemetry")
		},
	}); err != nil {
		return err
	}

	if err := client.Connect(); err != nil {
		return err
	}
	log.Info().
		Str("port", cfg.Serial.Port).
		Bool("loopback", *loopback).
		Msg("shieldctl started")

	return pollLoop(ctx, client)
}

// openTransport picks the configured link: a retried serial open, or a
// pipe pair with the scripted companion on the far end.
func openTransport(ctx context.Context, cfg appConfig, loopback bool) (transport.Transport, error) {
	if loopback {
		local, remote := transport.NewPipe(loopbackBufferBytes)
		go runCompanion(ctx, remote)
		return local, nil
	}
	return transport.OpenRetry(ctx, cfg.Serial, transport.DefaultBackoff(), cfg.MaxConnectAttempts)
}

// pollLoop drives the client until the context ends. The sleep on idle
// passes keep the loop polite on a hosted OS; the protocol itself does
// not need it.
func pollLoop(ctx context.Context, client *shield.Client) error {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("shieldctl shutdown")
			return nil
		default:
		}
		if !client.Poll() {
			time.Sleep(time.Millisecond)
		}
	}
}

func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("metrics listener started")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Warn().Err(err).Str("addr", addr).Msg("metrics listener failed")
	}
}
