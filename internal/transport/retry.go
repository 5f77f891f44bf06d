package transport

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
)

// OpenRetry opens the configured serial port, retrying failed opens with
// backoff. maxAttempts <= 0 retries until ctx is done. A missing port
// path fails immediately; no amount of retrying supplies one.
func OpenRetry(ctx context.Context, cfg SerialConfig, backoff BackoffConfig, maxAttempts int) (*SerialPort, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var attempt int
	for {
		attempt++
		p, err := OpenSerial(cfg)
		if err == nil {
			return p, nil
		}
		if errors.Is(err, ErrPortRequired) {
			return nil, err
		}
		log.Warn().
			Err(err).
			Str("port", cfg.Port).
			Int("attempt", attempt).
			Msg("serial open failed")
		if !shouldRetry(attempt, maxAttempts) {
			return nil, err
		}
		if err := sleepBackoff(ctx, NextBackoffDelay(backoff, attempt, rng)); err != nil {
			return nil, err
		}
	}
}

func shouldRetry(attempt, maxAttempts int) bool {
	if maxAttempts <= 0 {
		return true
	}
	return attempt < maxAttempts
}

func sleepBackoff(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
