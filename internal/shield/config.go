package shield

import (
	"time"

	"github.com/marktsai0316/virtual-shields-arduino/internal/protocol"
	"github.com/rs/zerolog"
)

// Clock reports monotonic milliseconds. The default clock counts from
// client creation, matching a device that counts from reset.
type Clock interface {
	Millis() int64
}

// Parser extracts named fields from one completed frame.
type Parser func(frame []byte) (protocol.Fields, error)

// Config holds the client collaborators and tuning knobs.
type Config struct {
	// ReadBufferSize caps one inbound frame. Frames larger than this
	// complete truncated. The size is announced to the companion.
	ReadBufferSize int
	// RequestInterval is the idle gap before a keep-alive probe.
	RequestInterval time.Duration
	// PerMessageInterval shortens the gap right after inbound traffic,
	// pipelining message bursts.
	PerMessageInterval time.Duration
	// MaxSensors caps the dispatch registry.
	MaxSensors int

	Parser Parser
	Clock  Clock
	// Logger receives drop and fault diagnostics. The default discards
	// them; the protocol itself never reports drops upward.
	Logger zerolog.Logger
}

// DefaultConfig returns the tuning the companion firmware assumes.
func DefaultConfig() Config {
	return Config{
		ReadBufferSize:     128,
		RequestInterval:    time.Second,
		PerMessageInterval: 25 * time.Millisecond,
		MaxSensors:         10,
		Parser:             protocol.ParseFields,
		Logger:             zerolog.Nop(),
	}
}

// WithDefaults fills zero fields from DefaultConfig. The clock defaults
// to a fresh monotonic clock, so two clients never share a baseline.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.ReadBufferSize <= 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.RequestInterval <= 0 {
		c.RequestInterval = d.RequestInterval
	}
	if c.PerMessageInterval <= 0 {
		c.PerMessageInterval = d.PerMessageInterval
	}
	if c.MaxSensors <= 0 {
		c.MaxSensors = d.MaxSensors
	}
	if c.Parser == nil {
		c.Parser = d.Parser
	}
	if c.Clock == nil {
		c.Clock = NewMonotonicClock()
	}
	return c
}

type monotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a clock measuring milliseconds since its
// creation.
func NewMonotonicClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}
