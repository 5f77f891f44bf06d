package transport

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.bug.st/serial"
)

// SerialConfig describes how to open the device link.
type SerialConfig struct {
	// Port is the device path, e.g. /dev/ttyACM0 or COM3.
	Port string
	// BaudRate is the line speed. Companion firmware defaults to 115200.
	BaudRate int
	// SettleDelay is how long to wait after opening before first use.
	// Boards that reset on port open need this to finish booting.
	SettleDelay time.Duration
	// PumpBuffer is the capacity of the inbound byte buffer.
	PumpBuffer int
}

// DefaultSerialConfig returns the settings used when none are provided.
func DefaultSerialConfig() SerialConfig {
	return SerialConfig{
		BaudRate:    115200,
		SettleDelay: 500 * time.Millisecond,
		PumpBuffer:  512,
	}
}

// WithDefaults fills zero fields from DefaultSerialConfig.
func (c SerialConfig) WithDefaults() SerialConfig {
	d := DefaultSerialConfig()
	if c.BaudRate <= 0 {
		c.BaudRate = d.BaudRate
	}
	if c.SettleDelay <= 0 {
		c.SettleDelay = d.SettleDelay
	}
	if c.PumpBuffer <= 0 {
		c.PumpBuffer = d.PumpBuffer
	}
	return c
}

// SerialPort adapts a hardware serial port to the Transport contract.
//
// A pump goroutine moves bytes from the port into a buffered channel so
// that Available can answer without touching the device. ReadByte drains
// the channel; once Close has run and the channel is empty it reports
// ErrClosed.
type SerialPort struct {
	port  serial.Port
	bytes chan byte
	done  chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// OpenSerial opens the configured port in 8N1 framing, waits out the
// settle delay, discards any boot noise, and starts the reader pump.
func OpenSerial(cfg SerialConfig) (*SerialPort, error) {
	cfg = cfg.WithDefaults()
	if cfg.Port == "" {
		return nil, ErrPortRequired
	}

	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", cfg.Port, err)
	}
	time.Sleep(cfg.SettleDelay)
	if err := port.ResetInputBuffer(); err != nil {
		port.Close()
		return nil, fmt.Errorf("transport: reset input buffer: %w", err)
	}

	p := &SerialPort{
		port:  port,
		bytes: make(chan byte, cfg.PumpBuffer),
		done:  make(chan struct{}),
	}
	go p.pump()

	log.Debug().
		Str("port", cfg.Port).
		Int("baud", cfg.BaudRate).
		Msg("serial port open")
	return p, nil
}

func (p *SerialPort) pump() {
	defer close(p.bytes)
	buf := make([]byte, 64)
	for {
		n, err := p.port.Read(buf)
		for i := 0; i < n; i++ {
			select {
			case p.bytes <- buf[i]:
			case <-p.done:
				return
			}
		}
		if err != nil {
			select {
			case <-p.done:
			default:
				log.Debug().Err(err).Msg("serial pump stopped")
			}
			return
		}
	}
}

// Available reports how many pumped bytes are waiting to be read.
func (p *SerialPort) Available() int { return len(p.bytes) }

// ReadByte returns the next pumped byte. Bytes already buffered remain
// readable after Close; only a drained, closed port reports ErrClosed.
func (p *SerialPort) ReadByte() (byte, error) {
	select {
	case b, ok := <-p.bytes:
		if !ok {
			return 0, ErrClosed
		}
		return b, nil
	case <-p.done:
		select {
		case b, ok := <-p.bytes:
			if !ok {
				return 0, ErrClosed
			}
			return b, nil
		default:
			return 0, ErrClosed
		}
	}
}

func (p *SerialPort) Write(b []byte) (int, error) {
	select {
	case <-p.done:
		return 0, ErrClosed
	default:
	}
	return p.port.Write(b)
}

// Flush blocks until buffered output has been handed to the device.
func (p *SerialPort) Flush() error {
	select {
	case <-p.done:
		return ErrClosed
	default:
	}
	return p.port.Drain()
}

// Close releases the port. Closing also unblocks the pump goroutine.
func (p *SerialPort) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
		p.closeErr = p.port.Close()
	})
	return p.closeErr
}
