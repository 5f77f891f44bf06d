package shield

import (
	"io"

	"github.com/marktsai0316/virtual-shields-arduino/internal/observability"
	"github.com/marktsai0316/virtual-shields-arduino/internal/protocol"
	"github.com/marktsai0316/virtual-shields-arduino/internal/transport"
	"github.com/rs/zerolog"
)

// Client drives one serial protocol session. It is not safe for
// concurrent use; a single goroutine owns the poll loop and all writes.
type Client struct {
	// Lifecycle callbacks, fired from Connect and from system events
	// inside Poll. Nil callbacks are skipped.
	OnConnect func(*Event)
	OnRefresh func(*Event)
	OnSuspend func(*Event)
	OnResume  func(*Event)
	// OnEvent fires after every dispatched frame, system or sensor,
	// routed or not, always last.
	OnEvent func(*Event)

	// AllowAutoBlocking gates Block globally. With it off every Block
	// call returns immediately, whatever its blocking argument says.
	AllowAutoBlocking bool

	cfg    Config
	tr     transport.Transport
	enc    *protocol.Encoder
	clock  Clock
	parser Parser
	log    zerolog.Logger

	nextID     int32
	curService string

	// Receiver state. buf accumulates one frame; idx stops one short of
	// the buffer so an oversized frame truncates instead of resetting
	// mid-stream. depth tracks braces across the whole stream, dropped
	// bytes included.
	buf       []byte
	idx       int
	depth     int
	truncated bool
	baseline  int64

	requestMs    int64
	perMessageMs int64

	sensors []Sensor
	recent  Event
}

// New returns a client on the given transport. The config is completed
// with defaults; the transport is required.
func New(tr transport.Transport, cfg Config) (*Client, error) {
	if tr == nil {
		return nil, ErrNilTransport
	}
	cfg = cfg.WithDefaults()
	return &Client{
		AllowAutoBlocking: true,
		cfg:               cfg,
		tr:                tr,
		enc:               protocol.NewEncoder(tr),
		clock:             cfg.Clock,
		parser:            cfg.Parser,
		log:               cfg.Logger,
		nextID:            1,
		buf:               make([]byte, cfg.ReadBufferSize),
		requestMs:         cfg.RequestInterval.Milliseconds(),
		perMessageMs:      cfg.PerMessageInterval.Milliseconds(),
		sensors:           make([]Sensor, 0, cfg.MaxSensors),
	}, nil
}

// Connect flushes the link, announces this client to the companion, and
// runs the connect and refresh callbacks.
func (c *Client) Connect() error {
	if err := c.Flush(); err != nil {
		return err
	}
	if _, err := c.sendStart(); err != nil {
		return err
	}
	if c.OnConnect != nil {
		c.OnConnect(&c.recent)
	}
	if c.OnRefresh != nil {
		c.OnRefresh(&c.recent)
	}
	return nil
}

// BeginMessage allocates the next message id and streams the message
// preamble. The counter advances even when the write fails, and the id
// is returned alongside the error so callers can still correlate.
func (c *Client) BeginMessage(service string) (int32, error) {
	id := c.nextID
	c.nextID++
	if c.nextID < 0 {
		c.nextID = 1
	}
	c.curService = service
	return id, c.enc.BeginMessage(service, id)
}

// WriteValue streams one value into the open message.
func (c *Client) WriteValue(v protocol.Value) error {
	return c.enc.Encode(v)
}

// EndMessage terminates the open message and flushes the link.
func (c *Client) EndMessage() error {
	if err := c.enc.EndMessage(); err != nil {
		return err
	}
	if err := c.Flush(); err != nil {
		return err
	}
	observability.RecordMessageSent(c.curService)
	return nil
}

// Write sends one complete message of values under service.
func (c *Client) Write(service string, values ...protocol.Value) (int32, error) {
	return c.WriteAll(service, values, 0)
}

// WriteAll composes one message: the values in order, a single-character
// TYPE field when typeTag is nonzero, then any extra attributes. The
// allocated id is returned with the first write error, if any.
func (c *Client) WriteAll(service string, values []protocol.Value, typeTag byte, extras ...protocol.Value) (int32, error) {
	id, err := c.BeginMessage(service)
	if err != nil {
		return id, err
	}
	for _, v := range values {
		if err := c.enc.Encode(v); err != nil {
			return id, err
		}
	}
	if err := c.enc.Encode(protocol.Char(protocol.KeyType, typeTag)); err != nil {
		return id, err
	}
	for _, v := range extras {
		if err := c.enc.Encode(v); err != nil {
			return id, err
		}
	}
	return id, c.EndMessage()
}

// WriteRaw bypasses the encoder and writes s to the link as-is.
func (c *Client) WriteRaw(s string) error {
	_, err := io.WriteString(c.tr, s)
	return err
}

// Flush pushes buffered output to the device and re-arms the keep-alive
// baseline, due or not.
func (c *Client) Flush() error {
	err := c.tr.Flush()
	c.baseline = c.clock.Millis()
	return err
}

// RecentEvent returns the retained most recent event. The pointed-to
// value is overwritten by the next dispatched frame.
func (c *Client) RecentEvent() *Event {
	return &c.recent
}

// HasError reports whether ev carries an error result. A nil ev checks
// the most recent event.
func (c *Client) HasError(ev *Event) bool {
	if ev == nil {
		ev = &c.recent
	}
	return ev.ResultID < 0
}

// sendStart announces the client and its frame capacity. The companion
// answers with a CONNECT system event once it is ready.
func (c *Client) sendStart() (int32, error) {
	values := []protocol.Value{protocol.Literal(protocol.KeyAction, protocol.ResultStart)}
	return c.WriteAll(protocol.ServiceSystem, values, protocol.SystemTypeTag,
		protocol.Int(protocol.KeyLength, c.cfg.ReadBufferSize))
}

// sendPong answers an inbound PING. Write failures are dropped like any
// other transport fault on the inbound path.
func (c *Client) sendPong() {
	values := []protocol.Value{protocol.Literal(protocol.KeyAction, protocol.ResultPong)}
	if _, err := c.WriteAll(protocol.ServiceSystem, values, protocol.SystemTypeTag); err != nil {
		c.log.Debug().Err(err).Msg("pong write failed")
		return
	}
	observability.RecordPong()
}
