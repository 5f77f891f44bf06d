package shield

import (
	"github.com/marktsai0316/virtual-shields-arduino/internal/observability"
	"github.com/marktsai0316/virtual-shields-arduino/internal/protocol"
)

// Poll runs one receiver step and reports whether a frame was dispatched.
//
// With nothing readable and the link idle past RequestInterval, Poll
// writes the {} probe that asks a half-duplex companion for its next
// queued message. It then consumes readable bytes into the frame buffer,
// tracking brace depth, and hands at most one completed frame to
// dispatch; surplus bytes stay on the link for the next call. Any
// consumed traffic pulls the next probe in to PerMessageInterval so
// bursts keep flowing.
func (c *Client) Poll() bool {
	if c.tr.Available() == 0 && c.clock.Millis() > c.baseline+c.requestMs {
		if err := c.WriteRaw(protocol.AwaitingMessage); err != nil {
			c.log.Debug().Err(err).Msg("probe write failed")
		} else {
			observability.RecordProbe()
		}
		c.baseline = c.clock.Millis()
	}

	dispatched := false
	hadData := false
	for c.tr.Available() > 0 {
		b, err := c.tr.ReadByte()
		if err != nil {
			c.log.Debug().Err(err).Msg("read failed")
			break
		}
		hadData = true

		// One slot is held back so the closing brace of an oversized
		// frame still fits; everything past that is dropped while depth
		// tracking continues, keeping the stream in sync.
		if c.idx < len(c.buf)-1 {
			c.buf[c.idx] = b
			c.idx++
		} else {
			c.truncated = true
		}

		if b == '{' {
			c.depth++
		} else if b == '}' {
			c.depth--
			if c.depth < 1 {
				c.depth = 0
				frame := c.buf[:c.idx]
				c.idx = 0
				observability.RecordFrameReceived()
				if c.truncated {
					c.truncated = false
					observability.RecordFrameTruncated()
				}
				dispatched = c.dispatch(frame)
				break
			}
		}
	}

	if hadData {
		c.baseline = c.clock.Millis() - c.requestMs + c.perMessageMs
	}
	return dispatched
}
