package shield

import (
	"github.com/marktsai0316/virtual-shields-arduino/internal/hash"
	"github.com/marktsai0316/virtual-shields-arduino/internal/observability"
	"github.com/marktsai0316/virtual-shields-arduino/internal/protocol"
)

// Hashes of the system command words, computed from the wire literals.
var (
	pingHash    = hash.Sum(protocol.ResultPing)
	refreshHash = hash.Sum(protocol.ResultRefresh)
	connectHash = hash.Sum(protocol.ResultConnect)
	suspendHash = hash.Sum(protocol.ResultSuspend)
	resumeHash  = hash.Sum(protocol.ResultResume)
)

// dispatch decodes one completed frame and routes the event. Frames the
// parser rejects are dropped without surfacing anything upward; the
// channel is lossy by contract.
func (c *Client) dispatch(frame []byte) bool {
	fields, err := c.parser(frame)
	if err != nil {
		observability.RecordFrameDropped()
		c.log.Debug().Err(err).Bytes("frame", frame).Msg("frame dropped")
		return false
	}

	ev := Event{
		ID:       fields.Int32(protocol.FieldPid),
		ResultID: fields.Int64(protocol.FieldResultID),
		Tag:      fields.Str(protocol.FieldTag),
		Result:   fields.Str(protocol.FieldResult),
		Action:   fields.Str(protocol.FieldAction),
		Value:    fields.Float(protocol.FieldValue),
	}
	if ev.ID == 0 {
		ev.ID = fields.Int32(protocol.FieldID)
	}
	ev.ResultHash = hash.Sum(ev.Result)
	ev.ActionHash = hash.Sum(ev.Action)
	if t := fields.Str(protocol.FieldType); t != "" {
		ev.TypeTag = t[0]
	}

	// The retained slot is handed to every handler, so mutations made by
	// one are visible to the next and to RecentEvent callers.
	c.recent = ev
	if ev.TypeTag == protocol.SystemTypeTag {
		c.recent.Fields = fields
		c.dispatchSystem(&c.recent)
	} else if ev.TypeTag != 0 {
		c.routeToSensor(fields, &c.recent)
	}

	if c.OnEvent != nil {
		c.OnEvent(&c.recent)
	}
	return true
}

// dispatchSystem handles the ! control events by result hash. Unknown
// hashes are ignored; the companion may speak a newer dialect.
func (c *Client) dispatchSystem(ev *Event) {
	refresh := false
	switch ev.ResultHash {
	case pingHash:
		c.sendPong()
	case refreshHash:
		refresh = true
	case connectHash:
		refresh = true
		if c.OnConnect != nil {
			c.OnConnect(ev)
		}
	case suspendHash:
		if c.OnSuspend != nil {
			c.OnSuspend(ev)
		}
	case resumeHash:
		refresh = true
		if c.OnResume != nil {
			c.OnResume(ev)
		}
	}
	if refresh && c.OnRefresh != nil {
		c.OnRefresh(ev)
	}
}
