package shield

import "github.com/marktsai0316/virtual-shields-arduino/internal/protocol"

// Sensor consumes inbound events routed by a one-character type tag.
type Sensor interface {
	TypeTag() byte
	OnEvent(fields protocol.Fields, ev *Event)
}

// SensorHandler adapts a func to the Sensor interface.
type SensorHandler struct {
	Tag    byte
	Handle func(fields protocol.Fields, ev *Event)
}

func (h SensorHandler) TypeTag() byte { return h.Tag }

func (h SensorHandler) OnEvent(fields protocol.Fields, ev *Event) {
	if h.Handle != nil {
		h.Handle(fields, ev)
	}
}

// AddSensor appends a sensor to the dispatch scan. The scan is ordered
// and first match wins, so two sensors sharing a tag shadow each other
// by registration order. Registration past capacity is rejected without
// evicting anything.
func (c *Client) AddSensor(s Sensor) error {
	if s == nil {
		return ErrNilSensor
	}
	if len(c.sensors) >= c.cfg.MaxSensors {
		return ErrRegistryFull
	}
	c.sensors = append(c.sensors, s)
	return nil
}

// SensorCount reports how many sensors are registered.
func (c *Client) SensorCount() int {
	return len(c.sensors)
}

// routeToSensor delivers one event to the first sensor whose tag matches.
// No match drops the event.
func (c *Client) routeToSensor(fields protocol.Fields, ev *Event) {
	for _, s := range c.sensors {
		if s.TypeTag() == ev.TypeTag {
			s.OnEvent(fields, ev)
			return
		}
	}
}
