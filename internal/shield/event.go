package shield

import "github.com/marktsai0316/virtual-shields-arduino/internal/protocol"

// Event is one decoded inbound frame.
type Event struct {
	// ID correlates the frame with an outbound message id. It comes from
	// the Pid field, falling back to Id when Pid is absent or zero.
	ID int32
	// ResultID carries the wide result correlation code. Negative values
	// mark errors.
	ResultID int64
	// TypeTag is the first byte of the Type field, zero when absent.
	TypeTag byte

	Tag    string
	Result string
	Action string
	Value  float64

	// ResultHash and ActionHash are Larson hashes of the Result and
	// Action strings, precomputed so handlers can switch on them.
	ResultHash uint32
	ActionHash uint32

	// Fields retains the raw parsed frame. It is populated for system
	// events only; sensor handlers receive the fields as an argument.
	Fields protocol.Fields
}

// SensorAction selects how the companion reports readings after a sensor
// request. The ordinals are part of the wire contract.
type SensorAction int

const (
	ActionStop SensorAction = iota
	ActionOnce
	ActionStart
	ActionOnceOnChange
)
