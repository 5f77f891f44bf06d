package transport

import "io"

// Transport is one duplex byte link to the companion device.
//
// Available reports how many bytes can be read right now without blocking;
// the shield client calls ReadByte only while Available is positive, so a
// blocking ReadByte is acceptable as long as Available is honest. Write and
// Flush cover the outbound side; Flush returns once buffered output has
// been pushed to the device.
type Transport interface {
	io.Writer
	Available() int
	ReadByte() (byte, error)
	Flush() error
	Close() error
}
