package transport

import "errors"

var (
	ErrClosed       = errors.New("transport: closed")
	ErrPeerFull     = errors.New("transport: peer buffer full")
	ErrPortRequired = errors.New("transport: serial port path required")
)
