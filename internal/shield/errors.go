package shield

import "errors"

var (
	ErrNilTransport = errors.New("shield: nil transport")
	ErrNilSensor    = errors.New("shield: nil sensor")
	ErrRegistryFull = errors.New("shield: sensor registry full")
)
