package protocol

import "errors"

var (
	ErrEmptyFrame  = errors.New("protocol: empty frame")
	ErrFrameSyntax = errors.New("protocol: malformed frame")
	ErrColorSyntax = errors.New("protocol: malformed color")
)
