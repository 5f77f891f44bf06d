package transport

import "sync"

// PipeEnd is one side of an in-memory duplex link. Writes land in the
// peer's inbound buffer; reads drain this end's own buffer.
type PipeEnd struct {
	in   chan byte
	out  chan byte
	done chan struct{}
	once *sync.Once
}

// NewPipe returns two connected ends, each buffering up to n inbound
// bytes. Closing either end shuts down both directions.
func NewPipe(n int) (*PipeEnd, *PipeEnd) {
	if n <= 0 {
		n = 256
	}
	ab := make(chan byte, n)
	ba := make(chan byte, n)
	done := make(chan struct{})
	once := new(sync.Once)
	a := &PipeEnd{in: ba, out: ab, done: done, once: once}
	b := &PipeEnd{in: ab, out: ba, done: done, once: once}
	return a, b
}

// Write delivers p to the peer without blocking. A full peer buffer
// stops the write short with ErrPeerFull and the count already sent.
func (e *PipeEnd) Write(p []byte) (int, error) {
	for i, c := range p {
		select {
		case <-e.done:
			return i, ErrClosed
		default:
		}
		select {
		case e.out <- c:
		default:
			return i, ErrPeerFull
		}
	}
	return len(p), nil
}

// Available reports how many bytes are waiting on this end.
func (e *PipeEnd) Available() int { return len(e.in) }

// ReadByte returns the next inbound byte, blocking until one arrives or
// the pipe closes. Bytes buffered before Close remain readable.
func (e *PipeEnd) ReadByte() (byte, error) {
	select {
	case b := <-e.in:
		return b, nil
	case <-e.done:
		select {
		case b := <-e.in:
			return b, nil
		default:
			return 0, ErrClosed
		}
	}
}

func (e *PipeEnd) Flush() error {
	select {
	case <-e.done:
		return ErrClosed
	default:
	}
	return nil
}

// Close shuts down both ends of the pipe. It never fails.
func (e *PipeEnd) Close() error {
	e.once.Do(func() { close(e.done) })
	return nil
}
