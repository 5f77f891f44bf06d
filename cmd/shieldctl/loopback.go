package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/marktsai0316/virtual-shields-arduino/internal/protocol"
	"github.com/marktsai0316/virtual-shields-arduino/internal/transport"
	"github.com/rs/zerolog/log"
)

const loopbackBufferBytes = 1024

// runCompanion plays the device on the far side of a pipe pair: it
// answers the start announce with CONNECT, sends a PING now and then,
// and streams demo telemetry under the demo tag.
func runCompanion(ctx context.Context, end *transport.PipeEnd) {
	defer end.Close()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	var frame []byte
	depth := 0
	seq := 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			seq++
			if seq%3 == 0 {
				companionSend(end, `{'Type':'!','Result':'PING'}`)
			} else {
				companionSend(end, fmt.Sprintf(`{'Type':'%c','Tag':'demo','Value':%d.5}`, demoTag, seq))
			}
		default:
		}

		if end.Available() == 0 {
			time.Sleep(time.Millisecond)
			continue
		}
		b, err := end.ReadByte()
		if err != nil {
			return
		}

		frame = append(frame, b)
		if b == '{' {
			depth++
		} else if b == '}' {
			depth--
			if depth < 1 {
				depth = 0
				companionHandle(end, string(frame))
				frame = frame[:0]
			}
		}
	}
}

func companionHandle(end *transport.PipeEnd, frame string) {
	switch {
	case frame == protocol.AwaitingMessage:
		// Probe with nothing queued; the ticker owns outbound traffic.
	case strings.Contains(frame, "'Action':'START'"):
		companionSend(end, `{'Type':'!','Result':'CONNECT'}`)
	case strings.Contains(frame, "'Action':'PONG'"):
		log.Debug().Msg("companion saw pong")
	default:
		log.Debug().Str("frame", frame).Msg("companion ignored frame")
	}
}

func companionSend(end *transport.PipeEnd, frame string) {
	if _, err := end.Write([]byte(frame)); err != nil {
		log.Debug().Err(err).Msg("companion write failed")
	}
}
