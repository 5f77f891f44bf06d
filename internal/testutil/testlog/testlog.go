package testlog

import (
	"testing"

	"github.com/marktsai0316/virtual-shields-arduino/internal/logging"
	"github.com/rs/zerolog/log"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Debug().Str("test", t.Name()).Msg("start")
}
