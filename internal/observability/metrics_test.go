package observability

import (
	"testing"

	"github.com/marktsai0316/virtual-shields-arduino/internal/testutil/testlog"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	RecordFrameReceived()
	RecordFrameTruncated()
	RecordFrameDropped()
	RecordProbe()
	RecordMessageSent("SYSTEM")
	RecordMessageSent("LCD")
	RecordPong()
}
