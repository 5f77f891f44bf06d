package shield

import (
	"testing"
	"time"

	"github.com/marktsai0316/virtual-shields-arduino/internal/testutil/testlog"
)

func TestWaitForMatchesPendingID(t *testing.T) {
	testlog.Start(t)
	c, peer := newTestClient(t, &steppingClock{step: 1})

	feed(t, peer, `{'Id':5}`)
	if !c.WaitFor(5, 100*time.Millisecond, -1) {
		t.Fatalf("expected match on id 5")
	}
}

func TestWaitForZeroIDMatchesAnyEvent(t *testing.T) {
	testlog.Start(t)
	c, peer := newTestClient(t, &steppingClock{step: 1})

	feed(t, peer, `{'Id':42}`)
	if !c.WaitFor(0, 100*time.Millisecond, -1) {
		t.Fatalf("expected match on any id")
	}
}

func TestWaitForSkipsNonMatchingEvents(t *testing.T) {
	testlog.Start(t)
	c, peer := newTestClient(t, &steppingClock{step: 1})

	feed(t, peer, `{'Id':4}{'Id':5}`)
	if !c.WaitFor(5, 100*time.Millisecond, -1) {
		t.Fatalf("expected match on second frame")
	}
}

func TestWaitForMatchesResultID(t *testing.T) {
	testlog.Start(t)
	c, peer := newTestClient(t, &steppingClock{step: 1})

	feed(t, peer, `{'Id':9,'ResultId':3}`)
	if !c.WaitFor(0, 100*time.Millisecond, 3) {
		t.Fatalf("expected match on result id")
	}
}

func TestWaitForRequiresBothMatchesWhenGiven(t *testing.T) {
	testlog.Start(t)
	c, peer := newTestClient(t, &steppingClock{step: 1})

	feed(t, peer, `{'Id':9,'ResultId':3}`)
	if c.WaitFor(9, 50*time.Millisecond, 4) {
		t.Fatalf("matched with wrong result id")
	}
}

func TestWaitForTimesOutWithoutEvents(t *testing.T) {
	testlog.Start(t)
	c, _ := newTestClient(t, &steppingClock{step: 1})

	if c.WaitFor(5, 50*time.Millisecond, -1) {
		t.Fatalf("expected timeout")
	}
}

func TestWaitForTimeoutEdgeCountsAsExpired(t *testing.T) {
	testlog.Start(t)
	c, peer := newTestClient(t, &manualClock{now: 100})

	// A matching frame is waiting, but the deadline equals the current
	// instant, so the loop never runs.
	feed(t, peer, `{'Id':5}`)
	if c.WaitFor(5, 0, -1) {
		t.Fatalf("zero timeout should expire unpolled")
	}
	if c.WaitFor(5, -time.Second, -1) {
		t.Fatalf("negative timeout should expire unpolled")
	}
}

func TestWaitForNegativeIDFailsFast(t *testing.T) {
	testlog.Start(t)
	c, _ := newTestClient(t, &manualClock{})

	if c.WaitFor(-3, time.Second, -1) {
		t.Fatalf("negative id should fail")
	}
}

func TestBlockPassesThroughWhenNotBlocking(t *testing.T) {
	testlog.Start(t)
	c, _ := newTestClient(t, &manualClock{})

	id, ok := c.Block(7, false, time.Second, -1)
	if id != 7 || !ok {
		t.Fatalf("got id=%d ok=%v, want 7 true", id, ok)
	}
}

func TestBlockPassesThroughWhenAutoBlockingDisabled(t *testing.T) {
	testlog.Start(t)
	c, _ := newTestClient(t, &manualClock{})

	c.AllowAutoBlocking = false
	id, ok := c.Block(7, true, time.Second, -1)
	if id != 7 || !ok {
		t.Fatalf("got id=%d ok=%v, want 7 true", id, ok)
	}
}

func TestBlockWaitsAndReportsOutcome(t *testing.T) {
	testlog.Start(t)
	c, peer := newTestClient(t, &steppingClock{step: 1})

	feed(t, peer, `{'Id':7}`)
	id, ok := c.Block(7, true, 100*time.Millisecond, -1)
	if id != 7 || !ok {
		t.Fatalf("got id=%d ok=%v, want 7 true", id, ok)
	}

	id, ok = c.Block(8, true, 50*time.Millisecond, -1)
	if id != 8 || ok {
		t.Fatalf("got id=%d ok=%v, want 8 false", id, ok)
	}
}
