package shield

import "time"

// WaitFor busy-polls the receiver until a dispatched event matches or the
// deadline passes. id 0 matches any id and resultID -1 matches any
// result. Landing exactly on the deadline counts as expired, and a
// non-positive timeout returns false without polling at all. There is no
// sleep in the loop; the device has nothing else to run.
func (c *Client) WaitFor(id int32, timeout time.Duration, resultID int64) bool {
	if id < 0 {
		return false
	}
	deadline := c.clock.Millis() + timeout.Milliseconds()
	for c.clock.Millis() < deadline {
		if !c.Poll() {
			continue
		}
		if (id == 0 || c.recent.ID == id) && (resultID == -1 || c.recent.ResultID == resultID) {
			return true
		}
	}
	return false
}

// Block optionally waits for the response to message id. When blocking
// is off, here or via AllowAutoBlocking, it returns id at once with
// ok=true. Otherwise ok reports whether a match arrived in time, keeping
// timeouts distinguishable from any real id.
func (c *Client) Block(id int32, blocking bool, timeout time.Duration, resultID int64) (int32, bool) {
	if !c.AllowAutoBlocking || !blocking {
		return id, true
	}
	return id, c.WaitFor(id, timeout, resultID)
}
