// Package shield owns the client core of the serial protocol.
//
// Ownership boundary:
// - message builder and the wrapping id counter
// - frame receiver state machine and the idle keep-alive probe
// - event decoding, system command handling, sensor routing
// - wait/block response correlation
//
// The client is single-threaded by contract: one goroutine owns Poll,
// the builder and the wait helpers. Handlers run inside Poll on that
// same goroutine and may write messages, but must not assume frames
// arrive while they run.
package shield
