// Package transport owns the byte link to the companion device.
//
// Ownership boundary:
// - the Transport contract consumed by the shield client
// - the serial port adapter and its reader pump
// - in-memory pipe endpoints for tests and loopback runs
// - open retry and backoff policy
//
// The shield client polls the link cooperatively: it reads only while
// Available reports pending bytes, so a Transport must answer Available
// without blocking. The serial adapter meets that by pumping the blocking
// port read into a buffered channel from its own goroutine; everything on
// the client side of the channel stays single-threaded.
package transport
