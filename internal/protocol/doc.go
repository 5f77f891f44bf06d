// Package protocol owns the serial wire dialect.
//
// Ownership boundary:
// - outbound tokens and the streaming tagged-value encoder
// - inbound field parsing for the brace-framed single-quote dialect
// - delimited value splitting and color payload helpers
//
// Outbound messages are JSON-like objects quoted with single quotes:
//
//	{'Service':'LCD','Id':7,'Message':'hello'}
//
// The encoder streams every token to the writer as it is produced and
// never buffers a whole message. Inbound frames are normalized to strict
// JSON before decoding, so the companion side may reply with either quote
// style.
package protocol
