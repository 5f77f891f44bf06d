package protocol

// Kind discriminates the outbound value union.
type Kind uint8

const (
	// KindNone encodes nothing. Zero value of Value.
	KindNone Kind = iota
	// KindLiteral is a trusted constant string. Only single quotes are
	// escaped, and format templates scan it for placeholders.
	KindLiteral
	// KindString is a runtime string, escaped fully and optionally bounded.
	KindString
	// KindInt is a signed integer.
	KindInt
	// KindUint is an unsigned integer.
	KindUint
	// KindDouble is a floating-point value, rendered with four fractional
	// digits.
	KindDouble
	// KindLong is a wide signed integer.
	KindLong
	// KindBool renders true or false.
	KindBool
	// KindChar is a single raw byte.
	KindChar
	// KindArrayStart opens a nested array and suppresses the separator of
	// the next value.
	KindArrayStart
	// KindArrayEnd closes a nested array.
	KindArrayEnd
	// KindValueOnly emits just the value bytes, with no separator or key.
	KindValueOnly
	// KindFormat interleaves a literal template with substitution values.
	KindFormat
)

// WholeString disables length bounding on string values.
const WholeString = -1

// Value is one tagged element of an outbound message. Constructors cover
// the common shapes; fields stay exported so callers can flip Quoted,
// PreEscaped or Length on the result.
type Value struct {
	Kind Kind
	Key  string
	// KeyInRAM records that the key bytes come from a mutable buffer
	// rather than a constant. Key bytes are written verbatim either way.
	KeyInRAM bool

	Str   string
	Int   int64
	Uint  uint32
	Float float64
	Bool  bool
	Char  byte

	// Quoted wraps the encoded value in single quotes.
	Quoted bool
	// PreEscaped marks Str as already escaped; it is written verbatim.
	PreEscaped bool
	// Length bounds Str when non-negative. WholeString writes all of it.
	Length int
	// Items holds the format template first, then its substitutions.
	Items []Value
}

// None returns a value that encodes nothing.
func None() Value {
	return Value{Kind: KindNone, Length: WholeString}
}

// Literal pairs key with a trusted constant string, quoted on the wire.
func Literal(key, value string) Value {
	return Value{Kind: KindLiteral, Key: key, Str: value, Quoted: true, Length: WholeString}
}

// String pairs key with a runtime string, quoted and fully escaped.
func String(key, value string) Value {
	return Value{Kind: KindString, Key: key, Str: value, Quoted: true, Length: WholeString}
}

// Raw pairs key with up to length bytes of value, unquoted. Pass
// WholeString to write the entire string.
func Raw(key, value string, length int) Value {
	return Value{Kind: KindString, Key: key, Str: value, Length: length}
}

// Int pairs key with a signed integer.
func Int(key string, v int) Value {
	return Value{Kind: KindInt, Key: key, Int: int64(v), Length: WholeString}
}

// Uint pairs key with an unsigned integer.
func Uint(key string, v uint32) Value {
	return Value{Kind: KindUint, Key: key, Uint: v, Length: WholeString}
}

// Long pairs key with a wide signed integer.
func Long(key string, v int64) Value {
	return Value{Kind: KindLong, Key: key, Int: v, Length: WholeString}
}

// Double pairs key with a floating-point value.
func Double(key string, v float64) Value {
	return Value{Kind: KindDouble, Key: key, Float: v, Length: WholeString}
}

// Bool pairs key with a boolean.
func Bool(key string, v bool) Value {
	return Value{Kind: KindBool, Key: key, Bool: v, Length: WholeString}
}

// Char pairs key with one raw byte, quoted. A zero byte degrades to None
// so optional type tags can be passed through unconditionally.
func Char(key string, c byte) Value {
	if c == 0 {
		return None()
	}
	return Value{Kind: KindChar, Key: key, Char: c, Quoted: true, Length: WholeString}
}

// ArrayStart opens an array under key.
func ArrayStart(key string) Value {
	return Value{Kind: KindArrayStart, Key: key, Length: WholeString}
}

// ArrayEnd closes the innermost array.
func ArrayEnd() Value {
	return Value{Kind: KindArrayEnd, Length: WholeString}
}

// ValueOnly emits the given bytes with no separator, key or quotes.
func ValueOnly(value string) Value {
	return Value{Kind: KindValueOnly, Str: value, Length: WholeString}
}

// Format pairs key with a template rendered as quoted text. Each
// placeholder byte in the template is replaced by the next substitution
// value, encoded bare. Placeholders beyond the substitution count stop
// the rendering.
func Format(key, template string, values ...Value) Value {
	items := make([]Value, 0, len(values)+1)
	items = append(items, Literal("", template))
	items = append(items, values...)
	return Value{Kind: KindFormat, Key: key, Quoted: true, Items: items, Length: WholeString}
}

// SplitValues splits s on sep into bare string values, at most max of
// them. Segmentation matches hash.Split: interior empty segments are
// kept, a trailing separator adds nothing, empty input yields nothing.
func SplitValues(s string, sep byte, max int) []Value {
	out := make([]Value, 0, splitCap(max))
	if max <= 0 {
		return out
	}
	start := 0
	i := 0
	for i < len(s) || i > start {
		if i == len(s) || s[i] == sep {
			out = append(out, Raw("", s[start:i], WholeString))
			start = i + 1
			if len(out) == max || i == len(s) {
				break
			}
		}
		i++
	}
	return out
}

func splitCap(max int) int {
	if max < 0 || max > 16 {
		return 16
	}
	return max
}
