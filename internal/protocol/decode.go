package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Fields holds one parsed inbound frame. Accessors return zero values for
// missing or differently typed entries, matching the forgiving casts the
// shield sensors rely on.
type Fields map[string]any

// Str returns the string under key, or "".
func (f Fields) Str(key string) string {
	s, _ := f[key].(string)
	return s
}

// Float returns the number under key, or 0.
func (f Fields) Float(key string) float64 {
	v, _ := f[key].(float64)
	return v
}

// Int32 returns the number under key truncated to int32, or 0.
func (f Fields) Int32(key string) int32 {
	return int32(f.Float(key))
}

// Int64 returns the number under key truncated to int64, or 0.
func (f Fields) Int64(key string) int64 {
	return int64(f.Float(key))
}

// Bool returns the boolean under key, or false.
func (f Fields) Bool(key string) bool {
	v, _ := f[key].(bool)
	return v
}

// Has reports whether key is present at all.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// ParseFields decodes one brace-delimited frame. The single-quote dialect
// is normalized to strict JSON in one bounded pass, then unmarshalled.
// Frames that are not an object fail with ErrFrameSyntax.
func ParseFields(frame []byte) (Fields, error) {
	trimmed := bytes.TrimSpace(frame)
	if len(trimmed) == 0 {
		return nil, ErrEmptyFrame
	}
	var fields Fields
	if err := json.Unmarshal(normalizeQuotes(trimmed), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrameSyntax, err)
	}
	return fields, nil
}

// normalizeQuotes rewrites the single-quote dialect to strict JSON:
// single-quoted strings become double-quoted, double quotes inside them
// gain escapes, escaped single quotes lose theirs, and double-quoted
// strings pass through untouched.
func normalizeQuotes(in []byte) []byte {
	const (
		outside = iota
		single
		double
	)
	out := make([]byte, 0, len(in)+8)
	state := outside
	for i := 0; i < len(in); i++ {
		c := in[i]
		switch state {
		case outside:
			switch c {
			case '\'':
				state = single
				out = append(out, '"')
			case '"':
				state = double
				out = append(out, c)
			default:
				out = append(out, c)
			}
		case single:
			switch c {
			case '\'':
				state = outside
				out = append(out, '"')
			case '"':
				out = append(out, '\\', '"')
			case '\\':
				if i+1 >= len(in) {
					out = append(out, c)
					break
				}
				i++
				if in[i] == '\'' {
					out = append(out, '\'')
				} else {
					out = append(out, '\\', in[i])
				}
			default:
				out = append(out, c)
			}
		case double:
			out = append(out, c)
			switch c {
			case '\\':
				if i+1 < len(in) {
					i++
					out = append(out, in[i])
				}
			case '"':
				state = outside
			}
		}
	}
	return out
}
