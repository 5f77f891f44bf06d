package protocol

import (
	"io"
	"strconv"
)

// doubleDigits fixes the fractional precision of KindDouble values.
const doubleDigits = 4

// Encoder streams the outbound dialect to a writer. It holds no message
// buffer; the only state is the separator suppression armed by an
// array-start. Any write error aborts the current message immediately and
// is returned to the caller.
//
// Encoder is not safe for concurrent use. The client core owns it from a
// single goroutine.
type Encoder struct {
	w         io.Writer
	arrayOpen bool
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// BeginMessage writes the message preamble through the id field.
func (e *Encoder) BeginMessage(service string, id int32) error {
	if err := e.writeString(messageStart); err != nil {
		return err
	}
	if err := e.writeString(service); err != nil {
		return err
	}
	if err := e.writeString(serviceToID); err != nil {
		return err
	}
	return e.writeString(strconv.FormatInt(int64(id), 10))
}

// EndMessage writes the closing brace.
func (e *Encoder) EndMessage() error {
	return e.writeString(messageEnd)
}

// Encode writes one value. Pair values are preceded by the separator
// unless an array-start armed suppression, in which case a lone quote
// opens the first key. None values write nothing at all.
func (e *Encoder) Encode(v Value) error {
	switch v.Kind {
	case KindNone:
		return nil
	case KindArrayEnd:
		return e.writeString(arrayEnd)
	case KindValueOnly:
		if v.Quoted {
			if err := e.writeString(quote); err != nil {
				return err
			}
		}
		if err := e.writeBounded(v.Str, v.Length, v.PreEscaped); err != nil {
			return err
		}
		if v.Quoted {
			return e.writeString(quote)
		}
		return nil
	}

	if e.arrayOpen {
		e.arrayOpen = false
		if err := e.writeString(quote); err != nil {
			return err
		}
	} else {
		if err := e.writeString(pairSeparator); err != nil {
			return err
		}
	}
	if err := e.writeString(v.Key); err != nil {
		return err
	}
	if err := e.writeString(keyToValue); err != nil {
		return err
	}
	if v.Quoted {
		if err := e.writeString(quote); err != nil {
			return err
		}
	}
	if _, err := e.encodeValue(v, WholeString); err != nil {
		return err
	}
	if v.Quoted {
		return e.writeString(quote)
	}
	return nil
}

// encodeValue writes only the value bytes of v. start is the resume offset
// for literal strings inside format templates; WholeString writes from the
// top without placeholder scanning. The returned offset points just past
// the placeholder that stopped a scan, or is 0 once the string ran out.
func (e *Encoder) encodeValue(v Value, start int) (int, error) {
	switch v.Kind {
	case KindLiteral:
		return e.writeLiteral(v.Str, start)
	case KindString:
		return 0, e.writeBounded(v.Str, v.Length, v.PreEscaped)
	case KindInt, KindLong:
		return 0, e.writeString(strconv.FormatInt(v.Int, 10))
	case KindUint:
		return 0, e.writeString(strconv.FormatUint(uint64(v.Uint), 10))
	case KindDouble:
		return 0, e.writeString(strconv.FormatFloat(v.Float, 'f', doubleDigits, 64))
	case KindBool:
		if v.Bool {
			return 0, e.writeString(literalTrue)
		}
		return 0, e.writeString(literalFalse)
	case KindChar:
		return 0, e.writeString(string(v.Char))
	case KindArrayStart:
		if err := e.writeString(arrayStart); err != nil {
			return 0, err
		}
		e.arrayOpen = true
		return 0, nil
	case KindFormat:
		return 0, e.encodeFormat(v)
	}
	return 0, nil
}

// writeLiteral streams s from the given offset, escaping single quotes.
// A non-negative start enables placeholder scanning for format templates.
func (e *Encoder) writeLiteral(s string, start int) (int, error) {
	i := start
	if i < 0 {
		i = 0
	}
	scanning := start > WholeString
	run := i
	for ; i < len(s); i++ {
		ch := s[i]
		if scanning && ch == FormatPlaceholder {
			return i + 1, e.writeString(s[run:i])
		}
		if ch == '\'' {
			if err := e.writeString(s[run:i]); err != nil {
				return 0, err
			}
			if err := e.writeString(`\`); err != nil {
				return 0, err
			}
			run = i
		}
	}
	return 0, e.writeString(s[run:])
}

// writeBounded streams up to length bytes of s, escaping single quotes and
// backslashes unless the bytes are pre-escaped.
func (e *Encoder) writeBounded(s string, length int, preEscaped bool) error {
	n := len(s)
	if length > WholeString && length < n {
		n = length
	}
	if preEscaped {
		return e.writeString(s[:n])
	}
	run := 0
	for i := 0; i < n; i++ {
		if c := s[i]; c == '\'' || c == '\\' {
			if err := e.writeString(s[run:i]); err != nil {
				return err
			}
			if err := e.writeString(`\`); err != nil {
				return err
			}
			run = i
		}
	}
	return e.writeString(s[run:n])
}

// encodeFormat interleaves the template with its substitutions. Rendering
// stops when the template is exhausted or a placeholder has no value left.
func (e *Encoder) encodeFormat(v Value) error {
	if len(v.Items) == 0 {
		return nil
	}
	pos, next := 0, 0
	for next == 0 || pos > 0 {
		var err error
		pos, err = e.encodeValue(v.Items[0], pos)
		if err != nil {
			return err
		}
		if pos == 0 {
			return nil
		}
		next++
		if next >= len(v.Items) {
			return nil
		}
		if _, err := e.encodeValue(v.Items[next], WholeString); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) writeString(s string) error {
	if len(s) == 0 {
		return nil
	}
	_, err := io.WriteString(e.w, s)
	return err
}
