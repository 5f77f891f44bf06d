package protocol

import (
	"errors"
	"testing"
)

func TestColorHex(t *testing.T) {
	if got, want := ARGB(0xFF, 0x00, 0xA0, 0x1E).Hex(), "FF00A01E"; got != want {
		t.Fatalf("hex = %q, want %q", got, want)
	}
	if got, want := RGB(1, 2, 3).Hex(), "00010203"; got != want {
		t.Fatalf("hex = %q, want %q", got, want)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF0000")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Alpha != 0 || c.Red != 0xFF || c.Green != 0 || c.Blue != 0 {
		t.Fatalf("color = %+v, want red only", c)
	}

	c, err = ParseColor("80FF8040")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Alpha != 0x80 || c.Red != 0xFF || c.Green != 0x80 || c.Blue != 0x40 {
		t.Fatalf("color = %+v, want 80FF8040 channels", c)
	}

	for _, bad := range []string{"", "#", "xyz", "11223344556677"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrColorSyntax) {
			t.Fatalf("ParseColor(%q) error = %v, want %v", bad, err, ErrColorSyntax)
		}
	}
}

func TestColorUint32RoundTrip(t *testing.T) {
	orig := uint32(0x80FF8040)
	c := ColorFromUint32(orig)
	if got := c.Uint32(); got != orig {
		t.Fatalf("round trip = %08X, want %08X", got, orig)
	}
}
