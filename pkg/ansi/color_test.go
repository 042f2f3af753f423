// ABOUTME: Tests for truecolor escape formatting
// ABOUTME: Checks exact byte output for both colour slots across the channel range

package ansi

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		typ   ColorType
		color Color
		want  string
	}{
		{name: "background no padding", typ: Background, color: Color{0, 7, 255}, want: "\x1b[48;2;0;7;255m"},
		{name: "background black", typ: Background, color: Color{}, want: "\x1b[48;2;0;0;0m"},
		{name: "background white", typ: Background, color: Color{255, 255, 255}, want: "\x1b[48;2;255;255;255m"},
		{name: "text", typ: Text, color: Color{200, 0, 0}, want: "\x1b[38;2;200;0;0m"},
		{name: "text two digits", typ: Text, color: Color{10, 99, 42}, want: "\x1b[38;2;10;99;42m"},
		{name: "unknown type falls back to background", typ: ColorType(7), color: Color{1, 2, 3}, want: "\x1b[48;2;1;2;3m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tt.typ, tt.color); got != tt.want {
				t.Errorf("Format(%v, %v) = %q, want %q", tt.typ, tt.color, got, tt.want)
			}
		})
	}
}

func TestFormat_ChannelSweep(t *testing.T) {
	t.Parallel()

	// Every value on every channel, with the other two channels varied so
	// each digit-count combination is exercised.
	others := []uint8{0, 9, 10, 99, 100, 255}
	for v := 0; v <= 255; v++ {
		for _, o := range others {
			for _, c := range []Color{
				{uint8(v), o, o},
				{o, uint8(v), o},
				{o, o, uint8(v)},
			} {
				want := fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
				if got := Format(Background, c); got != want {
					t.Fatalf("Format(Background, %v) = %q, want %q", c, got, want)
				}
			}
		}
	}
}

func TestColorTypeString(t *testing.T) {
	t.Parallel()

	if got := Text.String(); got != "text" {
		t.Errorf("Text.String() = %q", got)
	}
	if got := Background.String(); got != "background" {
		t.Errorf("Background.String() = %q", got)
	}
}
