// ABOUTME: Print mode and pixel addressing variants selected at the CLI boundary
// ABOUTME: Parsing accepts names and the legacy numeric mode codes; unknown names get suggestions

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mauromedda/pixelate-go/pkg/fuzzy"
)

// Mode selects how rendered cells reach the writer.
type Mode int

const (
	// ModeDefault writes every cell directly as it is produced.
	ModeDefault Mode = iota
	// ModePerRow assembles each output line in a RowBuffer and writes it once.
	ModePerRow
)

// String returns the label used in the diagnostics line.
func (m Mode) String() string {
	if m == ModePerRow {
		return "Per Row"
	}
	return "Default"
}

var modeNames = map[string]Mode{
	"default": ModeDefault,
	"1":       ModeDefault,
	"per-row": ModePerRow,
	"perrow":  ModePerRow,
	"row":     ModePerRow,
	"2":       ModePerRow,
}

// ParseMode resolves a mode name. The empty string yields ModeDefault.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeDefault, nil
	}
	if m, ok := modeNames[s]; ok {
		return m, nil
	}
	return ModeDefault, unknownValue("mode", s, []string{"default", "per-row"})
}

// Addressing selects the formula mapping (column, row) to a sample offset.
type Addressing int

const (
	// AddressColumnStride reads offset column*width*channels + row*channels.
	// Only images at least as tall as they are wide stay in range.
	AddressColumnStride Addressing = iota
	// AddressRowMajor reads offset row*width*channels + column*channels.
	AddressRowMajor
)

// String returns the flag spelling of the addressing.
func (a Addressing) String() string {
	if a == AddressRowMajor {
		return "row-major"
	}
	return "column-stride"
}

// ParseAddressing resolves an addressing name. The empty string yields
// AddressColumnStride.
func ParseAddressing(s string) (Addressing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "column-stride", "column":
		return AddressColumnStride, nil
	case "row-major", "rowmajor":
		return AddressRowMajor, nil
	}
	return AddressColumnStride, unknownValue("addressing", s, []string{"column-stride", "row-major"})
}

// offset returns the red sample offset for (column, row).
func (a Addressing) offset(column, row, width, channels int) int {
	if a == AddressRowMajor {
		return row*width*channels + column*channels
	}
	return column*width*channels + row*channels
}

// unknownValue builds an error for an unrecognized enum value, appending the
// closest valid spelling when one matches.
func unknownValue(kind, got string, valid []string) error {
	msg := fmt.Sprintf("unknown %s %q (valid: %s)", kind, got, strings.Join(valid, ", "))
	if s := fuzzy.Suggest(got, valid); s != "" {
		msg += fmt.Sprintf("; did you mean %q?", s)
	}
	return errors.New(msg)
}
