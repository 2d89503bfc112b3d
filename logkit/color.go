package logkit

import (
	"errors"
	"hash/crc32"
	"strconv"
)

// errEmptyPalette is surfaced at init when filtering removes every
// assignable color.
var errEmptyPalette = errors.New("logkit: no assignable colors left after palette filtering")

// Color is an ANSI SGR foreground color attribute.
type Color uint8

// The standard terminal foreground colors plus the Default sentinel,
// which renders text without any escape sequence.
const (
	Default Color = 0

	Black   Color = 30
	Red     Color = 31
	Green   Color = 32
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
	Cyan    Color = 36
	White   Color = 37

	BrightBlack   Color = 90
	BrightRed     Color = 91
	BrightGreen   Color = 92
	BrightYellow  Color = 93
	BrightBlue    Color = 94
	BrightMagenta Color = 95
	BrightCyan    Color = 96
	BrightWhite   Color = 97
)

// fullPalette is every displayable color, in a fixed order. Severity
// colors are drawn from here; component colors are drawn from the
// assignable subset below.
var fullPalette = []Color{
	Default,
	Black, Red, Green, Yellow, Blue, Magenta, Cyan, White,
	BrightBlack, BrightRed, BrightGreen, BrightYellow,
	BrightBlue, BrightMagenta, BrightCyan, BrightWhite,
}

// Bright reports whether c is a bright (high-intensity) color.
func (c Color) Bright() bool {
	return c >= BrightBlack && c <= BrightWhite
}

// black reports whether c belongs to the black family, which is too
// low-contrast on dark backgrounds to label components with.
func (c Color) black() bool {
	return c == Black || c == BrightBlack
}

// Colorize wraps s in the escape sequence for c. The Default color
// returns s unchanged.
func (c Color) Colorize(s string) string {
	if c == Default {
		return s
	}
	return "\x1b[" + strconv.Itoa(int(c)) + "m" + s + "\x1b[0m"
}

// assignablePalette filters full down to the colors legible enough to
// assign to component names: bright variants only, excluding the black
// family and the Default sentinel. An empty result is a configuration
// error.
func assignablePalette(full []Color) ([]Color, error) {
	var out []Color
	for _, c := range full {
		if c == Default || c.black() || !c.Bright() {
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, errEmptyPalette
	}
	return out, nil
}

// assignable is computed once; the package is unusable without it.
var assignable = func() []Color {
	p, err := assignablePalette(fullPalette)
	if err != nil {
		panic(err)
	}
	return p
}()

// ColorFor deterministically maps a component name to a color from the
// assignable palette. The same name yields the same color within and
// across process runs: the name's CRC-32 checksum picks the palette
// index, so no shared state is needed for two processes to agree.
func ColorFor(name string) Color {
	sum := crc32.ChecksumIEEE([]byte(name))
	return assignable[sum%uint32(len(assignable))]
}

// severityColors fixes one color per severity, independent of the
// component palette so severities look the same everywhere. ERROR and
// FATAL share a color: both mean failure needing attention.
var severityColors = map[string]Color{
	"DEBUG": Cyan,
	"INFO":  Green,
	"WARN":  Yellow,
	"ERROR": Red,
	"FATAL": Red,
}

// severityColor returns the fixed color for a severity name, or
// Default for severities it does not recognize.
func severityColor(severity string) Color {
	if c, ok := severityColors[severity]; ok {
		return c
	}
	return Default
}
