package cli

import (
	"fmt"
	"os"
	"sync/atomic"
)

// Color is an ANSI SGR escape sequence.
type Color string

const (
	Reset  Color = "\033[0m"
	Bold   Color = "\033[1m"
	Dim    Color = "\033[2m"
	Red    Color = "\033[31m"
	Green  Color = "\033[32m"
	Yellow Color = "\033[33m"
	Blue   Color = "\033[34m"
	Purple Color = "\033[35m"
)

// RGB is a 24-bit terminal color.
type RGB struct {
	R, G, B uint8
}

var (
	BrandBlue   = RGB{0, 120, 255}
	BrandPurple = RGB{189, 52, 235}
)

// Blend returns the color at t between c and to. t is clamped to [0, 1].
func (c RGB) Blend(to RGB, t float64) RGB {
	t = min(max(t, 0), 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return RGB{mix(c.R, to.R), mix(c.G, to.G), mix(c.B, to.B)}
}

func (c RGB) escape() Color {
	return Color(fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B))
}

var enabled atomic.Bool

func init() {
	enabled.Store(colorAllowed(os.LookupEnv))
}

// colorAllowed honors NO_COLOR (https://no-color.org/) and dumb terminals.
func colorAllowed(lookup func(string) (string, bool)) bool {
	if _, ok := lookup("NO_COLOR"); ok {
		return false
	}
	term, _ := lookup("TERM")
	return term != "dumb"
}

// Enabled reports whether ANSI colors are written.
func Enabled() bool { return enabled.Load() }

// SetEnabled overrides terminal detection and returns the previous setting.
func SetEnabled(on bool) bool { return enabled.Swap(on) }

// Style wraps text in c.
func Style(text string, c Color) string {
	if !Enabled() {
		return text
	}
	return string(c) + text + string(Reset)
}

// Gradient colors text with the color at progress between start and end.
func Gradient(text string, start, end RGB, progress float64) string {
	return Style(text, start.Blend(end, progress).escape())
}

// Mark renders a check for ok and a cross otherwise.
func Mark(ok bool) string {
	if ok {
		return Style("✔", Green)
	}
	return Style("✘", Red)
}

func Arrow() string {
	return Style("➜", Blue)
}

func WarningSign() string {
	return Style("!", Yellow)
}
