package tui

import (
	"os"

	"github.com/mattn/go-isatty"
)

var (
	HasTTY = isatty.IsTerminal(os.Stdout.Fd())
)

// ColorEnabled resolves a colour mode of "always", "never" or "auto". Auto
// colours only a terminal stdout and honours NO_COLOR.
func ColorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return HasTTY && os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb"
}
