package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/lustre/internal/colour"
	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// stdoutIsTerminal reports whether stdout is an interactive terminal.
// Swatches are suppressed when output is piped or redirected.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// swatch returns an ANSI-coloured block for a colour, or the empty string
// when stdout is not a terminal. Uses background colour with spaces for a
// solid block.
func swatch(c colour.Colour) string {
	if !stdoutIsTerminal() {
		return ""
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", swatchWidth) + ansiReset + " "
}

// swatchWithText returns a colour block with a text overlay. The text
// colour is black or white, whichever has the better WCAG contrast with
// the background.
func swatchWithText(c colour.Colour, text string) string {
	if !stdoutIsTerminal() {
		return text
	}

	var fg uint8
	if c.RelativeLuminance() > 0.179 {
		// Light background, use dark text.
		fg = 0
	} else {
		// Dark background, use light text.
		fg = 255
	}

	// Pad or truncate text to the swatch width.
	display := text
	width := swatchWidth * 2
	if len(text) > width {
		display = text[:width]
	} else {
		pad := (width - len(text)) / 2
		display = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg, fg, fg, ansiSuffix)
	return bg + fgSeq + display + ansiReset
}
