// Package ansi presents rendered frames on truecolor terminals. Each
// terminal cell shows two vertically stacked pixels through the upper
// half-block rune: the foreground color is the upper pixel, the background
// the lower one, so a width x height frame needs width columns and height/2
// rows.
package ansi

import (
	"strconv"
	"strings"

	"chosenoffset.com/corridor9/internal/render"
)

const (
	esc   = "\x1b"
	csi   = esc + "["
	reset = csi + "0m"

	halfBlock = '▀'
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return csi + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return csi + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return csi + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return csi + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return csi + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return csi + "?1049l"
}

// FrameString converts a frame to one terminal escape string: cursor home,
// then every cell with a combined SGR so no color state leaks between
// cells. Frames with odd heights drop the last pixel row.
func FrameString(f *render.Frame) string {
	var sb strings.Builder
	sb.Grow(f.Width() * f.Height() * 10)

	pix := f.Pix()
	stride := 4 * f.Width()
	rows := f.Height() / 2

	for row := 0; row < rows; row++ {
		sb.WriteString(MoveTo(row+1, 1))
		upper := 2 * row * stride
		lower := upper + stride
		for x := 0; x < f.Width(); x++ {
			writeCell(&sb,
				pix[upper+4*x], pix[upper+4*x+1], pix[upper+4*x+2],
				pix[lower+4*x], pix[lower+4*x+1], pix[lower+4*x+2],
			)
		}
	}
	sb.WriteString(reset)
	return sb.String()
}

// writeCell emits one half-block cell with a combined foreground and
// background SGR.
func writeCell(sb *strings.Builder, fr, fg, fb, br, bg, bb uint8) {
	sb.WriteString(csi + "38;2;")
	sb.WriteString(strconv.Itoa(int(fr)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(fg)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(fb)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(br)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bg)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bb)))
	sb.WriteByte('m')
	sb.WriteRune(halfBlock)
}
