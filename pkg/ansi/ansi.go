// Package ansi collects the escape sequences used to drive Xterm-compatible
// terminals: cursor movement, erasing, styles and colors.
package ansi

import (
	"errors"
	"fmt"
)

const (
	// CursorSave saves the current cursor position.
	CursorSave = "\x1b7"
	// CursorRestore restores the saved cursor position.
	CursorRestore = "\x1b8"

	// AltScreenEnter switches to the alternate screen, a blank screen that
	// does not disturb the main one (e.g. vi).
	AltScreenEnter = "\x1b[?1049h"
	// AltScreenExit switches back from the alternate screen.
	AltScreenExit = "\x1b[?1049l"

	// EraseScreen erases the whole screen, leaving the cursor in place.
	EraseScreen = "\x1b[2J"
	// EraseLine erases the line the cursor is on, leaving the cursor in place.
	EraseLine = "\x1b[2K"
	// EraseToScreenStart erases from the screen start to the cursor.
	EraseToScreenStart = "\x1b[1J"
	// EraseToScreenEnd erases from the cursor to the screen end.
	EraseToScreenEnd = "\x1b[0J"
	// EraseToLineStart erases from the line start to the cursor.
	EraseToLineStart = "\x1b[1K"
	// EraseToLineEnd erases from the cursor to the line end.
	EraseToLineEnd = "\x1b[0K"
)

// Cursor shapes. Support varies between terminals.
const (
	ShapeReset             = "\x1b[0q"
	ShapeBlockBlinking     = "\x1b[1q"
	ShapeBlockSteady       = "\x1b[2q"
	ShapeUnderlineBlinking = "\x1b[3q"
	ShapeUnderlineSteady   = "\x1b[4q"
	ShapeBarBlinking       = "\x1b[5q"
	ShapeBarSteady         = "\x1b[6q"
)

// Text styles. Underline and the ones after it are less commonly supported.
const (
	StyleBold          = "\x1b[1m"
	StyleDim           = "\x1b[2m"
	StyleItalic        = "\x1b[3m"
	StyleUnderline     = "\x1b[4m"
	StyleBlinking      = "\x1b[5m"
	StyleReverse       = "\x1b[7m"
	StyleHidden        = "\x1b[8m"
	StyleStrikethrough = "\x1b[9m"

	// StyleReset resets all styles and colors.
	StyleReset = "\x1b[0m"
)

// Foreground and background colors of the base palette.
const (
	FgBlack   = "\x1b[30m"
	FgRed     = "\x1b[31m"
	FgGreen   = "\x1b[32m"
	FgYellow  = "\x1b[33m"
	FgBlue    = "\x1b[34m"
	FgMagenta = "\x1b[35m"
	FgCyan    = "\x1b[36m"
	FgWhite   = "\x1b[37m"
	FgDefault = "\x1b[39m"

	BgBlack   = "\x1b[40m"
	BgRed     = "\x1b[41m"
	BgGreen   = "\x1b[42m"
	BgYellow  = "\x1b[43m"
	BgBlue    = "\x1b[44m"
	BgMagenta = "\x1b[45m"
	BgCyan    = "\x1b[46m"
	BgWhite   = "\x1b[47m"
	BgDefault = "\x1b[49m"
)

var errTitleTooLong = errors.New("window title longer than maximum of 255 bytes")

// RGB sets the foreground to an arbitrary truecolor color.
func RGB(red, green, blue uint8) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", red, green, blue)
}

// WindowTitle sets the title of the terminal window. The title should be
// plain ASCII; terminals disagree on anything else.
func WindowTitle(title string) (string, error) {
	if len(title) > 255 {
		return "", errTitleTooLong
	}

	return fmt.Sprintf("\x1b]0;%s\x1b\x5c", title), nil
}

// CursorUp moves the cursor up n lines.
func CursorUp(n int) string {
	return fmt.Sprintf("\x1b[%dA", n)
}

// CursorDown moves the cursor down n lines.
func CursorDown(n int) string {
	return fmt.Sprintf("\x1b[%dB", n)
}

// CursorRight moves the cursor right n columns.
func CursorRight(n int) string {
	return fmt.Sprintf("\x1b[%dC", n)
}

// CursorLeft moves the cursor left n columns.
func CursorLeft(n int) string {
	return fmt.Sprintf("\x1b[%dD", n)
}

// CursorRow moves the cursor to the given row. Origin is 1, 1.
func CursorRow(row int) string {
	return fmt.Sprintf("\x1b[%dd", row)
}

// CursorColumn moves the cursor to the given column. Origin is 1, 1.
func CursorColumn(column int) string {
	return fmt.Sprintf("\x1b[%dG", column)
}

// CursorTo moves the cursor to the given column and row. Origin is 1, 1.
func CursorTo(column, row int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, column)
}
