// +build linux darwin freebsd

package term

import (
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// State holds the terminal attributes captured before a mode change, so the
// terminal can be put back the way it was found.
type State struct {
	termios unix.Termios
}

// IsTerminal tells whether fd is attached to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// GetSize returns the window size of the terminal attached to fd as
// (columns, rows).
func GetSize(fd int) (int, int, error) {
	winsize, errWinsize := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if errWinsize != nil {
		return 0, 0, fmt.Errorf("get terminal size %w", errWinsize)
	}

	return int(winsize.Col), int(winsize.Row), nil
}

// GetAttr reads the termios attributes of fd.
func GetAttr(fd int) (*unix.Termios, error) {
	termios, errAttr := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if errAttr != nil {
		return nil, fmt.Errorf("get terminal attributes %w", errAttr)
	}

	return termios, nil
}

// SetAttr writes the termios attributes to fd.
func SetAttr(fd int, termios *unix.Termios) error {
	if errAttr := unix.IoctlSetTermios(fd, ioctlWriteTermios, termios); errAttr != nil {
		return fmt.Errorf("set terminal attributes %w", errAttr)
	}

	return nil
}

// MakeRaw puts the terminal on fd into raw mode: no input echo, no line
// buffering, no signal characters. The returned State restores the previous
// attributes; callers should defer Restore so a panic still leaves the
// terminal usable.
func MakeRaw(fd int) (*State, error) {
	termios, errAttr := GetAttr(fd)
	if errAttr != nil {
		return nil, errAttr
	}

	saved := State{termios: *termios}

	newState := *termios
	newState.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	newState.Oflag &^= unix.OPOST
	newState.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	newState.Cflag &^= unix.CSIZE | unix.PARENB
	newState.Cflag |= unix.CS8
	newState.Cc[unix.VMIN] = 1
	newState.Cc[unix.VTIME] = 0

	if errSet := SetAttr(fd, &newState); errSet != nil {
		return nil, errSet
	}

	return &saved, nil
}

// Restore puts back the attributes captured by MakeRaw. Restoring more than
// once is harmless.
func (s *State) Restore(fd int) error {
	return SetAttr(fd, &s.termios)
}
