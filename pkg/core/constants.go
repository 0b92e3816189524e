// +build linux darwin freebsd

package core

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// WriteConstants prints the termios flag constants and ioctl values this
// build was compiled against, one per line in fixed order: the local-mode
// flags first, then the attribute-structure and ioctl values after a blank
// line. A platform that lacks one of the symbols does not compile.
func WriteConstants(w io.Writer) {
	fmt.Fprintf(w, "ECHO: %#x\n", unix.ECHO)
	fmt.Fprintf(w, "ICANON: %#x\n", unix.ICANON)
	fmt.Fprintf(w, "ISIG: %#x\n", unix.ISIG)

	fmt.Fprintf(w, "\nNCCS: %#x\n", nccs)
	fmt.Fprintf(w, "TIOCFWINSZ: %#x\n", unix.TIOCGWINSZ)
}
