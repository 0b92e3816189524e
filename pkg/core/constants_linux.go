// +build linux

package core

// nccs as defined by glibc's struct termios, not the kernel ABI one.
const nccs = 0x20
